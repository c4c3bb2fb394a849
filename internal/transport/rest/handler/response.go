package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"milletsurvey/internal/model"
	"milletsurvey/internal/repository"
)

// ResponseHandler handles the admin-facing response collection endpoints
type ResponseHandler struct {
	responseRepo repository.ResponseRepo
	logger       *zap.Logger
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(responseRepo repository.ResponseRepo, logger *zap.Logger) *ResponseHandler {
	return &ResponseHandler{
		responseRepo: responseRepo,
		logger:       logger,
	}
}

// List handles GET /v1/responses. A store read failure degrades to an empty
// list so the dashboard keeps rendering.
func (h *ResponseHandler) List(w http.ResponseWriter, r *http.Request) {
	responses, err := h.responseRepo.List(r.Context())
	if err != nil {
		h.logger.Warn("listing responses failed", zap.Error(err))
		responses = []*model.SurveyResponse{}
	}
	if responses == nil {
		responses = []*model.SurveyResponse{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"responses": responses})
}

// Get handles GET /v1/responses/{id}
func (h *ResponseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	response, err := h.responseRepo.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if response == nil {
		writeError(w, http.StatusNotFound, "response not found")
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// Delete handles DELETE /v1/responses/{id}
func (h *ResponseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.responseRepo.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}
