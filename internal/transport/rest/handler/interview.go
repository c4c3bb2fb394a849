package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"milletsurvey/internal/catalog"
	"milletsurvey/internal/engine"
	"milletsurvey/internal/service"
)

// InterviewHandler handles the enumerator-facing interview endpoints
type InterviewHandler struct {
	interviewSvc *service.InterviewService
	catalog      *catalog.Catalog
}

// NewInterviewHandler creates a new interview handler
func NewInterviewHandler(interviewSvc *service.InterviewService, cat *catalog.Catalog) *InterviewHandler {
	return &InterviewHandler{
		interviewSvc: interviewSvc,
		catalog:      cat,
	}
}

// AnswerRequest is the request body for answering a question. For checkbox
// questions value is the option to toggle; for counter questions it is the
// signed step.
type AnswerRequest struct {
	QuestionID string `json:"questionId"`
	Value      any    `json:"value"`
}

// Start handles POST /v1/interviews
func (h *InterviewHandler) Start(w http.ResponseWriter, r *http.Request) {
	state, err := h.interviewSvc.Start(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, state)
}

// Get handles GET /v1/interviews/{sessionId}
func (h *InterviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	state, err := h.interviewSvc.Get(r.Context(), sessionID)
	if err != nil {
		writeInterviewError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// Answer handles POST /v1/interviews/{sessionId}/answers
func (h *InterviewHandler) Answer(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QuestionID == "" {
		writeError(w, http.StatusBadRequest, "questionId is required")
		return
	}

	state, err := h.interviewSvc.Answer(r.Context(), sessionID, req.QuestionID, req.Value)
	if err != nil {
		writeInterviewError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// Next handles POST /v1/interviews/{sessionId}/next. At the last question
// this submits the interview; a store failure returns 502 with the state so
// the client can retry without losing answers.
func (h *InterviewHandler) Next(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	state, err := h.interviewSvc.Next(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) || errors.Is(err, engine.ErrSubmissionInFlight) {
			writeInterviewError(w, err)
			return
		}
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error": "sync failed, please check the connection and retry",
			"state": state,
		})
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// Previous handles POST /v1/interviews/{sessionId}/previous
func (h *InterviewHandler) Previous(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	state, err := h.interviewSvc.Previous(r.Context(), sessionID)
	if err != nil {
		writeInterviewError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// Catalog handles GET /v1/catalog
func (h *InterviewHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"questions": h.catalog.Questions()})
}

func writeInterviewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "interview session not found")
	case errors.Is(err, engine.ErrSubmissionInFlight):
		writeError(w, http.StatusConflict, "submission already in flight")
	case errors.Is(err, engine.ErrCompleted):
		writeError(w, http.StatusConflict, "interview already completed")
	case errors.Is(err, engine.ErrUnknownQuestion):
		writeError(w, http.StatusBadRequest, "unknown question id")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
