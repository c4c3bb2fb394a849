package handler

import (
	"net/http"

	"milletsurvey/internal/service"
)

// DashboardHandler serves the aggregate analytics view
type DashboardHandler struct {
	analyticsSvc *service.AnalyticsService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(analyticsSvc *service.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{analyticsSvc: analyticsSvc}
}

// Get handles GET /v1/dashboard
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.analyticsSvc.Dashboard(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}
