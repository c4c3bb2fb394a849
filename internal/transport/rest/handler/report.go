package handler

import (
	"net/http"

	"milletsurvey/internal/service"
)

// ReportHandler serves the printable report export
type ReportHandler struct {
	reportSvc *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Export handles GET /v1/reports/export
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	doc, err := h.reportSvc.ExportPDF(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="field-survey-report.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}
