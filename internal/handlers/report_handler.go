package handlers

import (
	"fmt"
	"net/http"
	"time"

	"leadtrack-backend/internal/services"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

// LeadsSummaryPDF streams the dashboard metrics as a PDF download.
func (h *ReportHandler) LeadsSummaryPDF(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.GenerateLeadsSummaryPDF(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	filename := fmt.Sprintf("leads_summary_%s.pdf", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
