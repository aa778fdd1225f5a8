package handlers

import (
	"net/http"

	"leadtrack-backend/internal/services"
	"leadtrack-backend/pkg/utils"
)

// DashboardHandler exposes the fixed menu of aggregation reports. Every
// endpoint is read-only and recomputed per request.
type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(s *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: s}
}

func (h *DashboardHandler) TotalCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.Service.TotalCount(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (h *DashboardHandler) ConversionRatio(w http.ResponseWriter, r *http.Request) {
	ratio, err := h.Service.ConversionRatio(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"ratio": ratio})
}

func (h *DashboardHandler) TodaysLeads(w http.ResponseWriter, r *http.Request) {
	count, err := h.Service.TodaysLeads(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (h *DashboardHandler) MonthLeads(w http.ResponseWriter, r *http.Request) {
	count, err := h.Service.MonthLeads(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (h *DashboardHandler) TotalPaymentRequired(w http.ResponseWriter, r *http.Request) {
	total, err := h.Service.TotalPaymentRequired(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]float64{"total": total})
}

func (h *DashboardHandler) TotalPaid(w http.ResponseWriter, r *http.Request) {
	total, err := h.Service.TotalPaid(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]float64{"total": total})
}

func (h *DashboardHandler) RemainingAmount(w http.ResponseWriter, r *http.Request) {
	total, err := h.Service.RemainingAmount(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]float64{"total": total})
}

func (h *DashboardHandler) LeadsLast30Days(w http.ResponseWriter, r *http.Request) {
	chart, err := h.Service.LeadsLast30Days(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, chart)
}

func (h *DashboardHandler) LeadsStatusCount(w http.ResponseWriter, r *http.Request) {
	chart, err := h.Service.LeadsByStatus(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, chart)
}

func (h *DashboardHandler) LeadsSourceCount(w http.ResponseWriter, r *http.Request) {
	chart, err := h.Service.LeadsBySource(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, chart)
}
