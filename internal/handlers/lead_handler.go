package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"leadtrack-backend/internal/models"
	"leadtrack-backend/internal/services"
	"leadtrack-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type LeadHandler struct {
	Service *services.LeadService
}

func NewLeadHandler(s *services.LeadService) *LeadHandler {
	return &LeadHandler{Service: s}
}

func (h *LeadHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var lead models.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.Service.CreateLead(r.Context(), &lead)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, created)
}

// ListLeads serves the paged, filtered, searchable lead listing.
func (h *LeadHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	page, err := h.Service.ListLeads(r.Context(), parseListParams(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, page)
}

func (h *LeadHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	lead, err := h.Service.GetLead(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lead, err := h.Service.UpdateLead(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteLead(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Form deleted successfully"})
}

// Reserved listing keys; everything else in the query string is offered to
// the query builder as a candidate filter.
var reservedListKeys = map[string]bool{
	"page":      true,
	"limit":     true,
	"sortField": true,
	"sortOrder": true,
	"search":    true,
}

func parseListParams(r *http.Request) models.ListLeadsParams {
	q := r.URL.Query()

	params := models.ListLeadsParams{
		SortField: q.Get("sortField"),
		SortOrder: q.Get("sortOrder"),
		Search:    q.Get("search"),
		Filters:   map[string]string{},
	}
	if n, err := strconv.Atoi(q.Get("page")); err == nil {
		params.Page = n
	}
	if n, err := strconv.Atoi(q.Get("limit")); err == nil {
		params.Limit = n
	}

	for key, values := range q {
		if reservedListKeys[key] || len(values) == 0 {
			continue
		}
		params.Filters[key] = values[0]
	}

	return params
}
