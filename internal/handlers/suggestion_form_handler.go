package handlers

import (
	"encoding/json"
	"net/http"

	"leadtrack-backend/internal/models"
	"leadtrack-backend/internal/services"
	"leadtrack-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type SuggestionFormHandler struct {
	Service *services.SuggestionFormService
}

func NewSuggestionFormHandler(s *services.SuggestionFormService) *SuggestionFormHandler {
	return &SuggestionFormHandler{Service: s}
}

func (h *SuggestionFormHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	var form models.SuggestionForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.Service.CreateForm(r.Context(), &form)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, created)
}

func (h *SuggestionFormHandler) ListForms(w http.ResponseWriter, r *http.Request) {
	forms, err := h.Service.ListForms(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, forms)
}

func (h *SuggestionFormHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	form, err := h.Service.GetForm(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, form)
}

func (h *SuggestionFormHandler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSuggestionFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	form, err := h.Service.UpdateForm(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, form)
}

func (h *SuggestionFormHandler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteForm(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Suggestion form deleted successfully"})
}
