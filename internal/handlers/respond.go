package handlers

import (
	"errors"
	"net/http"

	"leadtrack-backend/internal/services"
	"leadtrack-backend/pkg/utils"
)

// writeServiceError maps the service failure taxonomy onto status codes and
// the unified error envelope.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrValidation):
		utils.Error(w, http.StatusBadRequest, err.Error())
	default:
		utils.Error(w, http.StatusInternalServerError, err.Error())
	}
}
