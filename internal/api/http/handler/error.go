package handler

import (
	"errors"
	"net/http"

	"github.com/mytasks/mytasks-server/internal/logger"
	"github.com/mytasks/mytasks-server/internal/model"
)

// handleError maps a service error to the HTTP response. Every handler is a
// boundary: internal detail is logged server-side and never crosses to the
// client.
func handleError(w http.ResponseWriter, log *logger.Logger, err error) {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": validationErr.Error()})
	case errors.Is(err, model.ErrDuplicateEmail):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "email already registered"})
	case errors.Is(err, model.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	case errors.Is(err, model.ErrInvalidToken):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid authorization token"})
	case errors.Is(err, model.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		log.Error("internal error", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
