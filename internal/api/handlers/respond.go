package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ayasuda/vehicle-catalog/internal/api/httpx"
	"github.com/ayasuda/vehicle-catalog/internal/api/validate"
	repo "github.com/ayasuda/vehicle-catalog/internal/repository"
)

// writeServiceError maps the error taxonomy onto HTTP statuses:
// field validation -> 400 with per-field details, unknown id -> 404,
// anything else -> 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var errs validate.Errs
	switch {
	case errors.As(err, &errs):
		httpx.WriteError(w, http.StatusBadRequest, "validation_failed", errs.Error(), errs)
	case errors.Is(err, repo.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "not found", nil)
	default:
		slog.Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}

func badRequest(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
}
