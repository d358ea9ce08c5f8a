package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/vital/internal/error_values"
	"github.com/limbo/vital/pkg/httputil"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, errorvalues.ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, errorvalues.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errorvalues.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError answers with the status of err's kind. Messages of
// unclassified errors are logged but never sent.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, status, "internal error during "+op, nil)
		return
	}
	logger.Warn(op+" error", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, status, err.Error(), nil)
}
