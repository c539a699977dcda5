package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"filebox/internal/domain"
	"filebox/internal/httputil"
)

// respondError maps a failure from the service layer onto the response
// envelope. Tagged domain errors carry their own status, field and message;
// anything else is an unexpected 500.
func respondError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var derr *domain.Error
	if errors.As(err, &derr) {
		if derr.Kind == domain.KindStoreFailure {
			logger.Error("store failure", "error", err)
			httputil.RespondFailure(w, derr.StatusCode(), "Internal server error",
				httputil.FieldError{Field: "server", Message: "Internal server error"})
			return
		}
		httputil.RespondFailure(w, derr.StatusCode(), derr.Message,
			httputil.FieldError{Field: derr.Field, Message: derr.Message})
		return
	}

	logger.Error("unexpected error", "error", err)
	httputil.RespondFailure(w, http.StatusInternalServerError, "Internal server error")
}

// respondBadRequest answers a malformed request with a single field error.
func respondBadRequest(w http.ResponseWriter, field, message string) {
	httputil.RespondFailure(w, http.StatusBadRequest, message,
		httputil.FieldError{Field: field, Message: message})
}
