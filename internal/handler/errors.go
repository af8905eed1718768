package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"blogboard/internal/domain"
	"blogboard/internal/httputil"
)

// respondDomainError maps domain errors to HTTP status codes. Error
// messages are part of the service contract and pass through verbatim.
func respondDomainError(w http.ResponseWriter, logger *slog.Logger, r *http.Request, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("unexpected error",
			"error", err,
			"path", r.URL.Path,
			"method", r.Method,
		)
		httputil.RespondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
