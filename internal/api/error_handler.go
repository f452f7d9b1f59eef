package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/frontridge/frontridge-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Malformed client input carries a reason that is safe to return.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Reason
	}

	// Provider failures pass the provider message through when present.
	var ue *domain.UploadError
	if errors.As(err, &ue) {
		log.Error().Err(err).Str("path", c.Path()).Msg("upload failed")
		return http.StatusInternalServerError, ue.Error()
	}

	// Known domain errors → deterministic HTTP codes. The 401 message never
	// distinguishes which check failed.
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, "Not Authenticated"
	case errors.Is(err, domain.ErrWorkNotFound):
		return http.StatusNotFound, "work not found"
	case errors.Is(err, domain.ErrInvalidWorkID):
		return http.StatusBadRequest, "invalid work id"
	case errors.Is(err, domain.ErrNotConfigured):
		log.Error().Err(err).Str("path", c.Path()).Msg("missing configuration")
		return http.StatusInternalServerError, "internal server error"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
