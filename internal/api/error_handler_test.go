package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/frontridge/frontridge-api/internal/core/domain"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/works", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		code     int
		contains string
	}{
		{"not authenticated", domain.ErrNotAuthenticated, http.StatusUnauthorized, "Not Authenticated"},
		{"work not found", domain.ErrWorkNotFound, http.StatusNotFound, "work not found"},
		{"invalid work id", domain.ErrInvalidWorkID, http.StatusBadRequest, "invalid work id"},
		{"not configured", domain.ErrNotConfigured, http.StatusInternalServerError, "internal server error"},
		{"validation", domain.NewValidationError("name is required"), http.StatusBadRequest, "name is required"},
		{"upload", &domain.UploadError{Message: "upload failed", Err: errors.New("timeout")}, http.StatusInternalServerError, "upload failed"},
		{"unexpected", errors.New("mongo: connection reset"), http.StatusInternalServerError, "internal server error"},
		{"echo error", echo.NewHTTPError(http.StatusNotFound, "Not Found"), http.StatusNotFound, "Not Found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := handleError(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tc.contains) {
				t.Fatalf("body %q does not contain %q", rec.Body.String(), tc.contains)
			}
		})
	}
}

func TestHTTPErrorHandler_InternalDetailsNotLeaked(t *testing.T) {
	rec := handleError(t, errors.New("mongo: connection reset"))
	if strings.Contains(rec.Body.String(), "mongo") {
		t.Fatalf("internal cause leaked to the client: %s", rec.Body.String())
	}
}

func TestHTTPErrorHandler_CommittedResponseUntouched(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/works", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := c.NoContent(http.StatusNoContent); err != nil {
		t.Fatalf("NoContent: %v", err)
	}
	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late failure"), c)

	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("committed response was rewritten: %d %q", rec.Code, rec.Body.String())
	}
}
