package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/frontridge/frontridge-api/internal/core/domain"
)

type stubValidator struct {
	accept string
}

func (v stubValidator) Validate(token string) bool { return token == v.accept }

func runGuarded(t *testing.T, cookie *http.Cookie) (error, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/works", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	guard := Session(stubValidator{accept: "good-token"})
	err := guard(func(echo.Context) error {
		reached = true
		return nil
	})(c)
	return err, reached
}

func TestSession_ValidCookie(t *testing.T) {
	err, reached := runGuarded(t, &http.Cookie{Name: SessionCookieName, Value: "good-token"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reached {
		t.Fatalf("handler not reached with a valid session")
	}
}

func TestSession_MissingCookie(t *testing.T) {
	err, reached := runGuarded(t, nil)
	if err != domain.ErrNotAuthenticated {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if reached {
		t.Fatalf("handler must not run without a session")
	}
}

func TestSession_InvalidToken(t *testing.T) {
	err, reached := runGuarded(t, &http.Cookie{Name: SessionCookieName, Value: "forged"})
	if err != domain.ErrNotAuthenticated {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if reached {
		t.Fatalf("handler must not run with an invalid token")
	}
}

func TestSession_WrongCookieName(t *testing.T) {
	err, reached := runGuarded(t, &http.Cookie{Name: "other_cookie", Value: "good-token"})
	if err != domain.ErrNotAuthenticated || reached {
		t.Fatalf("token in an unrelated cookie must not authenticate (err=%v reached=%v)", err, reached)
	}
}
