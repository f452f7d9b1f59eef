package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/frontridge/frontridge-api/internal/core/domain"
)

// SessionCookieName is the fixed cookie carrying the admin session token.
// Issuance (login handler) and validation share this constant.
const SessionCookieName = "admin_session"

// TokenValidator reports whether a session token is signed and unexpired.
type TokenValidator interface {
	Validate(token string) bool
}

// Session guards admin-only endpoints. Every request is re-validated from the
// cookie; there is no server-side session state.
func Session(sessions TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || !sessions.Validate(cookie.Value) {
				return domain.ErrNotAuthenticated
			}
			return next(c)
		}
	}
}
