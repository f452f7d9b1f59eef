package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/frontridge/frontridge-api/internal/api/metrics"
	"github.com/frontridge/frontridge-api/internal/api/middleware"
	"github.com/frontridge/frontridge-api/internal/core/domain"
)

// CredentialVerifier checks the submitted admin password.
type CredentialVerifier interface {
	Verify(submitted string) (bool, error)
}

// SessionManager mints and validates session tokens.
type SessionManager interface {
	Create() (token string, expiresAt time.Time)
	Validate(token string) bool
}

// AuthHandler implements login, logout and the session probe for the single
// admin account.
type AuthHandler struct {
	credentials CredentialVerifier
	sessions    SessionManager
	// secureCookies ties the cookie Secure attribute to the deployment
	// environment (true in production).
	secureCookies bool
}

func NewAuthHandler(credentials CredentialVerifier, sessions SessionManager, secureCookies bool) *AuthHandler {
	return &AuthHandler{credentials: credentials, sessions: sessions, secureCookies: secureCookies}
}

type loginRequest struct {
	Password string `json:"password"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type sessionResponse struct {
	Authenticated bool `json:"authenticated"`
}

// Login authenticates the admin and sets the session cookie.
//
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Admin password"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/admin/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Password == "" {
		return domain.NewValidationError("password is required")
	}

	ok, err := h.credentials.Verify(req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return err
	}
	if !ok {
		metrics.LoginAttemptsTotal.WithLabelValues("denied").Inc()
		return domain.ErrNotAuthenticated
	}

	token, expiresAt := h.sessions.Create()
	c.SetCookie(h.sessionCookie(token, expiresAt))

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Session reports whether the request carries a valid session cookie.
// It never errors.
//
// @Summary      Session probe
// @Tags         admin
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /api/admin/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	authenticated := false
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		authenticated = h.sessions.Validate(cookie.Value)
	}
	return c.JSON(http.StatusOK, sessionResponse{Authenticated: authenticated})
}

// Logout clears the session cookie. The token itself stays valid until it
// expires; there is no server-side revocation.
//
// @Summary      Admin logout
// @Tags         admin
// @Produce      json
// @Success      200  {object}  successResponse
// @Router       /api/admin/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	expired := h.sessionCookie("", time.Unix(0, 0))
	c.SetCookie(expired)
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

func (h *AuthHandler) sessionCookie(token string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secureCookies,
		Expires:  expires,
	}
}
