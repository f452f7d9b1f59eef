package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// DefaultSessionDuration is used when no valid duration is configured.
const DefaultSessionDuration = time.Hour

// SessionService mints and validates the admin session token. The token is
// self-contained: base64url(payload) + "." + base64url(signature), where the
// payload is {"exp":<epoch-ms>} and the signature is HMAC-SHA256 over the
// encoded payload part. Nothing is stored server-side, so the only revocation
// mechanism is rotating the signing secret or natural expiry.
type SessionService struct {
	secret   []byte
	duration time.Duration

	now func() time.Time
}

func NewSessionService(secret string, duration time.Duration) *SessionService {
	if duration <= 0 {
		duration = DefaultSessionDuration
	}
	return &SessionService{
		secret:   []byte(secret),
		duration: duration,
		now:      time.Now,
	}
}

type sessionPayload struct {
	Exp int64 `json:"exp"`
}

// Create mints a fresh token and returns it with its expiry instant, which
// the caller uses as the cookie Expires attribute.
func (s *SessionService) Create() (token string, expiresAt time.Time) {
	expiresAt = s.now().Add(s.duration)

	raw, _ := json.Marshal(sessionPayload{Exp: expiresAt.UnixMilli()})
	payload := base64.RawURLEncoding.EncodeToString(raw)

	return payload + "." + s.sign(payload), expiresAt
}

// Validate reports whether token is correctly signed under the current secret
// and not yet expired. It never panics and never returns an error: every
// malformed input is simply invalid.
func (s *SessionService) Validate(token string) bool {
	if token == "" {
		return false
	}

	parts := strings.Split(token, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}
	payload, signature := parts[0], parts[1]

	if !constantTimeEquals([]byte(signature), []byte(s.sign(payload))) {
		return false
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return false
	}

	var p sessionPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return false
	}

	return p.Exp > s.now().UnixMilli()
}

func (s *SessionService) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
