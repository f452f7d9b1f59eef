package service

import (
	"crypto/subtle"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/frontridge/frontridge-api/internal/core/domain"
)

// CredentialVerifier checks a submitted password against the single admin
// credential. A bcrypt hash takes precedence over a plaintext credential when
// both are configured.
type CredentialVerifier struct {
	passwordHash string
	password     string
	log          zerolog.Logger
}

func NewCredentialVerifier(passwordHash, password string, log zerolog.Logger) *CredentialVerifier {
	return &CredentialVerifier{passwordHash: passwordHash, password: password, log: log}
}

// Verify reports whether submitted matches the configured credential.
// It returns domain.ErrNotConfigured when no credential is configured at all;
// every other internal failure is logged and treated as not verified.
func (v *CredentialVerifier) Verify(submitted string) (bool, error) {
	if v.passwordHash != "" {
		err := bcrypt.CompareHashAndPassword([]byte(v.passwordHash), []byte(submitted))
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			// Malformed hash or cost out of range: fail closed.
			v.log.Error().Err(err).Msg("admin password hash comparison failed")
		}
		return false, nil
	}

	if v.password != "" {
		if submitted == "" {
			return false, nil
		}
		return constantTimeEquals([]byte(submitted), []byte(v.password)), nil
	}

	return false, domain.ErrNotConfigured
}

// constantTimeEquals compares two byte slices without leaking, via timing,
// where they first differ. A length mismatch short-circuits to false.
func constantTimeEquals(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
