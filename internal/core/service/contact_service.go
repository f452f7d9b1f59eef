package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/frontridge/frontridge-api/internal/core/domain"
	"github.com/frontridge/frontridge-api/internal/core/ports"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactService validates contact form submissions and forwards them to the
// configured mailer.
type ContactService struct {
	mailer ports.Mailer
	logger zerolog.Logger
}

func NewContactService(mailer ports.Mailer, logger zerolog.Logger) *ContactService {
	return &ContactService{mailer: mailer, logger: logger}
}

func (s *ContactService) Submit(ctx context.Context, msg ports.ContactMessage) error {
	msg.FullName = strings.TrimSpace(msg.FullName)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)
	msg.Phone = strings.TrimSpace(msg.Phone)

	if msg.FullName == "" || msg.Email == "" || msg.Message == "" {
		return domain.NewValidationError("fullName, email and message are required")
	}
	if !emailPattern.MatchString(msg.Email) {
		return domain.NewValidationError("invalid email address")
	}

	if s.mailer == nil {
		return domain.ErrNotConfigured
	}

	if err := s.mailer.SendContact(ctx, msg); err != nil {
		s.logger.Error().Err(err).Str("from", msg.Email).Msg("contact mail delivery failed")
		return err
	}

	s.logger.Info().Str("from", msg.Email).Msg("contact mail sent")
	return nil
}
