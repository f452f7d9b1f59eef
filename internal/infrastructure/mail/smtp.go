// Package mail delivers contact form submissions over SMTP.
package mail

import (
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"github.com/frontridge/frontridge-api/internal/core/ports"
	"github.com/frontridge/frontridge-api/internal/pkg/config"
)

var contactTemplate = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; line-height: 1.6; color: #333;">
  <h2>New contact form submission</h2>
  <p><strong>Name:</strong> {{.FullName}}</p>
  <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
  {{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
  <h3>Message</h3>
  <p style="white-space: pre-wrap;">{{.Message}}</p>
</body>
</html>
`))

// SMTPMailer sends contact mail through a plain SMTP relay.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// SendContact renders and delivers one contact message to the configured
// recipient, with Reply-To set to the submitter.
func (m *SMTPMailer) SendContact(_ context.Context, msg ports.ContactMessage) error {
	var body strings.Builder
	if err := contactTemplate.Execute(&body, msg); err != nil {
		return fmt.Errorf("render contact mail: %w", err)
	}

	var raw strings.Builder
	fmt.Fprintf(&raw, "From: Contact Form <%s>\r\n", m.cfg.From)
	fmt.Fprintf(&raw, "To: %s\r\n", m.cfg.To)
	fmt.Fprintf(&raw, "Reply-To: %s\r\n", msg.Email)
	fmt.Fprintf(&raw, "Subject: New contact form submission from %s\r\n", sanitizeHeader(msg.FullName))
	raw.WriteString("MIME-Version: 1.0\r\n")
	raw.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	raw.WriteString("\r\n")
	raw.WriteString(body.String())

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{m.cfg.To}, []byte(raw.String())); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}
	return nil
}

// sanitizeHeader strips CR/LF so user input cannot inject mail headers.
func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
