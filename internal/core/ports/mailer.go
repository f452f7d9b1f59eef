package ports

import "context"

// ContactMessage is one submission of the public contact form.
type ContactMessage struct {
	FullName string
	Phone    string
	Email    string
	Message  string
}

// Mailer delivers outbound transactional mail.
type Mailer interface {
	SendContact(ctx context.Context, msg ContactMessage) error
}

// ContactService validates and forwards contact form submissions.
type ContactService interface {
	Submit(ctx context.Context, msg ContactMessage) error
}
