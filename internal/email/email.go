// Package email provides the mail-sending capability behind a single Mailer
// interface with SendGrid and SMTP implementations.
package email

import (
	"strings"

	"mailassist/internal/config"
)

// Mailer delivers one email to one recipient.
type Mailer interface {
	// Send delivers the message. The body is sent as HTML when it contains
	// markup, plain text otherwise.
	Send(to, subject, body string) error
	// Name identifies the transport for logging and the health check.
	Name() string
}

// NewFromConfig selects the configured mail transport: SendGrid when an API
// key is present, SMTP when credentials are complete, nil when neither is
// configured.
func NewFromConfig(cfg *config.Config) Mailer {
	if cfg.HasSendGrid() {
		return NewSendGridMailer(cfg.SendGridAPIKey, cfg.MailFrom, cfg.MailFromName)
	}
	if cfg.HasSMTP() {
		return NewSMTPMailer(cfg)
	}
	return nil
}

// isHTML reports whether a body should be sent with an HTML content type.
func isHTML(body string) bool {
	return strings.Contains(body, "<")
}
