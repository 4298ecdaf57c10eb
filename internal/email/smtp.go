package email

import (
	"fmt"

	"mailassist/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPMailer sends mail through an SMTP relay
type SMTPMailer struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
}

// NewSMTPMailer creates an SMTP-backed mailer from the MAIL_* settings
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	dialer := gomail.NewDialer(cfg.MailServer, cfg.MailPort, cfg.MailUsername, cfg.MailPassword)
	// Implicit TLS only when STARTTLS is disabled on the SMTPS port;
	// otherwise gomail negotiates STARTTLS with the server.
	dialer.SSL = !cfg.MailStartTLS && cfg.MailPort == 465

	return &SMTPMailer{
		dialer:   dialer,
		from:     cfg.MailFrom,
		fromName: cfg.MailFromName,
	}
}

// Send delivers one email via SMTP
func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)

	contentType := "text/plain"
	if isHTML(body) {
		contentType = "text/html"
	}
	msg.SetBody(contentType, body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// Name identifies the transport
func (m *SMTPMailer) Name() string {
	return "smtp"
}
