package email

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer sends mail through the SendGrid API
type SendGridMailer struct {
	apiKey   string
	from     string
	fromName string
}

// NewSendGridMailer creates a SendGrid-backed mailer
func NewSendGridMailer(apiKey, from, fromName string) *SendGridMailer {
	if from == "" {
		from = "noreply@mailassist.app"
	}
	if fromName == "" {
		fromName = "Email Assistant"
	}
	return &SendGridMailer{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
	}
}

// Send delivers one email via the SendGrid API
func (m *SendGridMailer) Send(to, subject, body string) error {
	from := mail.NewEmail(m.fromName, m.from)
	recipient := mail.NewEmail("", to)

	message := mail.NewSingleEmail(from, subject, recipient, body, body)

	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("SendGrid API error: status %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}

// Name identifies the transport
func (m *SendGridMailer) Name() string {
	return "sendgrid"
}
