package models

import "time"

// HealthResponse represents the health check response
// @Description Health check response
type HealthResponse struct {
	Status          string    `json:"status" example:"healthy"`                 // Health status
	Service         string    `json:"service" example:"mailassist"`             // Service name
	Version         string    `json:"version" example:"1.0.0"`                  // Application version
	OpenAIAvailable bool      `json:"openai_available" example:"true"`          // Whether the LLM capability is configured
	MailAvailable   bool      `json:"mail_available" example:"false"`           // Whether the mail capability is configured
	Timestamp       time.Time `json:"timestamp" example:"2023-01-01T00:00:00Z"` // Timestamp of the check
}

// ChatResponse represents the response from the chat endpoint
// @Description Chat response payload
type ChatResponse struct {
	Response   string `json:"response,omitempty" example:"Happy to help with that email."` // AI response message
	TokensUsed int    `json:"tokens_used,omitempty" example:"184"`                         // Total tokens consumed by the completion
	Error      string `json:"error,omitempty" example:""`                                  // Error message if any
}

// GeneratedEmail represents a generated email returned to the caller
// @Description Generated email payload
type GeneratedEmail struct {
	Subject     string    `json:"subject" example:"Thank You - Jane"`            // Email subject, never empty
	Body        string    `json:"body" example:"Dear Jane, ..."`                 // Email body, never empty
	EmailType   string    `json:"email_type,omitempty" example:"thank_you"`      // Template identifier
	GeneratedAt time.Time `json:"generated_at" example:"2023-01-01T00:00:00Z"`   // Generation timestamp (UTC)
	Error       string    `json:"error,omitempty" example:""`                    // Error message if any
}

// SendResponse represents the response from the send-email endpoint
// @Description Email send response payload
type SendResponse struct {
	Success bool   `json:"success" example:"true"`                              // Whether the email was sent
	Message string `json:"message" example:"Email sent successfully to a@b.co"` // Human-readable outcome
}

// ErrorResponse represents a generic error envelope
// @Description Error response payload
type ErrorResponse struct {
	Error string `json:"error" example:"message cannot be empty"` // Error message
}
