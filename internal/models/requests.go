package models

// ConversationTurn represents a single role-tagged message in a conversation
// @Description Single message in a conversation
type ConversationTurn struct {
	Role    string `json:"role" example:"user"`                            // Message role (system, user, assistant)
	Content string `json:"content" example:"Help me write a thank you note"` // Message content
}

// ChatRequest represents the request body for the chat endpoint
// @Description Chat request payload
type ChatRequest struct {
	Message             string             `json:"message"`                        // New user message
	ConversationHistory []ConversationTurn `json:"conversation_history,omitempty"` // Prior turns, oldest first
	Context             string             `json:"context,omitempty"`              // Optional caller context tag
}

// GenerationRequest represents the request body for the generate-email endpoint
// @Description Email generation request payload
type GenerationRequest struct {
	UserInput     string `json:"user_input"`               // What the email should accomplish
	EmailType     string `json:"email_type,omitempty"`     // Template identifier (thank_you, follow_up, ...)
	RecipientName string `json:"recipient_name,omitempty"` // Recipient display name
	SenderName    string `json:"sender_name,omitempty"`    // Sender display name
	Context       string `json:"context,omitempty"`        // Additional background
	ResponseTo    string `json:"response_to,omitempty"`    // Message being replied to
	Tone          string `json:"tone,omitempty"`           // professional, formal, casual, friendly, urgent, relaxed
	Length        string `json:"length,omitempty"`         // short, medium, long
}

// SendRequest represents the request body for the send-email endpoint
// @Description Email send request payload
type SendRequest struct {
	ToEmail    string `json:"to_email"`              // Recipient address
	Subject    string `json:"subject"`               // Email subject
	Body       string `json:"body"`                  // Email body
	SenderName string `json:"sender_name,omitempty"` // Sender display name
}
