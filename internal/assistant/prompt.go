// Package assistant implements the email assistant's request pipeline:
// conversation windowing, prompt composition, and interpretation of the
// language model's raw output into a usable subject/body pair.
package assistant

import (
	"fmt"
	"strings"

	"mailassist/internal/models"
)

// Format selects the output directive given to the model and, with it, the
// interpretation strategy applied to the response.
type Format string

const (
	// FormatJSON asks the model for a JSON object with subject and body keys.
	FormatJSON Format = "json"
	// FormatLabeled asks the model for a "Subject:" line followed by the body.
	FormatLabeled Format = "labeled"
)

// ParseFormat maps a configuration value onto a Format, defaulting to JSON.
func ParseFormat(value string) Format {
	if strings.EqualFold(strings.TrimSpace(value), string(FormatLabeled)) {
		return FormatLabeled
	}
	return FormatJSON
}

const chatSystemPrompt = `You are a professional email assistant AI. You help users:
1. Write professional emails for various purposes
2. Provide email writing advice and best practices
3. Suggest improvements to email tone and content
4. Answer questions about email etiquette
5. Generate email templates for different scenarios

Always be helpful, professional, and provide actionable advice.`

const generationSystemPrompt = `You are a professional email writing assistant. Your role is to generate well-structured, contextually appropriate emails based on user requirements. Always maintain the requested tone and ensure the email is complete, coherent, and professionally formatted.`

// ChatTurns builds the message sequence for a chat completion: the persona
// system prompt, at most window prior turns, then the new user message.
func ChatTurns(history []models.ConversationTurn, message string, window int) []models.ConversationTurn {
	turns := make([]models.ConversationTurn, 0, window+2)
	turns = append(turns, models.ConversationTurn{Role: "system", Content: chatSystemPrompt})
	turns = append(turns, Window(history, window)...)
	turns = append(turns, models.ConversationTurn{Role: "user", Content: message})
	return turns
}

// GenerationTurns builds the system and user instructions for structured
// email generation. Optional fields are emitted only when present, always in
// the same order, followed by the output-format directive matching format.
// Tone and length are expected to be normalized already.
func GenerationTurns(req models.GenerationRequest, format Format) []models.ConversationTurn {
	var b strings.Builder
	b.WriteString("Write an email based on the following requirements:\n")
	writeField(&b, "Request", req.UserInput)
	writeField(&b, "Email Type", req.EmailType)
	writeField(&b, "Recipient", req.RecipientName)
	writeField(&b, "Sender", req.SenderName)
	writeField(&b, "Context", req.Context)
	writeField(&b, "Tone", req.Tone)
	writeField(&b, "Length", req.Length)
	writeField(&b, "This email should respond to", req.ResponseTo)
	b.WriteString("\n")

	switch format {
	case FormatLabeled:
		b.WriteString(`Respond with a subject line prefixed "Subject:" followed by the email body.`)
	default:
		b.WriteString(`Return ONLY a JSON object with "subject" and "body" fields.`)
	}

	return []models.ConversationTurn{
		{Role: "system", Content: generationSystemPrompt},
		{Role: "user", Content: b.String()},
	}
}

func writeField(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", label, value)
}
