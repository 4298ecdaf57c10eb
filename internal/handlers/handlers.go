// Package handlers contains the HTTP request handlers. Each handler is a
// closure over its dependencies so tests can substitute stub capabilities.
package handlers

import (
	"context"

	"mailassist/internal/models"
)

// Completer is the language-model capability consumed by the chat and
// generation handlers. A nil Completer means the capability was never
// configured.
type Completer interface {
	Complete(ctx context.Context, turns []models.ConversationTurn, maxTokens int, temperature float32) (content string, tokensUsed int, err error)
}

const (
	chatMaxTokens   = 800
	chatTemperature = 0.7

	generateTemperature = 0.6
)

const openAIUnavailableMsg = "OpenAI service not available. Please check OPENAI_API_KEY."
