// Package openai wraps the OpenAI chat completion API behind the small
// surface the request handlers need.
package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mailassist/internal/config"
	"mailassist/internal/models"

	"github.com/sashabaranov/go-openai"
)

// Client wraps the OpenAI SDK with the configured model and request timeout
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

// NewClient creates a new OpenAI client from configuration
func NewClient(cfg *config.Config) (*Client, error) {
	if !cfg.HasOpenAI() {
		return nil, fmt.Errorf("no OpenAI provider configured: set OPENAI_API_KEY")
	}

	return &Client{
		api:     openai.NewClient(cfg.OpenAIKey),
		model:   cfg.OpenAIModel,
		timeout: time.Duration(cfg.OpenAITimeout) * time.Second,
	}, nil
}

// Complete runs one chat completion over the given turns and returns the
// response content together with the total token usage.
func (c *Client) Complete(ctx context.Context, turns []models.ConversationTurn, maxTokens int, temperature float32) (string, int, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(turns))
	for _, turn := range turns {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    apiRole(turn.Role),
			Content: turn.Content,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", 0, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", 0, fmt.Errorf("no response from OpenAI")
	}

	return resp.Choices[0].Message.Content, resp.Usage.TotalTokens, nil
}

// Model returns the model name used for completions
func (c *Client) Model() string {
	return c.model
}

// apiRole maps loosely tagged conversation roles onto the API role names.
// Anything that does not look like a system or assistant turn is a user turn.
func apiRole(role string) string {
	lower := strings.ToLower(role)
	switch {
	case lower == "system":
		return openai.ChatMessageRoleSystem
	case strings.Contains(lower, "assistant"),
		strings.Contains(lower, "bot"),
		strings.Contains(lower, "ai"):
		return openai.ChatMessageRoleAssistant
	default:
		return openai.ChatMessageRoleUser
	}
}
