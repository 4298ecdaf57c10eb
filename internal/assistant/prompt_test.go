package assistant

import (
	"strings"
	"testing"

	"mailassist/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat(""))
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatJSON, ParseFormat("anything-else"))
	assert.Equal(t, FormatLabeled, ParseFormat("labeled"))
	assert.Equal(t, FormatLabeled, ParseFormat(" Labeled "))
}

func TestChatTurns(t *testing.T) {
	history := turns(8)

	result := ChatTurns(history, "new message", 5)

	require.Len(t, result, 7)
	assert.Equal(t, "system", result[0].Role)
	assert.Contains(t, result[0].Content, "professional email assistant")
	// Last 5 history turns in original order, then the new message.
	assert.Equal(t, history[3:], result[1:6])
	assert.Equal(t, models.ConversationTurn{Role: "user", Content: "new message"}, result[6])
}

func TestChatTurnsNoHistory(t *testing.T) {
	result := ChatTurns(nil, "hello", 10)

	require.Len(t, result, 2)
	assert.Equal(t, "system", result[0].Role)
	assert.Equal(t, "user", result[1].Role)
	assert.Equal(t, "hello", result[1].Content)
}

func TestGenerationTurnsFieldOrder(t *testing.T) {
	req := models.GenerationRequest{
		UserInput:     "thank her for the report",
		EmailType:     "thank_you",
		RecipientName: "Jane",
		SenderName:    "John",
		Context:       "quarterly report",
		ResponseTo:    "her email from Monday",
		Tone:          "professional",
		Length:        "medium",
	}

	result := GenerationTurns(req, FormatJSON)

	require.Len(t, result, 2)
	assert.Equal(t, "system", result[0].Role)
	assert.Equal(t, "user", result[1].Role)

	prompt := result[1].Content
	labels := []string{
		"- Request: thank her for the report",
		"- Email Type: thank_you",
		"- Recipient: Jane",
		"- Sender: John",
		"- Context: quarterly report",
		"- Tone: professional",
		"- Length: medium",
		"- This email should respond to: her email from Monday",
	}
	last := -1
	for _, label := range labels {
		idx := strings.Index(prompt, label)
		require.GreaterOrEqual(t, idx, 0, "missing %q", label)
		assert.Greater(t, idx, last, "%q out of order", label)
		last = idx
	}
}

func TestGenerationTurnsOmitsEmptyFields(t *testing.T) {
	req := models.GenerationRequest{
		UserInput: "ask for a meeting",
		Tone:      "formal",
		Length:    "short",
	}

	result := GenerationTurns(req, FormatJSON)
	prompt := result[1].Content

	assert.NotContains(t, prompt, "Email Type")
	assert.NotContains(t, prompt, "Recipient")
	assert.NotContains(t, prompt, "Sender")
	assert.NotContains(t, prompt, "Context")
	assert.NotContains(t, prompt, "respond to")
}

func TestGenerationTurnsDirective(t *testing.T) {
	req := models.GenerationRequest{UserInput: "x", Tone: "formal", Length: "short"}

	jsonPrompt := GenerationTurns(req, FormatJSON)[1].Content
	assert.Contains(t, jsonPrompt, `Return ONLY a JSON object with "subject" and "body" fields.`)

	labeledPrompt := GenerationTurns(req, FormatLabeled)[1].Content
	assert.Contains(t, labeledPrompt, `prefixed "Subject:"`)
}
