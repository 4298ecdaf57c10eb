package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"mailassist/internal/config"
	"mailassist/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatConfig() *config.Config {
	return &config.Config{ChatHistoryWindow: 5}
}

func TestChatHandlerUnavailable(t *testing.T) {
	c, rec := newJSONContext(t, http.MethodPost, "/api/chat", `{"message":"hi"}`)

	err := ChatHandler(nil, chatConfig())(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var response models.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Contains(t, response.Error, "OPENAI_API_KEY")
}

func TestChatHandlerEmptyMessage(t *testing.T) {
	stub := &stubCompleter{content: "unused"}
	c, rec := newJSONContext(t, http.MethodPost, "/api/chat", `{"message":"   "}`)

	err := ChatHandler(stub, chatConfig())(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, stub.calls)
}

func TestChatHandlerSuccess(t *testing.T) {
	stub := &stubCompleter{content: "Here is some advice.", tokens: 184}

	body := `{
		"message": "How do I decline politely?",
		"conversation_history": [
			{"role": "user", "content": "one"},
			{"role": "assistant", "content": "two"},
			{"role": "user", "content": "three"},
			{"role": "assistant", "content": "four"},
			{"role": "user", "content": "five"},
			{"role": "assistant", "content": "six"},
			{"role": "user", "content": "seven"}
		]
	}`
	c, rec := newJSONContext(t, http.MethodPost, "/api/chat", body)

	err := ChatHandler(stub, chatConfig())(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response models.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Here is some advice.", response.Response)
	assert.Equal(t, 184, response.TokensUsed)

	// system prompt + windowed last 5 turns + new message
	require.Len(t, stub.turns, 7)
	assert.Equal(t, "system", stub.turns[0].Role)
	assert.Equal(t, "three", stub.turns[1].Content)
	assert.Equal(t, "seven", stub.turns[5].Content)
	assert.Equal(t, "How do I decline politely?", stub.turns[6].Content)
}

func TestChatHandlerUpstreamError(t *testing.T) {
	stub := &stubCompleter{err: fmt.Errorf("connection refused")}
	c, rec := newJSONContext(t, http.MethodPost, "/api/chat", `{"message":"hi"}`)

	err := ChatHandler(stub, chatConfig())(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var response models.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Contains(t, response.Error, "AI service error")
}
