package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialWS(t *testing.T, serverURL string) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(serverURL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestWSChatHandler(t *testing.T) {
	stub := &stubCompleter{content: "A fine reply."}
	registry := NewRegistry()

	e := echo.New()
	e.GET("/ws", WSChatHandler(stub, registry, testLogger()))
	server := httptest.NewServer(e)
	defer server.Close()

	conn := dialWS(t, server.URL)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("help me write an email")))

	_, reply, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "A fine reply.", string(reply))

	// Each inbound message is a stateless one-off turn: system prompt plus
	// the message, no carried history.
	require.Len(t, stub.turns, 2)
	assert.Equal(t, "system", stub.turns[0].Role)
	assert.Equal(t, "help me write an email", stub.turns[1].Content)
}

func TestWSChatHandlerUnavailable(t *testing.T) {
	registry := NewRegistry()

	e := echo.New()
	e.GET("/ws", WSChatHandler(nil, registry, testLogger()))
	server := httptest.NewServer(e)
	defer server.Close()

	conn := dialWS(t, server.URL)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("hello")))

	_, reply, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(reply), "not available")
}

func TestWSRegistryTracksConnections(t *testing.T) {
	stub := &stubCompleter{content: "ok"}
	registry := NewRegistry()

	e := echo.New()
	e.GET("/ws", WSChatHandler(stub, registry, testLogger()))
	server := httptest.NewServer(e)
	defer server.Close()

	conn := dialWS(t, server.URL)

	require.Eventually(t, func() bool { return registry.Count() == 1 },
		time.Second, 10*time.Millisecond)

	conn.Close()

	require.Eventually(t, func() bool { return registry.Count() == 0 },
		time.Second, 10*time.Millisecond)
}
