package handlers

import (
	"net/http"
	"sync"

	"mailassist/internal/assistant"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Registry tracks active websocket connections. Entries are added on connect
// and removed on disconnect or send failure.
type Registry struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewRegistry creates an empty connection registry
func NewRegistry() *Registry {
	return &Registry{conns: make(map[*websocket.Conn]struct{})}
}

func (r *Registry) add(conn *websocket.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[conn] = struct{}{}
}

func (r *Registry) remove(conn *websocket.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.conns, conn)
}

// Count returns the number of active connections
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.conns)
}

// WSChatHandler serves the bidirectional chat channel. Each inbound text
// message is one stateless chat turn: no history is kept per connection, and
// messages on one connection are handled strictly in sequence.
func WSChatHandler(ai Completer, registry *Registry, logger zerolog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			return err
		}

		registry.add(conn)
		defer func() {
			registry.remove(conn)
			conn.Close()
		}()

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return nil
			}

			if ai == nil {
				if err := conn.WriteMessage(websocket.TextMessage, []byte(openAIUnavailableMsg)); err != nil {
					return nil
				}
				continue
			}

			turns := assistant.ChatTurns(nil, string(data), 0)
			content, _, err := ai.Complete(c.Request().Context(), turns, chatMaxTokens, chatTemperature)
			if err != nil {
				logger.Warn().Err(err).Msg("Websocket chat completion failed")
				return nil
			}

			if err := conn.WriteMessage(websocket.TextMessage, []byte(content)); err != nil {
				return nil
			}
		}
	}
}
