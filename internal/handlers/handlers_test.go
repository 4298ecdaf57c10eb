package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"mailassist/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// stubCompleter is a canned language-model capability for handler tests.
type stubCompleter struct {
	content string
	tokens  int
	err     error

	calls int
	turns []models.ConversationTurn
}

func (s *stubCompleter) Complete(_ context.Context, turns []models.ConversationTurn, _ int, _ float32) (string, int, error) {
	s.calls++
	s.turns = turns
	if s.err != nil {
		return "", 0, s.err
	}
	return s.content, s.tokens, nil
}

// stubMailer records sends and can be primed to fail.
type stubMailer struct {
	err  error
	sent []sentMail
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (s *stubMailer) Send(to, subject, body string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func (s *stubMailer) Name() string { return "stub" }

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
