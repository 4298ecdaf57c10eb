package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"mailassist/internal/assistant"
	"mailassist/internal/config"
	"mailassist/internal/models"

	"github.com/labstack/echo/v4"
)

// ChatHandler handles one chat turn against the language model
// @Summary Chat with the email assistant
// @Description Sends a message plus recent history to the assistant and returns its reply
// @Tags chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Chat request"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} models.ChatResponse
// @Failure 500 {object} models.ChatResponse
// @Failure 503 {object} models.ChatResponse
// @Router /api/chat [post]
func ChatHandler(ai Completer, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		if ai == nil {
			return c.JSON(http.StatusServiceUnavailable, models.ChatResponse{
				Error: openAIUnavailableMsg,
			})
		}

		var req models.ChatRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ChatResponse{
				Error: fmt.Sprintf("Invalid request body: %v", err),
			})
		}

		if strings.TrimSpace(req.Message) == "" {
			return c.JSON(http.StatusBadRequest, models.ChatResponse{
				Error: "message cannot be empty",
			})
		}

		turns := assistant.ChatTurns(req.ConversationHistory, req.Message, cfg.ChatHistoryWindow)

		content, tokens, err := ai.Complete(c.Request().Context(), turns, chatMaxTokens, chatTemperature)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ChatResponse{
				Error: fmt.Sprintf("AI service error: %v", err),
			})
		}

		return c.JSON(http.StatusOK, models.ChatResponse{
			Response:   content,
			TokensUsed: tokens,
		})
	}
}
