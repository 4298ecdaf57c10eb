package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"mailassist/internal/assistant"
	"mailassist/internal/config"
	"mailassist/internal/database"
	"mailassist/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// GenerateEmailHandler generates a structured email from request fields
// @Summary Generate an email
// @Description Composes a prompt from the request fields, invokes the language model, and returns subject and body
// @Tags email
// @Accept json
// @Produce json
// @Param request body models.GenerationRequest true "Generation request"
// @Success 200 {object} models.GeneratedEmail
// @Failure 400 {object} models.GeneratedEmail
// @Failure 500 {object} models.GeneratedEmail
// @Failure 503 {object} models.GeneratedEmail
// @Router /api/generate-email [post]
func GenerateEmailHandler(ai Completer, store *database.LogStore, cfg *config.Config, logger zerolog.Logger) echo.HandlerFunc {
	format := assistant.ParseFormat(cfg.OutputFormat)

	return func(c echo.Context) error {
		if ai == nil {
			return c.JSON(http.StatusServiceUnavailable, models.GeneratedEmail{
				Error: openAIUnavailableMsg,
			})
		}

		var req models.GenerationRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.GeneratedEmail{
				Error: fmt.Sprintf("Invalid request body: %v", err),
			})
		}

		if strings.TrimSpace(req.UserInput) == "" && strings.TrimSpace(req.Context) == "" {
			return c.JSON(http.StatusBadRequest, models.GeneratedEmail{
				Error: "user_input cannot be empty",
			})
		}

		tone, ok := assistant.NormalizeTone(req.Tone)
		if !ok {
			return c.JSON(http.StatusBadRequest, models.GeneratedEmail{
				Error: fmt.Sprintf("invalid tone %q, expected one of: %s", req.Tone, strings.Join(assistant.Tones(), ", ")),
			})
		}
		req.Tone = tone

		length, ok := assistant.NormalizeLength(req.Length)
		if !ok {
			return c.JSON(http.StatusBadRequest, models.GeneratedEmail{
				Error: fmt.Sprintf("invalid length %q, expected short, medium or long", req.Length),
			})
		}
		req.Length = length

		turns := assistant.GenerationTurns(req, format)

		content, _, err := ai.Complete(c.Request().Context(), turns, assistant.LengthTokens(length), generateTemperature)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.GeneratedEmail{
				Error: fmt.Sprintf("Email generation error: %v", err),
			})
		}

		subject, body := assistant.Interpret(content, format, req.EmailType, req.RecipientName)

		generated := models.GeneratedEmail{
			Subject:     subject,
			Body:        body,
			EmailType:   req.EmailType,
			GeneratedAt: time.Now().UTC(),
		}

		// Best-effort telemetry: a failed log write never fails the response.
		if store != nil {
			_, err := store.Create(c.Request().Context(), models.EmailLog{
				UserInput:  req.UserInput,
				EmailType:  req.EmailType,
				Recipient:  req.RecipientName,
				Context:    req.Context,
				ResponseTo: req.ResponseTo,
				Tone:       req.Tone,
				Length:     req.Length,
				Subject:    subject,
				Body:       body,
			})
			if err != nil {
				logger.Warn().Err(err).Msg("Failed to persist email log")
			}
		}

		return c.JSON(http.StatusOK, generated)
	}
}
