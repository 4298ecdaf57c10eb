package handlers

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"mailassist/internal/email"
	"mailassist/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// SendEmailHandler relays a composed email to the mail capability
// @Summary Send an email
// @Description Sends the given subject and body to the recipient through the configured mail transport
// @Tags email
// @Accept json
// @Produce json
// @Param request body models.SendRequest true "Send request"
// @Success 200 {object} models.SendResponse
// @Failure 400 {object} models.SendResponse
// @Router /api/send-email [post]
func SendEmailHandler(mailer email.Mailer, logger zerolog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.SendRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.SendResponse{
				Success: false,
				Message: fmt.Sprintf("Invalid request body: %v", err),
			})
		}

		if !emailRegex.MatchString(req.ToEmail) {
			return c.JSON(http.StatusBadRequest, models.SendResponse{
				Success: false,
				Message: "Invalid email format. Please provide a valid email address.",
			})
		}

		if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Body) == "" {
			return c.JSON(http.StatusBadRequest, models.SendResponse{
				Success: false,
				Message: "subject and body cannot be empty",
			})
		}

		// An unconfigured mail capability is a negative result, not a
		// transport error.
		if mailer == nil {
			return c.JSON(http.StatusOK, models.SendResponse{
				Success: false,
				Message: "Email service not configured. Set SENDGRID_API_KEY or the MAIL_* settings.",
			})
		}

		if err := mailer.Send(req.ToEmail, req.Subject, req.Body); err != nil {
			logger.Warn().Err(err).Str("transport", mailer.Name()).Msg("Email send failed")
			return c.JSON(http.StatusOK, models.SendResponse{
				Success: false,
				Message: fmt.Sprintf("Failed to send email: %v", err),
			})
		}

		return c.JSON(http.StatusOK, models.SendResponse{
			Success: true,
			Message: fmt.Sprintf("Email sent successfully to %s", req.ToEmail),
		})
	}
}
