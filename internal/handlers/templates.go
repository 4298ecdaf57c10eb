package handlers

import (
	"net/http"

	"mailassist/internal/assistant"

	"github.com/labstack/echo/v4"
)

// EmailTemplatesHandler serves the static email template catalog
// @Summary List email templates
// @Description Returns the static catalog of supported email templates
// @Tags email
// @Produce json
// @Success 200 {object} map[string]assistant.Template
// @Router /api/email-templates [get]
func EmailTemplatesHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, assistant.Templates())
	}
}
