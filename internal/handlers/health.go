package handlers

import (
	"net/http"
	"time"

	"mailassist/internal/models"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports service status and capability availability
// @Summary Health check
// @Description Returns service health and whether the OpenAI and mail capabilities are configured
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func HealthHandler(version string, openAIAvailable, mailAvailable bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, models.HealthResponse{
			Status:          "healthy",
			Service:         "mailassist",
			Version:         version,
			OpenAIAvailable: openAIAvailable,
			MailAvailable:   mailAvailable,
			Timestamp:       time.Now().UTC(),
		})
	}
}

// RootHandler handles requests to the API root endpoint
func RootHandler(version string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Email Assistant API is running",
			"status":  "healthy",
			"version": version,
		})
	}
}
