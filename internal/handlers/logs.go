package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"mailassist/internal/analytics"
	"mailassist/internal/database"
	"mailassist/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const (
	defaultLogLimit = 20
	maxLogLimit     = 100
)

// LogsHandler lists recent email generation log rows, newest first
// @Summary List recent email logs
// @Tags logs
// @Produce json
// @Param limit query int false "Max rows to return (default 20, cap 100)"
// @Success 200 {array} models.EmailLog
// @Failure 500 {object} models.ErrorResponse
// @Router /api/logs [get]
func LogsHandler(store *database.LogStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		if store == nil {
			return c.JSON(http.StatusOK, []models.EmailLog{})
		}

		limit := defaultLogLimit
		if raw := c.QueryParam("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				return c.JSON(http.StatusBadRequest, models.ErrorResponse{
					Error: fmt.Sprintf("invalid limit %q", raw),
				})
			}
			limit = parsed
		}
		if limit > maxLogLimit {
			limit = maxLogLimit
		}

		logs, err := store.ListRecent(c.Request().Context(), limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("Failed to list email logs: %v", err),
			})
		}

		return c.JSON(http.StatusOK, logs)
	}
}

// LogHandler returns one email log row by id
// @Summary Get one email log
// @Tags logs
// @Produce json
// @Param id path int true "Log row id"
// @Success 200 {object} models.EmailLog
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/logs/{id} [get]
func LogHandler(store *database.LogStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: fmt.Sprintf("invalid log id %q", c.Param("id")),
			})
		}

		if store == nil {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "email log not found",
			})
		}

		record, err := store.Get(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.JSON(http.StatusNotFound, models.ErrorResponse{
					Error: "email log not found",
				})
			}
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("Failed to get email log: %v", err),
			})
		}

		return c.JSON(http.StatusOK, record)
	}
}

// EmailStatsHandler returns aggregate counters over the generation log.
// Aggregation failures degrade to zero counters rather than an error.
// @Summary Email generation statistics
// @Tags logs
// @Produce json
// @Success 200 {object} models.EmailStats
// @Router /api/email-stats [get]
func EmailStatsHandler(stats *analytics.Service, logger zerolog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		result, err := stats.EmailStats(c.Request().Context())
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to aggregate email stats")
			return c.JSON(http.StatusOK, models.EmailStats{})
		}
		return c.JSON(http.StatusOK, result)
	}
}
