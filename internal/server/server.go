package server

import (
	"time"

	"mailassist/internal/analytics"
	"mailassist/internal/config"
	"mailassist/internal/database"
	"mailassist/internal/email"
	"mailassist/internal/handlers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server represents the application server
type Server struct {
	echo     *echo.Echo
	config   *config.Config
	logger   zerolog.Logger
	ai       handlers.Completer
	mailer   email.Mailer
	store    *database.LogStore
	stats    *analytics.Service
	registry *handlers.Registry
}

// New creates a new server instance. ai and mailer may be nil when the
// corresponding capability is not configured; store may be nil when the
// service runs without persistence.
func New(cfg *config.Config, logger zerolog.Logger, ai handlers.Completer, mailer email.Mailer, store *database.LogStore, stats *analytics.Service) *Server {
	return &Server{
		config:   cfg,
		logger:   logger,
		ai:       ai,
		mailer:   mailer,
		store:    store,
		stats:    stats,
		registry: handlers.NewRegistry(),
	}
}

// zerologMiddleware creates a zerolog-based logging middleware for Echo
func (s *Server) zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			req := c.Request()
			res := c.Response()

			s.logger.Info().
				Str("method", req.Method).
				Str("uri", req.RequestURI).
				Str("remote_ip", c.RealIP()).
				Int("status", res.Status).
				Int64("latency_ms", time.Since(start).Milliseconds()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return err
		}
	}
}

// Initialize sets up the Echo framework with middleware and routes
func (s *Server) Initialize() {
	s.echo = echo.New()

	// Middleware
	s.echo.Use(s.zerologMiddleware())
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.config.AllowedOrigins,
	}))

	// Hide Echo banner
	s.echo.HideBanner = true

	// Setup routes
	s.setupRoutes()
}

// setupRoutes configures all the application routes
func (s *Server) setupRoutes() {
	// API group with /api prefix
	api := s.echo.Group("/api")

	// Swagger documentation
	s.echo.GET("/swagger/*", echoSwagger.WrapHandler)

	// Health endpoint (root level for platform health checks)
	s.echo.GET("/health", handlers.HealthHandler(s.config.Version, s.ai != nil, s.mailer != nil))

	// API endpoints under /api prefix
	api.GET("/", handlers.RootHandler(s.config.Version))
	api.POST("/chat", handlers.ChatHandler(s.ai, s.config))
	api.POST("/generate-email", handlers.GenerateEmailHandler(s.ai, s.store, s.config, s.logger))
	api.POST("/send-email", handlers.SendEmailHandler(s.mailer, s.logger))
	api.GET("/email-templates", handlers.EmailTemplatesHandler())
	api.GET("/logs", handlers.LogsHandler(s.store))
	api.GET("/logs/:id", handlers.LogHandler(s.store))
	api.GET("/email-stats", handlers.EmailStatsHandler(s.stats, s.logger))

	// Bidirectional chat channel
	s.echo.GET("/ws", handlers.WSChatHandler(s.ai, s.registry, s.logger))
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info().Str("port", s.config.Port).Msg("Server starting")
	return s.echo.Start(":" + s.config.Port)
}
