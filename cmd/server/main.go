package main

import (
	"mailassist/internal/analytics"
	"mailassist/internal/config"
	"mailassist/internal/database"
	"mailassist/internal/email"
	"mailassist/internal/handlers"
	"mailassist/internal/openai"
	"mailassist/internal/server"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logger
	logger := cfg.SetupLogger()

	// Initialize the log store; the service still runs without persistence
	var store *database.LogStore
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Warn().Err(err).Msg("Database connection failed")
		logger.Info().Msg("Starting server without persistence")
	} else {
		store, err = database.NewLogStore(db)
		if err != nil {
			logger.Warn().Err(err).Msg("Log store initialization failed")
			store = nil
		} else {
			logger.Info().Msg("Log store initialized")
		}
	}

	// Initialize the language-model capability
	var ai handlers.Completer
	if client, err := openai.NewClient(cfg); err != nil {
		logger.Warn().Err(err).Msg("OpenAI capability not configured")
	} else {
		ai = client
		logger.Info().Str("model", client.Model()).Msg("OpenAI client initialized")
	}

	// Initialize the mail capability
	mailer := email.NewFromConfig(cfg)
	if mailer == nil {
		logger.Warn().Msg("Mail capability not configured")
	} else {
		logger.Info().Str("transport", mailer.Name()).Msg("Mail transport initialized")
	}

	// Create and initialize server
	srv := server.New(cfg, logger, ai, mailer, store, analytics.NewService(store))
	srv.Initialize()

	// Start server
	if err := srv.Start(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed to start")
	}
}
