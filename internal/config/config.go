package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds all configuration for the application
type Config struct {
	Port              string
	DatabaseURL       string // Log store: postgres URL, mysql DSN, or a SQLite file path
	Version           string
	LogLevel          string
	AllowedOrigins    []string
	OpenAIKey         string
	OpenAIModel       string
	OpenAITimeout     int    // OpenAI API timeout in seconds
	ChatHistoryWindow int    // Max prior turns included in a chat prompt
	OutputFormat      string // Email generation output directive: "json" or "labeled"
	SendGridAPIKey    string
	MailServer        string
	MailPort          int
	MailUsername      string
	MailPassword      string
	MailFrom          string
	MailFromName      string
	MailStartTLS      bool
}

// Load initializes and returns application configuration
func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       getEnv("DATABASE_URL", "mailassist.db"),
		Version:           getEnv("VERSION", "1.0.0"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		AllowedOrigins:    splitList(getEnv("ALLOWED_ORIGINS", "*")),
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAITimeout:     getEnvInt("OPENAI_TIMEOUT", 60),
		ChatHistoryWindow: getEnvInt("CHAT_HISTORY_WINDOW", 10),
		OutputFormat:      getEnv("EMAIL_OUTPUT_FORMAT", "json"),
		SendGridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		MailServer:        getEnv("MAIL_SERVER", "smtp.gmail.com"),
		MailPort:          getEnvInt("MAIL_PORT", 587),
		MailUsername:      os.Getenv("MAIL_USERNAME"),
		MailPassword:      os.Getenv("MAIL_PASSWORD"),
		MailFrom:          os.Getenv("MAIL_FROM"),
		MailFromName:      getEnv("MAIL_FROM_NAME", "Email Assistant"),
		MailStartTLS:      getEnvBool("MAIL_STARTTLS", true),
	}

	return config
}

// HasOpenAI reports whether the language-model capability is configured
func (c *Config) HasOpenAI() bool {
	return c.OpenAIKey != ""
}

// HasSMTP reports whether SMTP mail settings are complete enough to send
func (c *Config) HasSMTP() bool {
	return c.MailUsername != "" && c.MailPassword != "" && c.MailFrom != ""
}

// HasSendGrid reports whether a SendGrid API key is configured
func (c *Config) HasSendGrid() bool {
	return c.SendGridAPIKey != ""
}

// getEnv gets an environment variable with a default fallback
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as integer with a default fallback
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as boolean with a default fallback
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// splitList splits a comma-separated environment value into trimmed entries
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// SetupLogger configures zerolog with JSON output and single-line format
func (c *Config) SetupLogger() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "mailassist").
		Str("version", c.Version).
		Logger()

	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level)

	return logger
}
