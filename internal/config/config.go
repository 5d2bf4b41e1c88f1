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
	Port                string
	DatabaseURL         string // PostgreSQL (or MySQL) connection URL
	Version             string
	LogLevel            string
	GroqAPIKey          string // Groq API key; fallback summarizer is used when empty
	GroqBaseURL         string // OpenAI-compatible base URL for chat completions
	SummaryModel        string // Chat completion model name
	GroqTimeout         int    // Chat completion timeout in seconds
	SendGridAPIKey      string // SendGrid API key for summary emails
	SenderEmail         string // From address for outgoing summary emails
	SenderName          string // From display name for outgoing summary emails
	CORSOrigin          string // Allowed CORS origin for the browser UI
	ListCacheTTLMinutes int    // TTL for cached list endpoints in minutes
}

// Load initializes and returns application configuration
func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		Version:             getEnv("VERSION", "1.0.0"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		GroqAPIKey:          os.Getenv("GROQ_API_KEY"),
		GroqBaseURL:         getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		SummaryModel:        getEnv("SUMMARY_MODEL", "llama-3.1-8b-instant"),
		GroqTimeout:         getEnvInt("GROQ_TIMEOUT", 30),
		SendGridAPIKey:      os.Getenv("SENDGRID_API_KEY"),
		SenderEmail:         getEnv("SENDER_EMAIL", "noreply@meeting-summarizer.app"),
		SenderName:          getEnv("SENDER_NAME", "Meeting Summarizer"),
		CORSOrigin:          getEnv("CORS_ORIGIN", "http://localhost:3000"),
		ListCacheTTLMinutes: getEnvInt("LIST_CACHE_TTL_MINUTES", 5),
	}

	return config
}

// HasGroqKey reports whether AI summarization is configured
func (c *Config) HasGroqKey() bool {
	return c.GroqAPIKey != ""
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

// SetupLogger configures zerolog with JSON output and single-line format
func (c *Config) SetupLogger() zerolog.Logger {
	// Configure zerolog to output JSON without newlines
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Create logger with JSON output to stdout
	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "meeting-summarizer").
		Str("version", c.Version).
		Logger()

	// Set log level based on configuration
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level)

	return logger
}
