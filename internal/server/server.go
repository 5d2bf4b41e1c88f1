package server

import (
	"context"
	"net/http"
	"time"

	"github.com/Abhisar-git/Meeting-Summerizer/internal/cache"
	"github.com/Abhisar-git/Meeting-Summerizer/internal/config"
	"github.com/Abhisar-git/Meeting-Summerizer/internal/database"
	"github.com/Abhisar-git/Meeting-Summerizer/internal/email"
	"github.com/Abhisar-git/Meeting-Summerizer/internal/handlers"
	"github.com/Abhisar-git/Meeting-Summerizer/internal/httperr"
	"github.com/Abhisar-git/Meeting-Summerizer/internal/models"
	"github.com/Abhisar-git/Meeting-Summerizer/internal/openai"

	_ "github.com/Abhisar-git/Meeting-Summerizer/docs"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server represents the application server
type Server struct {
	echo        *echo.Echo
	db          *sqlx.DB
	config      *config.Config
	logger      zerolog.Logger
	listCache   *cache.Cache
	transcripts *database.TranscriptService
	summaries   *database.SummaryService
	emailLogs   *database.EmailLogService
	summarizer  handlers.TranscriptSummarizer
	sender      handlers.SummarySender
}

// New creates a new server instance. The AI client is only constructed when a
// Groq key is configured; a nil client routes every request to the fallback
// summarizer.
func New(cfg *config.Config, db *sqlx.DB, logger zerolog.Logger) (*Server, error) {
	transcripts, err := database.NewTranscriptService(db)
	if err != nil {
		return nil, err
	}
	summaries, err := database.NewSummaryService(db)
	if err != nil {
		return nil, err
	}
	emailLogs, err := database.NewEmailLogService(db)
	if err != nil {
		return nil, err
	}

	var ai handlers.TranscriptSummarizer
	if cfg.HasGroqKey() {
		client, err := openai.NewClient(cfg)
		if err != nil {
			return nil, err
		}
		ai = client
		logger.Info().Str("model", client.Model()).Msg("AI summarization enabled")
	} else {
		logger.Info().Msg("No Groq API key configured, using fallback summarizer")
	}

	return &Server{
		config:      cfg,
		db:          db,
		logger:      logger,
		listCache:   cache.New(),
		transcripts: transcripts,
		summaries:   summaries,
		emailLogs:   emailLogs,
		summarizer:  ai,
		sender:      email.NewService(cfg.SendGridAPIKey, cfg.SenderEmail, cfg.SenderName),
	}, nil
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

// errorHandler is the single boundary that maps error kinds to responses.
// Handlers return classified errors; nothing else writes error payloads.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var status int
	var message string

	if httpErr, ok := err.(*echo.HTTPError); ok {
		status = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	} else {
		apiErr := httperr.FromError(err)
		status = apiErr.StatusCode()
		message = apiErr.Message

		event := s.logger.Warn()
		if status >= http.StatusInternalServerError {
			event = s.logger.Error()
		}
		event.Err(err).
			Str("method", c.Request().Method).
			Str("uri", c.Request().RequestURI).
			Int("status", status).
			Msg("Request failed")
	}

	if err := c.JSON(status, models.ErrorResponse{Error: message}); err != nil {
		s.logger.Error().Err(err).Msg("Failed to write error response")
	}
}

// Initialize sets up the Echo framework with middleware and routes
func (s *Server) Initialize() {
	s.echo = echo.New()

	// Middleware
	s.echo.Use(s.zerologMiddleware())
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{s.config.CORSOrigin},
		AllowCredentials: true,
	}))
	s.echo.Use(middleware.BodyLimit("10M"))

	s.echo.HTTPErrorHandler = s.errorHandler

	// Hide Echo banner
	s.echo.HideBanner = true

	// Setup routes
	s.setupRoutes()
}

// setupRoutes configures all the application routes
func (s *Server) setupRoutes() {
	listTTL := time.Duration(s.config.ListCacheTTLMinutes) * time.Minute

	// API group with /api prefix
	api := s.echo.Group("/api")

	// Swagger documentation
	s.echo.GET("/swagger/*", echoSwagger.WrapHandler)

	// Health endpoints
	api.GET("/health", handlers.HealthHandler(s.config.Version))
	api.GET("/health/db", handlers.DBHealthHandler(s.db))

	api.GET("/", handlers.RootHandler(s.config.Version))

	// Transcripts
	api.POST("/upload", handlers.UploadTranscriptHandler(s.transcripts, s.listCache))
	api.GET("/transcripts", handlers.ListTranscriptsHandler(s.transcripts, s.listCache, listTTL))
	api.GET("/transcript/:id", handlers.GetTranscriptHandler(s.transcripts))

	// Summaries
	api.POST("/summary", handlers.GenerateSummaryHandler(s.summaries, s.summarizer, s.listCache, s.logger))
	api.GET("/summaries", handlers.ListSummariesHandler(s.summaries, s.listCache, listTTL))
	api.GET("/summary/:id", handlers.GetSummaryHandler(s.summaries))
	api.PUT("/summary/:id", handlers.UpdateSummaryHandler(s.summaries, s.listCache))

	// Email
	api.POST("/send-email", handlers.SendEmailHandler(s.summaries, s.emailLogs, s.sender, s.logger))

	// Serve the UI (this should be last to avoid conflicts)
	s.echo.Static("/", "static")
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info().Str("port", s.config.Port).Msg("Server starting")
	return s.echo.Start(":" + s.config.Port)
}

// Shutdown stops the HTTP server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
