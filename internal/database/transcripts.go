package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Abhisar-git/Meeting-Summerizer/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned by store services when a record id does not exist.
var ErrNotFound = errors.New("record not found")

// TranscriptService handles transcript storage
type TranscriptService struct {
	db *sqlx.DB
}

// NewTranscriptService creates a new transcript service
func NewTranscriptService(db *sqlx.DB) (*TranscriptService, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required for transcript service")
	}

	service := &TranscriptService{db: db}

	if err := service.CreateTables(); err != nil {
		return nil, fmt.Errorf("failed to create transcript tables: %w", err)
	}

	return service, nil
}

// CreateTables creates the transcripts table in the database
func (s *TranscriptService) CreateTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS transcripts (
			id VARCHAR(36) PRIMARY KEY,
			filename TEXT NOT NULL,
			content TEXT NOT NULL,
			file_size BIGINT NOT NULL,
			uploaded_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transcripts_uploaded_at ON transcripts(uploaded_at DESC)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

// Create persists a new transcript and returns the stored record
func (s *TranscriptService) Create(ctx context.Context, filename, content string, fileSize int64) (*models.Transcript, error) {
	transcript := &models.Transcript{
		ID:         uuid.NewString(),
		Filename:   filename,
		Content:    content,
		FileSize:   fileSize,
		UploadedAt: time.Now().UTC(),
	}

	query := `
		INSERT INTO transcripts (id, filename, content, file_size, uploaded_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := s.db.ExecContext(ctx, query, transcript.ID, transcript.Filename, transcript.Content, transcript.FileSize, transcript.UploadedAt); err != nil {
		return nil, fmt.Errorf("failed to save transcript: %w", err)
	}

	return transcript, nil
}

// List returns transcript metadata (no content), newest first
func (s *TranscriptService) List(ctx context.Context) ([]models.Transcript, error) {
	query := `
		SELECT id, filename, file_size, uploaded_at
		FROM transcripts
		ORDER BY uploaded_at DESC
	`

	var transcripts []models.Transcript
	if err := s.db.SelectContext(ctx, &transcripts, query); err != nil {
		return nil, fmt.Errorf("failed to list transcripts: %w", err)
	}

	// Ensure we return an empty slice, not nil
	if transcripts == nil {
		transcripts = []models.Transcript{}
	}

	return transcripts, nil
}

// Get returns a full transcript record, ErrNotFound when the id is unknown
func (s *TranscriptService) Get(ctx context.Context, id string) (*models.Transcript, error) {
	query := `
		SELECT id, filename, content, file_size, uploaded_at
		FROM transcripts
		WHERE id = $1
	`

	var transcript models.Transcript
	err := s.db.GetContext(ctx, &transcript, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transcript: %w", err)
	}

	return &transcript, nil
}
