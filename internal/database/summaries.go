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

// SummaryService handles summary storage
type SummaryService struct {
	db *sqlx.DB
}

// NewSummaryService creates a new summary service
func NewSummaryService(db *sqlx.DB) (*SummaryService, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required for summary service")
	}

	service := &SummaryService{db: db}

	if err := service.CreateTables(); err != nil {
		return nil, fmt.Errorf("failed to create summary tables: %w", err)
	}

	return service, nil
}

// CreateTables creates the summaries table in the database
func (s *SummaryService) CreateTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS summaries (
			id VARCHAR(36) PRIMARY KEY,
			transcript_id VARCHAR(36),
			original_transcript TEXT NOT NULL,
			custom_prompt TEXT NOT NULL,
			ai_summary TEXT NOT NULL,
			edited_summary TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_summaries_created_at ON summaries(created_at DESC)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

// Create persists a new summary and returns the stored record.
// transcriptID may be empty: pasted transcripts have no stored record behind them.
func (s *SummaryService) Create(ctx context.Context, transcriptID, originalTranscript, customPrompt, aiSummary string) (*models.Summary, error) {
	now := time.Now().UTC()
	summary := &models.Summary{
		ID:                 uuid.NewString(),
		OriginalTranscript: originalTranscript,
		CustomPrompt:       customPrompt,
		AISummary:          aiSummary,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if transcriptID != "" {
		summary.TranscriptID = &transcriptID
	}

	query := `
		INSERT INTO summaries (id, transcript_id, original_transcript, custom_prompt, ai_summary, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := s.db.ExecContext(ctx, query, summary.ID, summary.TranscriptID, summary.OriginalTranscript, summary.CustomPrompt, summary.AISummary, summary.CreatedAt, summary.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to save summary: %w", err)
	}

	return summary, nil
}

// List returns summary metadata with the populated transcript filename, newest first.
// The transcript reference is weak: a NULL or dangling transcript_id yields a NULL filename.
func (s *SummaryService) List(ctx context.Context) ([]models.Summary, error) {
	query := `
		SELECT s.id, s.transcript_id, s.custom_prompt, s.created_at, s.updated_at,
		       t.filename AS transcript_filename
		FROM summaries s
		LEFT JOIN transcripts t ON t.id = s.transcript_id
		ORDER BY s.created_at DESC
	`

	var summaries []models.Summary
	if err := s.db.SelectContext(ctx, &summaries, query); err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}

	if summaries == nil {
		summaries = []models.Summary{}
	}

	return summaries, nil
}

// Get returns a full summary record with the populated transcript filename,
// ErrNotFound when the id is unknown
func (s *SummaryService) Get(ctx context.Context, id string) (*models.Summary, error) {
	query := `
		SELECT s.id, s.transcript_id, s.original_transcript, s.custom_prompt,
		       s.ai_summary, s.edited_summary, s.created_at, s.updated_at,
		       t.filename AS transcript_filename
		FROM summaries s
		LEFT JOIN transcripts t ON t.id = s.transcript_id
		WHERE s.id = $1
	`

	var summary models.Summary
	err := s.db.GetContext(ctx, &summary, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}

	return &summary, nil
}

// UpdateEdited sets edited_summary and refreshes updated_at; all other fields
// are immutable after creation. Returns the updated record, ErrNotFound when
// the id is unknown.
func (s *SummaryService) UpdateEdited(ctx context.Context, id, editedSummary string) (*models.Summary, error) {
	query := `
		UPDATE summaries
		SET edited_summary = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(ctx, query, editedSummary, time.Now().UTC(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update summary: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update summary: %w", err)
	}
	if rows == 0 {
		return nil, ErrNotFound
	}

	return s.Get(ctx, id)
}
