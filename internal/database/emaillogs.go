package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Abhisar-git/Meeting-Summerizer/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// EmailLogService handles the email send audit trail
type EmailLogService struct {
	db *sqlx.DB
}

// NewEmailLogService creates a new email log service
func NewEmailLogService(db *sqlx.DB) (*EmailLogService, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required for email log service")
	}

	service := &EmailLogService{db: db}

	if err := service.CreateTables(); err != nil {
		return nil, fmt.Errorf("failed to create email log tables: %w", err)
	}

	return service, nil
}

// CreateTables creates the email_logs table in the database
func (s *EmailLogService) CreateTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS email_logs (
			id VARCHAR(36) PRIMARY KEY,
			summary_id VARCHAR(36) NOT NULL,
			recipients TEXT[] NOT NULL,
			subject TEXT NOT NULL,
			email_content TEXT NOT NULL,
			sent_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			status TEXT NOT NULL CHECK (status IN ('sent', 'failed')),
			error_message TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_email_logs_summary_id ON email_logs(summary_id)`,
		`CREATE INDEX IF NOT EXISTS idx_email_logs_sent_at ON email_logs(sent_at DESC)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

// Create appends one audit row for a send attempt. errorMessage must be nil
// when status is "sent". Rows are never updated afterwards.
func (s *EmailLogService) Create(ctx context.Context, summaryID string, recipients []string, subject, emailContent, status string, errorMessage *string) (*models.EmailLog, error) {
	entry := &models.EmailLog{
		ID:           uuid.NewString(),
		SummaryID:    summaryID,
		Recipients:   pq.StringArray(recipients),
		Subject:      subject,
		EmailContent: emailContent,
		SentAt:       time.Now().UTC(),
		Status:       status,
		ErrorMessage: errorMessage,
	}

	query := `
		INSERT INTO email_logs (id, summary_id, recipients, subject, email_content, sent_at, status, error_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := s.db.ExecContext(ctx, query, entry.ID, entry.SummaryID, entry.Recipients, entry.Subject, entry.EmailContent, entry.SentAt, entry.Status, entry.ErrorMessage); err != nil {
		return nil, fmt.Errorf("failed to save email log: %w", err)
	}

	return entry, nil
}

// ListBySummary returns the send attempts for a summary, newest first
func (s *EmailLogService) ListBySummary(ctx context.Context, summaryID string) ([]models.EmailLog, error) {
	query := `
		SELECT id, summary_id, recipients, subject, email_content, sent_at, status, error_message
		FROM email_logs
		WHERE summary_id = $1
		ORDER BY sent_at DESC
	`

	var logs []models.EmailLog
	if err := s.db.SelectContext(ctx, &logs, query, summaryID); err != nil {
		return nil, fmt.Errorf("failed to list email logs: %w", err)
	}

	if logs == nil {
		logs = []models.EmailLog{}
	}

	return logs, nil
}
