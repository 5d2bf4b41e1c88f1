package models

import (
	"time"

	"github.com/lib/pq"
)

// Email log status values
const (
	EmailStatusSent   = "sent"
	EmailStatusFailed = "failed"
)

// Transcript represents an uploaded meeting transcript
// @Description Uploaded meeting transcript
type Transcript struct {
	ID           string    `json:"transcriptId" db:"id" example:"b3c7a9d2-1f4e-4c3b-9a8d-2e5f6a7b8c9d"` // Transcript ID
	Filename     string    `json:"filename" db:"filename" example:"weekly-sync.txt"`                    // Original filename
	Content      string    `json:"content,omitempty" db:"content"`                                      // Raw transcript text (omitted in list responses)
	FileSize     int64     `json:"fileSize" db:"file_size" example:"2048"`                              // Size in bytes
	UploadedAt   time.Time `json:"uploadedAt" db:"uploaded_at"`                                         // Upload timestamp
	DisplayTitle string    `json:"displayTitle,omitempty" db:"-" example:"Weekly Sync"`                 // Human-readable title derived from the filename
}

// Summary represents a generated summary and its optional user edit
// @Description AI-generated summary record
type Summary struct {
	ID                 string    `json:"summaryId" db:"id" example:"f1e2d3c4-5b6a-4789-8cde-0123456789ab"` // Summary ID
	TranscriptID       *string   `json:"transcriptId,omitempty" db:"transcript_id"`                        // Weak reference to the source transcript, may be null
	OriginalTranscript string    `json:"originalTranscript,omitempty" db:"original_transcript"`            // Transcript text the summary was generated from
	CustomPrompt       string    `json:"customPrompt" db:"custom_prompt" example:"Summarize in bullet points"`
	AISummary          string    `json:"aiSummary,omitempty" db:"ai_summary"`                    // Generated summary text
	EditedSummary      *string   `json:"editedSummary,omitempty" db:"edited_summary"`            // User-edited version, null until first edit
	TranscriptFilename *string   `json:"transcriptFilename,omitempty" db:"transcript_filename"`  // Populated from the referenced transcript on read
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`                              // Creation timestamp
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`                              // Last edit timestamp
}

// EmailLog records a single email send attempt. Rows are append-only.
// @Description Email send attempt audit record
type EmailLog struct {
	ID           string         `json:"id" db:"id"`                                                // Log entry ID
	SummaryID    string         `json:"summaryId" db:"summary_id"`                                 // Summary the email was sent for
	Recipients   pq.StringArray `json:"recipients" db:"recipients" swaggertype:"array,string"`     // Recipient addresses
	Subject      string         `json:"subject" db:"subject" example:"Meeting Summary"`            // Email subject
	EmailContent string         `json:"emailContent" db:"email_content"`                           // Body that was sent
	SentAt       time.Time      `json:"sentAt" db:"sent_at"`                                       // Attempt timestamp
	Status       string         `json:"status" db:"status" example:"sent" enums:"sent,failed"`     // Outcome of the attempt
	ErrorMessage *string        `json:"errorMessage,omitempty" db:"error_message" example:""`      // Transport error, null on success
}
