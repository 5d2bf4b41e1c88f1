package models

import "time"

// HealthResponse represents a basic health check response
// @Description Health check response
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`                 // Health status
	Timestamp time.Time `json:"timestamp" example:"2023-01-01T00:00:00Z"` // Timestamp of the check
	Version   string    `json:"version" example:"1.0.0"`                  // Application version
}

// DBHealthResponse represents a database health check response
// @Description Database health check response
type DBHealthResponse struct {
	Status    string        `json:"status" example:"healthy"`                   // Health status
	Timestamp time.Time     `json:"timestamp" example:"2023-01-01T00:00:00Z"`   // Timestamp of the check
	Connected bool          `json:"connected" example:"true"`                   // Database connection status
	Latency   time.Duration `json:"latency" swaggertype:"string" example:"1ms"` // Database ping latency
	Error     string        `json:"error,omitempty" example:""`                 // Error message if any
}

// UploadRequest represents the pasted-text upload payload.
// File uploads use the multipart field "transcript" instead.
// @Description Pasted transcript upload payload
type UploadRequest struct {
	Content  string `json:"content" form:"content"`                               // Transcript text
	Filename string `json:"filename,omitempty" form:"filename" example:"sync.txt"` // Optional filename for the pasted text
}

// UploadResponse represents a successful transcript upload
// @Description Transcript upload response
type UploadResponse struct {
	Message      string    `json:"message" example:"Transcript uploaded successfully"`
	TranscriptID string    `json:"transcriptId"` // ID of the stored transcript
	Filename     string    `json:"filename"`
	FileSize     int64     `json:"fileSize"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// GenerateSummaryRequest represents the summary generation payload
// @Description Summary generation request
type GenerateSummaryRequest struct {
	TranscriptContent string `json:"transcriptContent"`      // Transcript text to summarize
	CustomPrompt      string `json:"customPrompt"`           // User instruction driving the summary
	TranscriptID      string `json:"transcriptId,omitempty"` // Optional reference to an uploaded transcript
}

// GenerateSummaryResponse represents a successful summary generation
// @Description Summary generation response
type GenerateSummaryResponse struct {
	Message   string    `json:"message" example:"Summary generated successfully"`
	SummaryID string    `json:"summaryId"` // ID of the stored summary
	Summary   string    `json:"summary"`   // Generated summary text
	CreatedAt time.Time `json:"createdAt"`
}

// UpdateSummaryRequest represents the summary edit payload
// @Description Summary edit request
type UpdateSummaryRequest struct {
	EditedSummary string `json:"editedSummary"` // Replacement summary text
}

// UpdateSummaryResponse represents a successful summary edit
// @Description Summary edit response
type UpdateSummaryResponse struct {
	Message string  `json:"message" example:"Summary updated successfully"`
	Summary Summary `json:"summary"` // Updated record
}

// SendEmailRequest represents the email dispatch payload
// @Description Email dispatch request
type SendEmailRequest struct {
	SummaryID    string   `json:"summaryId"`    // Summary the email is for
	Recipients   []string `json:"recipients"`   // Recipient addresses
	Subject      string   `json:"subject"`      // Email subject
	EmailContent string   `json:"emailContent"` // Email body
}

// SendEmailResponse represents a successful email dispatch
// @Description Email dispatch response
type SendEmailResponse struct {
	Message   string `json:"message" example:"Email sent successfully"`
	SentCount int    `json:"sentCount" example:"2"` // Number of recipients the message was addressed to
}

// ErrorResponse is the uniform error payload emitted by the boundary error handler
// @Description Error response
type ErrorResponse struct {
	Error string `json:"error" example:"Transcript content and custom prompt are required"` // Human-readable error message
}
