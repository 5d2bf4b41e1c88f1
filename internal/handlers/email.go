package handlers

import (
	"net/http"
	"strings"

	"github.com/Abhisar-git/Meeting-Summerizer/internal/database"
	"github.com/Abhisar-git/Meeting-Summerizer/internal/email"
	"github.com/Abhisar-git/Meeting-Summerizer/internal/httperr"
	"github.com/Abhisar-git/Meeting-Summerizer/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// SummarySender is the mail transport dependency
type SummarySender interface {
	SendSummaryEmail(recipients []string, subject, content string) error
}

// SendEmailHandler sends the summary to all recipients as one message and
// records exactly one email log entry per attempt, success or failure.
// Validation failures produce no log entry.
// @Summary Send a summary email
// @Tags email
// @Accept json
// @Produce json
// @Param request body models.SendEmailRequest true "Email request"
// @Success 200 {object} models.SendEmailResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/send-email [post]
func SendEmailHandler(summaries *database.SummaryService, emailLogs *database.EmailLogService, sender SummarySender, logger zerolog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.SendEmailRequest
		if err := c.Bind(&req); err != nil {
			return httperr.Validation("Invalid request body: %v", err)
		}

		// All validation happens before any delivery attempt or log entry
		if strings.TrimSpace(req.SummaryID) == "" {
			return httperr.Validation("Summary ID is required")
		}
		if len(req.Recipients) == 0 {
			return httperr.Validation("At least one recipient is required")
		}
		for _, recipient := range req.Recipients {
			if !email.ValidAddress(recipient) {
				return httperr.Validation("Invalid recipient address: %s", recipient)
			}
		}
		if strings.TrimSpace(req.Subject) == "" {
			return httperr.Validation("Subject is required")
		}
		if strings.TrimSpace(req.EmailContent) == "" {
			return httperr.Validation("Email content is required")
		}

		ctx := c.Request().Context()

		if _, err := summaries.Get(ctx, req.SummaryID); err != nil {
			if err == database.ErrNotFound {
				return httperr.NotFound("Summary not found")
			}
			return httperr.Internal(err, "Failed to fetch summary")
		}

		sendErr := sender.SendSummaryEmail(req.Recipients, req.Subject, req.EmailContent)

		status := models.EmailStatusSent
		var errorMessage *string
		if sendErr != nil {
			status = models.EmailStatusFailed
			msg := sendErr.Error()
			errorMessage = &msg
		}

		if _, err := emailLogs.Create(ctx, req.SummaryID, req.Recipients, req.Subject, req.EmailContent, status, errorMessage); err != nil {
			// The audit trail is part of the contract; a missing entry is an error
			// even when delivery succeeded
			logger.Error().Err(err).Str("summary_id", req.SummaryID).Msg("Failed to record email log entry")
			return httperr.Internal(err, "Failed to record email log")
		}

		if sendErr != nil {
			return httperr.Upstream(sendErr, "Failed to send email: %v", sendErr)
		}

		return c.JSON(http.StatusOK, models.SendEmailResponse{
			Message:   "Email sent successfully",
			SentCount: len(req.Recipients),
		})
	}
}
