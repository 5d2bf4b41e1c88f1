package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Abhisar-git/Meeting-Summerizer/internal/cache"
	"github.com/Abhisar-git/Meeting-Summerizer/internal/database"
	"github.com/Abhisar-git/Meeting-Summerizer/internal/httperr"
	"github.com/Abhisar-git/Meeting-Summerizer/internal/models"
	"github.com/Abhisar-git/Meeting-Summerizer/internal/summarizer"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// TranscriptSummarizer is the AI summarization dependency. A nil value means
// no credential is configured and the local fallback is used directly.
type TranscriptSummarizer interface {
	SummarizeTranscript(ctx context.Context, transcript, prompt string) (string, error)
}

// GenerateSummaryHandler generates a summary for the supplied transcript text.
// Any AI failure falls back to the local summarizer, once, with no retry; the
// fallback result is a fully valid summary from the caller's perspective.
// @Summary Generate a summary
// @Tags summaries
// @Accept json
// @Produce json
// @Param request body models.GenerateSummaryRequest true "Generation request"
// @Success 200 {object} models.GenerateSummaryResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/summary [post]
func GenerateSummaryHandler(summaries *database.SummaryService, ai TranscriptSummarizer, listCache *cache.Cache, logger zerolog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.GenerateSummaryRequest
		if err := c.Bind(&req); err != nil {
			return httperr.Validation("Invalid request body: %v", err)
		}

		if strings.TrimSpace(req.TranscriptContent) == "" || strings.TrimSpace(req.CustomPrompt) == "" {
			return httperr.Validation("Transcript content and custom prompt are required")
		}

		var summaryText string
		if ai != nil {
			text, err := ai.SummarizeTranscript(c.Request().Context(), req.TranscriptContent, req.CustomPrompt)
			if err != nil {
				// Downgrade silently: the fallback is a valid summary, not an error
				logger.Warn().Err(err).Msg("AI summarization failed, using fallback summarizer")
				summaryText = summarizer.GenerateFallbackSummary(req.TranscriptContent, req.CustomPrompt)
			} else {
				summaryText = text
			}
		} else {
			summaryText = summarizer.GenerateFallbackSummary(req.TranscriptContent, req.CustomPrompt)
		}

		summary, err := summaries.Create(c.Request().Context(), req.TranscriptID, req.TranscriptContent, req.CustomPrompt, summaryText)
		if err != nil {
			return httperr.Internal(err, "Failed to generate summary")
		}

		listCache.Delete(summaryListCacheKey)

		return c.JSON(http.StatusOK, models.GenerateSummaryResponse{
			Message:   "Summary generated successfully",
			SummaryID: summary.ID,
			Summary:   summary.AISummary,
			CreatedAt: summary.CreatedAt,
		})
	}
}

// ListSummariesHandler returns all summaries, newest first, with the
// populated transcript filename
// @Summary List summaries
// @Tags summaries
// @Produce json
// @Success 200 {array} models.Summary
// @Router /api/summaries [get]
func ListSummariesHandler(summaries *database.SummaryService, listCache *cache.Cache, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		if cached, found := listCache.Get(summaryListCacheKey); found {
			if list, ok := cached.([]models.Summary); ok {
				return c.JSON(http.StatusOK, list)
			}
		}

		list, err := summaries.List(c.Request().Context())
		if err != nil {
			return httperr.Internal(err, "Failed to fetch summaries")
		}

		listCache.Set(summaryListCacheKey, list, ttl)

		return c.JSON(http.StatusOK, list)
	}
}

// GetSummaryHandler returns a full summary record
// @Summary Get a summary
// @Tags summaries
// @Produce json
// @Param id path string true "Summary ID"
// @Success 200 {object} models.Summary
// @Failure 404 {object} models.ErrorResponse
// @Router /api/summary/{id} [get]
func GetSummaryHandler(summaries *database.SummaryService) echo.HandlerFunc {
	return func(c echo.Context) error {
		summary, err := summaries.Get(c.Request().Context(), c.Param("id"))
		if err == database.ErrNotFound {
			return httperr.NotFound("Summary not found")
		}
		if err != nil {
			return httperr.Internal(err, "Failed to fetch summary")
		}

		return c.JSON(http.StatusOK, summary)
	}
}

// UpdateSummaryHandler stores the user-edited summary text. Only
// editedSummary and updatedAt change; everything else is immutable.
// @Summary Update a summary
// @Tags summaries
// @Accept json
// @Produce json
// @Param id path string true "Summary ID"
// @Param request body models.UpdateSummaryRequest true "Edited summary"
// @Success 200 {object} models.UpdateSummaryResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/summary/{id} [put]
func UpdateSummaryHandler(summaries *database.SummaryService, listCache *cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.UpdateSummaryRequest
		if err := c.Bind(&req); err != nil {
			return httperr.Validation("Invalid request body: %v", err)
		}

		if strings.TrimSpace(req.EditedSummary) == "" {
			return httperr.Validation("Edited summary content is required")
		}

		summary, err := summaries.UpdateEdited(c.Request().Context(), c.Param("id"), req.EditedSummary)
		if err == database.ErrNotFound {
			return httperr.NotFound("Summary not found")
		}
		if err != nil {
			return httperr.Internal(err, "Failed to update summary")
		}

		listCache.Delete(summaryListCacheKey)

		return c.JSON(http.StatusOK, models.UpdateSummaryResponse{
			Message: "Summary updated successfully",
			Summary: *summary,
		})
	}
}
