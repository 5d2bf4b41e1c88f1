package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Abhisar-git/Meeting-Summerizer/internal/cache"
	"github.com/Abhisar-git/Meeting-Summerizer/internal/database"
	"github.com/Abhisar-git/Meeting-Summerizer/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSummarizer implements TranscriptSummarizer with a canned result.
type stubSummarizer struct {
	text  string
	err   error
	calls int
}

func (s *stubSummarizer) SummarizeTranscript(ctx context.Context, transcript, prompt string) (string, error) {
	s.calls++
	return s.text, s.err
}

// newMockSummaryService builds a SummaryService backed by sqlmock, absorbing
// the table creation statements the constructor runs.
func newMockSummaryService(t *testing.T) (*database.SummaryService, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS summaries").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_summaries_created_at").
		WillReturnResult(sqlmock.NewResult(0, 0))

	service, err := database.NewSummaryService(sqlx.NewDb(mockDB, "sqlmock"))
	require.NoError(t, err)

	return service, mock
}

const testTranscript = "Alice presented the quarterly roadmap and walked through each milestone. " +
	"Bob raised concerns about the migration timeline for the billing service. " +
	"The team agreed to move the launch to the first week of October."

func TestGenerateSummaryHandler_UsesAI(t *testing.T) {
	service, mock := newMockSummaryService(t)
	ai := &stubSummarizer{text: "The team moved the launch to October."}

	mock.ExpectExec("INSERT INTO summaries").
		WithArgs(sqlmock.AnyArg(), nil, testTranscript, "Summarize briefly", ai.text, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	c, rec := newJSONContext(t, http.MethodPost, "/api/summary", models.GenerateSummaryRequest{
		TranscriptContent: testTranscript,
		CustomPrompt:      "Summarize briefly",
	})

	err := GenerateSummaryHandler(service, ai, cache.New(), zerolog.Nop())(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, ai.calls)

	var response models.GenerateSummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Summary generated successfully", response.Message)
	assert.NotEmpty(t, response.SummaryID)
	assert.Equal(t, "The team moved the launch to October.", response.Summary)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateSummaryHandler_FallbackWithoutAI(t *testing.T) {
	service, mock := newMockSummaryService(t)

	mock.ExpectExec("INSERT INTO summaries").
		WillReturnResult(sqlmock.NewResult(1, 1))

	c, rec := newJSONContext(t, http.MethodPost, "/api/summary", models.GenerateSummaryRequest{
		TranscriptContent: testTranscript,
		CustomPrompt:      "Summarize this meeting in bullet points",
	})

	err := GenerateSummaryHandler(service, nil, cache.New(), zerolog.Nop())(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response models.GenerateSummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, strings.HasPrefix(response.Summary, `**Summary based on your request: "Summarize this meeting in bullet points"**`))
	assert.Contains(t, response.Summary, "**Key Points:**")
	assert.Contains(t, response.Summary, "**Meeting Statistics:**")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateSummaryHandler_FallbackOnAIFailure(t *testing.T) {
	service, mock := newMockSummaryService(t)
	ai := &stubSummarizer{err: errors.New("upstream timeout")}

	mock.ExpectExec("INSERT INTO summaries").
		WillReturnResult(sqlmock.NewResult(1, 1))

	c, rec := newJSONContext(t, http.MethodPost, "/api/summary", models.GenerateSummaryRequest{
		TranscriptContent: testTranscript,
		CustomPrompt:      "Give me an executive overview",
	})

	// The AI failure must not surface: the fallback result is a valid summary
	err := GenerateSummaryHandler(service, ai, cache.New(), zerolog.Nop())(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, ai.calls)

	var response models.GenerateSummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Contains(t, response.Summary, "**Executive Summary:**")
	assert.Contains(t, response.Summary, "**Meeting Statistics:**")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateSummaryHandler_Validation(t *testing.T) {
	tests := []struct {
		name    string
		payload models.GenerateSummaryRequest
	}{
		{name: "missing transcript content", payload: models.GenerateSummaryRequest{CustomPrompt: "Summarize"}},
		{name: "missing custom prompt", payload: models.GenerateSummaryRequest{TranscriptContent: testTranscript}},
		{name: "whitespace-only transcript", payload: models.GenerateSummaryRequest{TranscriptContent: "   ", CustomPrompt: "Summarize"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mock := newMockSummaryService(t)
			c, _ := newJSONContext(t, http.MethodPost, "/api/summary", tt.payload)

			err := GenerateSummaryHandler(service, nil, cache.New(), zerolog.Nop())(c)
			assertAPIError(t, err, http.StatusBadRequest, "Transcript content and custom prompt are required")

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGenerateSummaryHandler_LinksTranscript(t *testing.T) {
	service, mock := newMockSummaryService(t)

	mock.ExpectExec("INSERT INTO summaries").
		WithArgs(sqlmock.AnyArg(), "transcript-1", testTranscript, "Summarize", "done", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	c, rec := newJSONContext(t, http.MethodPost, "/api/summary", models.GenerateSummaryRequest{
		TranscriptContent: testTranscript,
		CustomPrompt:      "Summarize",
		TranscriptID:      "transcript-1",
	})

	err := GenerateSummaryHandler(service, &stubSummarizer{text: "done"}, cache.New(), zerolog.Nop())(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSummariesHandler(t *testing.T) {
	service, mock := newMockSummaryService(t)
	listCache := cache.New()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT s.id, s.transcript_id, s.custom_prompt").
		WillReturnRows(sqlmock.NewRows([]string{"id", "transcript_id", "custom_prompt", "created_at", "updated_at", "transcript_filename"}).
			AddRow("sum-2", "tr-1", "Summarize", now, now, "weekly-sync.txt").
			AddRow("sum-1", nil, "Bullet points please", now.Add(-time.Hour), now.Add(-time.Hour), nil))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/summaries", nil), rec)

	handler := ListSummariesHandler(service, listCache, time.Minute)
	err := handler(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response []models.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response, 2)
	require.NotNil(t, response[0].TranscriptFilename)
	assert.Equal(t, "weekly-sync.txt", *response[0].TranscriptFilename)
	assert.Nil(t, response[1].TranscriptFilename, "pasted transcripts have no filename to join")

	// Second request is served from the cache
	rec2 := httptest.NewRecorder()
	c2 := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/summaries", nil), rec2)
	require.NoError(t, handler(c2))
	assert.Equal(t, http.StatusOK, rec2.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSummaryHandler(t *testing.T) {
	service, mock := newMockSummaryService(t)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT s.id, s.transcript_id, s.original_transcript").
		WithArgs("sum-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "transcript_id", "original_transcript", "custom_prompt", "ai_summary", "edited_summary", "created_at", "updated_at", "transcript_filename"}).
			AddRow("sum-1", nil, testTranscript, "Summarize", "Generated text.", nil, now, now, nil))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetPath("/api/summary/:id")
	c.SetParamNames("id")
	c.SetParamValues("sum-1")

	err := GetSummaryHandler(service)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response models.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "sum-1", response.ID)
	assert.Equal(t, "Generated text.", response.AISummary)
	assert.Nil(t, response.EditedSummary)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSummaryHandler_NotFound(t *testing.T) {
	service, mock := newMockSummaryService(t)

	mock.ExpectQuery("SELECT s.id, s.transcript_id, s.original_transcript").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetPath("/api/summary/:id")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := GetSummaryHandler(service)(c)
	assertAPIError(t, err, http.StatusNotFound, "Summary not found")
}

func TestUpdateSummaryHandler(t *testing.T) {
	service, mock := newMockSummaryService(t)
	listCache := cache.New()
	listCache.Set(summaryListCacheKey, []models.Summary{{ID: "stale"}}, time.Minute)

	now := time.Now().UTC()
	edited := "Edited summary text."

	mock.ExpectExec("UPDATE summaries").
		WithArgs(edited, sqlmock.AnyArg(), "sum-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT s.id, s.transcript_id, s.original_transcript").
		WithArgs("sum-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "transcript_id", "original_transcript", "custom_prompt", "ai_summary", "edited_summary", "created_at", "updated_at", "transcript_filename"}).
			AddRow("sum-1", nil, testTranscript, "Summarize", "Generated text.", edited, now.Add(-time.Hour), now, nil))

	c, rec := newJSONContext(t, http.MethodPut, "/", models.UpdateSummaryRequest{EditedSummary: edited})
	c.SetPath("/api/summary/:id")
	c.SetParamNames("id")
	c.SetParamValues("sum-1")

	err := UpdateSummaryHandler(service, listCache)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response models.UpdateSummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Summary updated successfully", response.Message)
	require.NotNil(t, response.Summary.EditedSummary)
	assert.Equal(t, edited, *response.Summary.EditedSummary)
	assert.Equal(t, "Generated text.", response.Summary.AISummary, "the original AI summary is immutable")

	_, found := listCache.Get(summaryListCacheKey)
	assert.False(t, found, "update should invalidate the cached summary list")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSummaryHandler_NotFound(t *testing.T) {
	service, mock := newMockSummaryService(t)

	mock.ExpectExec("UPDATE summaries").
		WithArgs("New text", sqlmock.AnyArg(), "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	c, _ := newJSONContext(t, http.MethodPut, "/", models.UpdateSummaryRequest{EditedSummary: "New text"})
	c.SetPath("/api/summary/:id")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := UpdateSummaryHandler(service, cache.New())(c)
	assertAPIError(t, err, http.StatusNotFound, "Summary not found")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSummaryHandler_Validation(t *testing.T) {
	service, mock := newMockSummaryService(t)

	c, _ := newJSONContext(t, http.MethodPut, "/", models.UpdateSummaryRequest{EditedSummary: "   "})
	c.SetPath("/api/summary/:id")
	c.SetParamNames("id")
	c.SetParamValues("sum-1")

	err := UpdateSummaryHandler(service, cache.New())(c)
	assertAPIError(t, err, http.StatusBadRequest, "Edited summary content is required")

	assert.NoError(t, mock.ExpectationsWereMet())
}
