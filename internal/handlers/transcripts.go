package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Abhisar-git/Meeting-Summerizer/internal/cache"
	"github.com/Abhisar-git/Meeting-Summerizer/internal/database"
	"github.com/Abhisar-git/Meeting-Summerizer/internal/httperr"
	"github.com/Abhisar-git/Meeting-Summerizer/internal/models"
	"github.com/Abhisar-git/Meeting-Summerizer/internal/utils"

	"github.com/labstack/echo/v4"
)

// maxUploadBytes is the upload size limit for both the file and text paths.
const maxUploadBytes = 10 << 20 // 10 MiB

// Cache keys for the list endpoints
const (
	transcriptListCacheKey = "transcripts_list"
	summaryListCacheKey    = "summaries_list"
)

// UploadTranscriptHandler handles transcript uploads, either a multipart
// file in the "transcript" field or pasted text in the "content" field
// @Summary Upload a transcript
// @Description Accepts a plain-text file or pasted transcript text
// @Tags transcripts
// @Accept mpfd
// @Accept json
// @Produce json
// @Param request body models.UploadRequest false "Pasted transcript"
// @Success 200 {object} models.UploadResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 413 {object} models.ErrorResponse
// @Failure 415 {object} models.ErrorResponse
// @Router /api/upload [post]
func UploadTranscriptHandler(transcripts *database.TranscriptService, listCache *cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var content, filename string
		var fileSize int64

		if file, err := c.FormFile("transcript"); err == nil {
			if file.Size > maxUploadBytes {
				return httperr.PayloadTooLarge("Transcript file exceeds the 10MB limit")
			}

			contentType := file.Header.Get(echo.HeaderContentType)
			if !strings.Contains(strings.ToLower(contentType), "text/plain") {
				return httperr.UnsupportedMedia("Only .txt files are allowed")
			}

			src, err := file.Open()
			if err != nil {
				return httperr.Internal(err, "Failed to read uploaded file")
			}
			defer src.Close()

			data, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
			if err != nil {
				return httperr.Internal(err, "Failed to read uploaded file")
			}
			if int64(len(data)) > maxUploadBytes {
				return httperr.PayloadTooLarge("Transcript file exceeds the 10MB limit")
			}

			content = string(data)
			filename = file.Filename
			fileSize = int64(len(data))
		} else {
			var req models.UploadRequest
			if err := c.Bind(&req); err != nil {
				return httperr.Validation("Invalid request body: %v", err)
			}

			if req.Content == "" {
				return httperr.Validation("No transcript content provided")
			}

			content = req.Content
			fileSize = int64(len(content))
			if fileSize > maxUploadBytes {
				return httperr.PayloadTooLarge("Transcript content exceeds the 10MB limit")
			}

			filename = req.Filename
			if filename == "" {
				filename = fmt.Sprintf("pasted-text-%d.txt", time.Now().UnixMilli())
			}
		}

		if strings.TrimSpace(content) == "" {
			return httperr.Validation("Transcript content is empty")
		}

		transcript, err := transcripts.Create(c.Request().Context(), filename, content, fileSize)
		if err != nil {
			return httperr.Internal(err, "Failed to upload transcript")
		}

		listCache.Delete(transcriptListCacheKey)

		return c.JSON(http.StatusOK, models.UploadResponse{
			Message:      "Transcript uploaded successfully",
			TranscriptID: transcript.ID,
			Filename:     transcript.Filename,
			FileSize:     transcript.FileSize,
			UploadedAt:   transcript.UploadedAt,
		})
	}
}

// ListTranscriptsHandler returns all transcripts, newest first
// @Summary List transcripts
// @Tags transcripts
// @Produce json
// @Success 200 {array} models.Transcript
// @Router /api/transcripts [get]
func ListTranscriptsHandler(transcripts *database.TranscriptService, listCache *cache.Cache, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		if cached, found := listCache.Get(transcriptListCacheKey); found {
			if list, ok := cached.([]models.Transcript); ok {
				return c.JSON(http.StatusOK, list)
			}
		}

		list, err := transcripts.List(c.Request().Context())
		if err != nil {
			return httperr.Internal(err, "Failed to fetch transcripts")
		}

		for i := range list {
			list[i].DisplayTitle = utils.TitleFromFilename(list[i].Filename)
		}

		listCache.Set(transcriptListCacheKey, list, ttl)

		return c.JSON(http.StatusOK, list)
	}
}

// GetTranscriptHandler returns a single transcript with its content
// @Summary Get a transcript
// @Tags transcripts
// @Produce json
// @Param id path string true "Transcript ID"
// @Success 200 {object} models.Transcript
// @Failure 404 {object} models.ErrorResponse
// @Router /api/transcript/{id} [get]
func GetTranscriptHandler(transcripts *database.TranscriptService) echo.HandlerFunc {
	return func(c echo.Context) error {
		transcript, err := transcripts.Get(c.Request().Context(), c.Param("id"))
		if err == database.ErrNotFound {
			return httperr.NotFound("Transcript not found")
		}
		if err != nil {
			return httperr.Internal(err, "Failed to fetch transcript")
		}

		transcript.DisplayTitle = utils.TitleFromFilename(transcript.Filename)

		return c.JSON(http.StatusOK, transcript)
	}
}
