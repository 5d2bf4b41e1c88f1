package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTranscriptService_NilDB(t *testing.T) {
	service, err := NewTranscriptService(nil)
	assert.Error(t, err)
	assert.Nil(t, service)
	assert.Contains(t, err.Error(), "database connection is required")
}

func TestTranscriptService_Create(t *testing.T) {
	db, mock := newMockDB(t)
	service := &TranscriptService{db: db}

	mock.ExpectExec("INSERT INTO transcripts").
		WithArgs(sqlmock.AnyArg(), "weekly-sync.txt", "Transcript text.", int64(16), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	transcript, err := service.Create(context.Background(), "weekly-sync.txt", "Transcript text.", 16)
	require.NoError(t, err)

	assert.Equal(t, "weekly-sync.txt", transcript.Filename)
	assert.Equal(t, "Transcript text.", transcript.Content)
	assert.Equal(t, int64(16), transcript.FileSize)
	assert.WithinDuration(t, time.Now().UTC(), transcript.UploadedAt, 5*time.Second)

	// IDs are generated server side
	_, err = uuid.Parse(transcript.ID)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranscriptService_Create_InsertFailure(t *testing.T) {
	db, mock := newMockDB(t)
	service := &TranscriptService{db: db}

	mock.ExpectExec("INSERT INTO transcripts").
		WillReturnError(errors.New("connection reset"))

	transcript, err := service.Create(context.Background(), "a.txt", "text", 4)
	assert.Error(t, err)
	assert.Nil(t, transcript)
	assert.Contains(t, err.Error(), "failed to save transcript")
}

func TestTranscriptService_List(t *testing.T) {
	db, mock := newMockDB(t)
	service := &TranscriptService{db: db}

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id, filename, file_size, uploaded_at FROM transcripts").
		WillReturnRows(sqlmock.NewRows([]string{"id", "filename", "file_size", "uploaded_at"}).
			AddRow("id-2", "b.txt", int64(20), now).
			AddRow("id-1", "a.txt", int64(10), now.Add(-time.Hour)))

	list, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "id-2", list[0].ID)
	assert.Empty(t, list[0].Content)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranscriptService_List_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	service := &TranscriptService{db: db}

	mock.ExpectQuery("SELECT id, filename, file_size, uploaded_at FROM transcripts").
		WillReturnRows(sqlmock.NewRows([]string{"id", "filename", "file_size", "uploaded_at"}))

	list, err := service.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestTranscriptService_Get(t *testing.T) {
	db, mock := newMockDB(t)
	service := &TranscriptService{db: db}

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id, filename, content, file_size, uploaded_at FROM transcripts WHERE id =").
		WithArgs("id-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "filename", "content", "file_size", "uploaded_at"}).
			AddRow("id-1", "a.txt", "Full text.", int64(10), now))

	transcript, err := service.Get(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, "id-1", transcript.ID)
	assert.Equal(t, "Full text.", transcript.Content)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranscriptService_Get_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	service := &TranscriptService{db: db}

	mock.ExpectQuery("SELECT id, filename, content, file_size, uploaded_at FROM transcripts WHERE id =").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "filename", "content", "file_size", "uploaded_at"}))

	transcript, err := service.Get(context.Background(), "missing")
	assert.Nil(t, transcript)
	assert.ErrorIs(t, err, ErrNotFound)
}
