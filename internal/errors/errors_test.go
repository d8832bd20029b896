package errors

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError(t *testing.T) {
	err := New(http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format")
	assert.Equal(t, "Invalid request format", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
}

func TestMissingSheetsError(t *testing.T) {
	err := MissingSheetsError([]string{"СБД", "ОДТ"})
	assert.Equal(t, http.StatusUnprocessableEntity, err.StatusCode)
	assert.Equal(t, "MISSING_SHEETS", err.ErrorCode)
	assert.Equal(t, []string{"СБД", "ОДТ"}, err.Details)
}

func TestAsAPIError(t *testing.T) {
	t.Run("passes through API errors", func(t *testing.T) {
		assert.Equal(t, ErrNotFound, AsAPIError(ErrNotFound))
	})

	t.Run("unwraps wrapped API errors", func(t *testing.T) {
		wrapped := fmt.Errorf("handling request: %w", ErrInvalidWorkbook)
		assert.Equal(t, ErrInvalidWorkbook, AsAPIError(wrapped))
	})

	t.Run("defaults to internal server error", func(t *testing.T) {
		assert.Equal(t, ErrInternalServer, AsAPIError(io.ErrUnexpectedEOF))
	})
}

func TestHandleError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewErrorHandler(logger)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analysis", nil)
	h.HandleError(rec, req, InvalidWorkbookError(io.ErrUnexpectedEOF))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var payload ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.False(t, payload.Success)
	require.NotNil(t, payload.Error)
	assert.Equal(t, "INVALID_WORKBOOK", payload.Error.ErrorCode)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, ErrMissingParameter)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "MISSING_PARAMETER")
}
