package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msecli/internal/analysis"
	"msecli/internal/statements"
)

type stubRunner struct {
	result *analysis.AnalysisResult
	err    error
}

func (s *stubRunner) AnalyzeWorkbook(_ context.Context, _ io.Reader) (*analysis.AnalysisResult, error) {
	return s.result, s.err
}

func newTestRouter(runner AnalysisRunner) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAnalysisHandler(runner, logger, 1<<20)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func multipartUpload(t *testing.T, field string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, "statements.xlsx")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func grayZoneResult() *analysis.AnalysisResult {
	return analysis.Analyze(analysis.Fundamentals{
		CurrentAssets:      analysis.Pair{End: analysis.Of(100)},
		CurrentLiabilities: analysis.Pair{End: analysis.Of(50)},
		TotalAssets:        analysis.Pair{End: analysis.Of(1000)},
		RetainedEarnings:   analysis.Pair{End: analysis.Of(200)},
		EBIT:               analysis.Pair{End: analysis.Of(80)},
		TotalEquity:        analysis.Pair{End: analysis.Of(400)},
		ShortTermLoans:     analysis.Pair{End: analysis.Of(100)},
		LongTermLoans:      analysis.Pair{End: analysis.Of(500)},
	})
}

func TestAnalyzeSuccess(t *testing.T) {
	router := newTestRouter(&stubRunner{result: grayZoneResult()})

	body, contentType := multipartUpload(t, "file", []byte("workbook bytes"))
	req := httptest.NewRequest(http.MethodPost, "/analysis", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var payload struct {
		ZScore struct {
			Value          *float64 `json:"value"`
			Classification string   `json:"classification"`
		} `json:"z_score"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.NotNil(t, payload.ZScore.Value)
	assert.InDelta(t, 2.2176, *payload.ZScore.Value, 1e-9)
	assert.Equal(t, "Gray Zone", payload.ZScore.Classification)
}

func TestAnalyzeMissingSheets(t *testing.T) {
	router := newTestRouter(&stubRunner{
		err: &statements.StructuralError{Missing: []string{"СБД", "ОДТ"}},
	})

	body, contentType := multipartUpload(t, "file", []byte("workbook bytes"))
	req := httptest.NewRequest(http.MethodPost, "/analysis", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var payload struct {
		Success bool `json:"success"`
		Error   struct {
			ErrorCode string   `json:"error_code"`
			Details   []string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.False(t, payload.Success)
	assert.Equal(t, "MISSING_SHEETS", payload.Error.ErrorCode)
	assert.Contains(t, payload.Error.Details, "СБД")
}

func TestAnalyzeMalformedWorkbook(t *testing.T) {
	router := newTestRouter(&stubRunner{err: io.ErrUnexpectedEOF})

	body, contentType := multipartUpload(t, "file", []byte("not an xlsx"))
	req := httptest.NewRequest(http.MethodPost, "/analysis", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var payload struct {
		Error struct {
			ErrorCode string `json:"error_code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "INVALID_WORKBOOK", payload.Error.ErrorCode)
}

func TestAnalyzeMissingFileField(t *testing.T) {
	router := newTestRouter(&stubRunner{result: grayZoneResult()})

	body, contentType := multipartUpload(t, "wrong_field", []byte("workbook bytes"))
	req := httptest.NewRequest(http.MethodPost, "/analysis", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var payload struct {
		Error struct {
			ErrorCode string `json:"error_code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "MISSING_PARAMETER", payload.Error.ErrorCode)
}

func TestAnalyzeNotMultipart(t *testing.T) {
	router := newTestRouter(&stubRunner{result: grayZoneResult()})

	req := httptest.NewRequest(http.MethodPost, "/analysis", bytes.NewBufferString("plain body"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeToPDF(t *testing.T) {
	router := newTestRouter(&stubRunner{result: grayZoneResult()})

	body, contentType := multipartUpload(t, "file", []byte("workbook bytes"))
	req := httptest.NewRequest(http.MethodPost, "/analysis/report", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "financial_ratios_report.pdf")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}
