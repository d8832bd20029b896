package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"msecli/internal/analysis"
	apierrors "msecli/internal/errors"
	"msecli/internal/report"
	"msecli/internal/statements"
)

// AnalysisRunner runs one analysis pass over an uploaded workbook.
type AnalysisRunner interface {
	AnalyzeWorkbook(ctx context.Context, r io.Reader) (*analysis.AnalysisResult, error)
}

// AnalysisHandler handles statement upload and analysis requests.
type AnalysisHandler struct {
	service       AnalysisRunner
	reports       *report.Generator
	logger        *slog.Logger
	errorHandler  *apierrors.ErrorHandler
	maxUploadSize int64
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(service AnalysisRunner, logger *slog.Logger, maxUploadSize int64) *AnalysisHandler {
	return &AnalysisHandler{
		service:       service,
		reports:       report.NewGenerator(),
		logger:        logger,
		errorHandler:  apierrors.NewErrorHandler(logger),
		maxUploadSize: maxUploadSize,
	}
}

// RegisterRoutes registers the analysis routes.
func (h *AnalysisHandler) RegisterRoutes(r chi.Router) {
	r.Route("/analysis", func(r chi.Router) {
		r.Post("/", h.Analyze)
		r.Post("/report", h.AnalyzeToPDF)
	})
}

// Analyze accepts a multipart workbook upload and returns the aggregated
// analysis result as JSON.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	result, ok := h.runAnalysis(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, result)
}

// AnalyzeToPDF accepts the same upload and returns the PDF report.
func (h *AnalysisHandler) AnalyzeToPDF(w http.ResponseWriter, r *http.Request) {
	result, ok := h.runAnalysis(w, r)
	if !ok {
		return
	}

	pdfBytes, err := h.reports.Generate(result)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "PDF generation failed",
			slog.String("error", err.Error()))
		h.errorHandler.HandleError(w, r, apierrors.ErrAnalysisFailed)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="financial_ratios_report.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}

// runAnalysis extracts the uploaded file and runs the engine, writing an
// error response itself when the second return is false.
func (h *AnalysisHandler) runAnalysis(w http.ResponseWriter, r *http.Request) (*analysis.AnalysisResult, bool) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		h.logger.WarnContext(ctx, "invalid multipart upload", slog.String("error", err.Error()))
		h.errorHandler.HandleError(w, r, apierrors.ErrInvalidRequest)
		return nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
			http.StatusBadRequest, "MISSING_PARAMETER",
			"Required parameter is missing", "file"))
		return nil, false
	}
	defer file.Close()

	h.logger.InfoContext(ctx, "analyzing uploaded workbook",
		slog.String("filename", header.Filename),
		slog.Int64("size", header.Size))

	result, err := h.service.AnalyzeWorkbook(ctx, file)
	if err != nil {
		var structural *statements.StructuralError
		if errors.As(err, &structural) {
			// Sheets absent: the whole run terminates, per the error
			// contract. This is not a degraded-ratio case.
			h.errorHandler.HandleError(w, r, apierrors.MissingSheetsError(structural.Missing))
			return nil, false
		}
		h.errorHandler.HandleError(w, r, apierrors.InvalidWorkbookError(err))
		return nil, false
	}

	return result, true
}
