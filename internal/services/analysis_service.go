package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"msecli/internal/analysis"
	"msecli/internal/statements"
)

// AnalysisService runs a full analysis pass over an uploaded workbook:
// load, extract, compute, classify, aggregate. Each call works on its own
// workbook snapshot; the service holds no per-run state.
type AnalysisService struct {
	logger *slog.Logger
	items  []statements.LineItem
}

// NewAnalysisService creates an analysis service with the default
// line-item label table.
func NewAnalysisService(logger *slog.Logger) *AnalysisService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisService{
		logger: logger,
		items:  statements.DefaultLineItems,
	}
}

// NewAnalysisServiceWithItems creates an analysis service with a custom
// label table, used by deployments whose statements deviate from the
// standard captions.
func NewAnalysisServiceWithItems(logger *slog.Logger, items []statements.LineItem) *AnalysisService {
	s := NewAnalysisService(logger)
	s.items = items
	return s
}

// AnalyzeWorkbook reads a statement workbook and returns the aggregated
// analysis result. A StructuralError from the loader passes through to the
// caller; individual missing line items only degrade ratios.
func (s *AnalysisService) AnalyzeWorkbook(ctx context.Context, r io.Reader) (*analysis.AnalysisResult, error) {
	start := time.Now()
	analysesTotal.Inc()

	wb, err := statements.LoadReader(r)
	if err != nil {
		analysisFailures.Inc()
		s.logger.WarnContext(ctx, "workbook load failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("load workbook: %w", err)
	}

	fundamentals := statements.ExtractFundamentals(wb, s.items)
	result := analysis.Analyze(fundamentals)

	analysisDuration.Observe(time.Since(start).Seconds())
	s.logger.InfoContext(ctx, "analysis completed",
		slog.Int("ratio_groups", len(result.Groups)),
		slog.String("z_score", result.ZScore.Value.Format(2)),
		slog.String("z_classification", result.ZScore.Classification),
		slog.String("f_score", result.FScore.Value.Format(0)),
		slog.String("f_classification", result.FScore.Classification),
		slog.Duration("duration", time.Since(start)))

	return result, nil
}

// AnalyzeFile is the CLI entry: reads the workbook from disk.
func (s *AnalysisService) AnalyzeFile(ctx context.Context, path string) (*analysis.AnalysisResult, error) {
	start := time.Now()
	analysesTotal.Inc()

	wb, err := statements.Load(path)
	if err != nil {
		analysisFailures.Inc()
		return nil, fmt.Errorf("load workbook: %w", err)
	}

	fundamentals := statements.ExtractFundamentals(wb, s.items)
	result := analysis.Analyze(fundamentals)

	analysisDuration.Observe(time.Since(start).Seconds())
	return result, nil
}
