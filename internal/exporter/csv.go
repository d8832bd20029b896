package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"msecli/internal/analysis"
)

// Ratio values are exported with this precision.
const ratioPrecision = 4

// CSVWriter exports analysis results as CSV.
type CSVWriter struct {
	// BOMPrefix adds a UTF-8 BOM so Excel recognizes the encoding; the
	// ratio names and advisories contain Cyrillic.
	BOMPrefix bool
}

// NewCSVWriter creates a CSV writer with Excel-friendly defaults.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{BOMPrefix: true}
}

// Write exports the analysis result to w: one row per ratio with its
// category, then both composite scores with their classifications.
// Missing values are written as "N/A".
func (c *CSVWriter) Write(w io.Writer, result *analysis.AnalysisResult) error {
	if c.BOMPrefix {
		if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"Category", "Ratio", "Beginning", "End"}); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for _, group := range result.Groups {
		for _, ratio := range group.Ratios {
			record := []string{
				group.Name,
				ratio.Name,
				ratio.Beginning.Format(ratioPrecision),
				ratio.End.Format(ratioPrecision),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write record: %w", err)
			}
		}
	}

	for _, score := range []analysis.CompositeScore{result.ZScore, result.FScore} {
		record := []string{"Score", score.Name, score.Value.Format(2), score.Classification}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write score: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile exports the analysis result to a CSV file, creating parent
// directories as needed.
func (c *CSVWriter) WriteFile(path string, result *analysis.AnalysisResult) error {
	slog.Info("Writing analysis CSV",
		slog.String("path", path),
		slog.Int("groups", len(result.Groups)))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return c.Write(file, result)
}
