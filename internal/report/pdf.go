// Package report renders a completed analysis as a PDF document.
package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"msecli/internal/analysis"
)

const (
	pageLeftMargin = 15.0
	lineHeight     = 7.0

	nameColWidth  = 90.0
	valueColWidth = 45.0
)

// Generator renders analysis results to PDF.
type Generator struct {
	title string
}

// NewGenerator creates a PDF generator.
func NewGenerator() *Generator {
	return &Generator{title: "Financial Ratios Report"}
}

// Generate renders the result as an A4 PDF and returns the document bytes.
func (g *Generator) Generate(result *analysis.AnalysisResult) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageLeftMargin, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, g.title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, group := range result.Groups {
		g.renderGroup(pdf, group)
	}

	g.renderScore(pdf, result.ZScore)
	g.renderScore(pdf, result.FScore)

	if len(result.Advisories) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 10)
		for _, advisory := range result.Advisories {
			pdf.MultiCell(0, 6, advisory, "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF output: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *Generator) renderGroup(pdf *fpdf.Fpdf, group analysis.RatioGroup) {
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 9, group.Name+" Ratios", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(nameColWidth, lineHeight, "Ratio", "1", 0, "L", true, 0, "")
	pdf.CellFormat(valueColWidth, lineHeight, "Beginning", "1", 0, "R", true, 0, "")
	pdf.CellFormat(valueColWidth, lineHeight, "End", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, ratio := range group.Ratios {
		pdf.CellFormat(nameColWidth, lineHeight, ratio.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(valueColWidth, lineHeight, ratio.Beginning.Format(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(valueColWidth, lineHeight, ratio.End.Format(2), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(5)
}

func (g *Generator) renderScore(pdf *fpdf.Fpdf, score analysis.CompositeScore) {
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 9, score.Name, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, lineHeight,
		fmt.Sprintf("Score: %s    Classification: %s", score.Value.Format(2), score.Classification),
		"", 1, "L", false, 0, "")
	pdf.Ln(3)
}
