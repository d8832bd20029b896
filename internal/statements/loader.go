package statements

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Statement headers sit below a few rows of report preamble; the header
// row is searched for within this many leading rows.
const headerSearchRows = 10

// Load reads a statement workbook from disk.
func Load(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()
	return loadWorkbook(f)
}

// LoadReader reads a statement workbook from an in-memory upload.
func LoadReader(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()
	return loadWorkbook(f)
}

func loadWorkbook(f *excelize.File) (*Workbook, error) {
	wb := &Workbook{
		BalanceSheet:    loadSheet(f, SheetBalance),
		IncomeStatement: loadSheet(f, SheetIncome),
		EquityChanges:   loadSheet(f, SheetEquity),
		CashFlow:        loadSheet(f, SheetCashFlow),
	}

	// Balance sheet and income statement are the structural minimum; the
	// equity and cash flow sheets only degrade individual signals.
	var missing []string
	if wb.BalanceSheet == nil {
		missing = append(missing, string(SheetBalance))
	}
	if wb.IncomeStatement == nil {
		missing = append(missing, string(SheetIncome))
	}
	if len(missing) > 0 {
		return nil, &StructuralError{Missing: missing}
	}

	return wb, nil
}

// loadSheet parses one statement sheet into a Table, or returns nil when
// the sheet is absent or its header row cannot be located.
func loadSheet(f *excelize.File, sheet Sheet) *Table {
	rows, err := f.GetRows(string(sheet))
	if err != nil {
		slog.Debug("statement sheet not present", slog.String("sheet", string(sheet)))
		return nil
	}

	headerRow, labelCol, beginCol, endCol := findHeader(rows)
	if headerRow < 0 {
		slog.Warn("statement sheet has no recognizable header row",
			slog.String("sheet", string(sheet)),
			slog.Int("rows", len(rows)))
		return nil
	}

	t := &Table{Sheet: sheet}
	for _, row := range rows[headerRow+1:] {
		if labelCol >= len(row) {
			continue
		}
		label := strings.TrimSpace(row[labelCol])
		if label == "" {
			continue
		}
		t.Rows = append(t.Rows, Row{
			Label:     label,
			Beginning: cellAt(row, beginCol),
			End:       cellAt(row, endCol),
		})
	}

	slog.Debug("parsed statement sheet",
		slog.String("sheet", string(sheet)),
		slog.Int("line_items", len(t.Rows)))

	return t
}

// findHeader locates the row carrying the label and period column headers
// and returns their positions.
func findHeader(rows [][]string) (headerRow, labelCol, beginCol, endCol int) {
	limit := len(rows)
	if limit > headerSearchRows {
		limit = headerSearchRows
	}
	for i := 0; i < limit; i++ {
		labelCol, beginCol, endCol = -1, -1, -1
		for j, cell := range rows[i] {
			switch strings.TrimSpace(cell) {
			case labelHeader:
				labelCol = j
			case beginningHeader:
				beginCol = j
			case endHeader:
				endCol = j
			}
		}
		if labelCol >= 0 && beginCol >= 0 && endCol >= 0 {
			return i, labelCol, beginCol, endCol
		}
	}
	return -1, -1, -1, -1
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
