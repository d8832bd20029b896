package statements

import (
	"fmt"
	"strings"
)

// Sheet identifies one of the four logical statement sheets by its fixed
// name in the uploaded workbook.
type Sheet string

const (
	// SheetBalance is the balance sheet ("Санхүүгийн байдлын тайлан").
	SheetBalance Sheet = "СБД"
	// SheetIncome is the income statement ("Орлогын дэлгэрэнгүй тайлан").
	SheetIncome Sheet = "ОДТ"
	// SheetEquity is the statement of changes in equity.
	SheetEquity Sheet = "ӨӨТ"
	// SheetCashFlow is the cash flow statement.
	SheetCashFlow Sheet = "МГТ"
)

// Column headers identifying the label and the two period columns. The
// statements are in Mongolian Cyrillic and the headers must match verbatim.
const (
	labelHeader     = "Үзүүлэлт"
	beginningHeader = "Эхний үлдэгдэл"
	endHeader       = "Эцсийн үлдэгдэл"
)

// Row is a single statement line: a textual label and the raw cell content
// of the beginning and end period columns. Values stay as strings until
// extraction so that non-numeric content coerces to missing, not zero.
type Row struct {
	Label     string
	Beginning string
	End       string
}

// Table is one parsed statement sheet. Row order is preserved; labels are
// not guaranteed unique in the source, lookup uses first match.
type Table struct {
	Sheet Sheet
	Rows  []Row
}

// Lookup returns the first row whose label equals label exactly. No
// trimming beyond what the loader already did, no case folding, no
// diacritic normalization.
func (t *Table) Lookup(label string) (Row, bool) {
	if t == nil {
		return Row{}, false
	}
	for _, r := range t.Rows {
		if r.Label == label {
			return r, true
		}
	}
	return Row{}, false
}

// Workbook holds the statement tables of one upload. BalanceSheet and
// IncomeStatement are always present (the loader fails otherwise); the
// other two may be nil.
type Workbook struct {
	BalanceSheet    *Table
	IncomeStatement *Table
	EquityChanges   *Table
	CashFlow        *Table
}

// Table returns the table for the given sheet, which may be nil.
func (w *Workbook) Table(sheet Sheet) *Table {
	switch sheet {
	case SheetBalance:
		return w.BalanceSheet
	case SheetIncome:
		return w.IncomeStatement
	case SheetEquity:
		return w.EquityChanges
	case SheetCashFlow:
		return w.CashFlow
	default:
		return nil
	}
}

// StructuralError reports that the upload is unusable as a whole: one or
// both required statement sheets are absent or lack the expected columns.
// Unlike a missing line item, this terminates the analysis run.
type StructuralError struct {
	Missing []string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("required statement sheets missing or malformed: %s", strings.Join(e.Missing, ", "))
}
