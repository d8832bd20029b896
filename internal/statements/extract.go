package statements

import (
	"strconv"
	"strings"

	"msecli/internal/analysis"
)

// Period selects which balance column of a statement row to extract.
type Period int

const (
	// Beginning is the beginning-of-period balance column.
	Beginning Period = iota
	// End is the end-of-period balance column.
	End
)

// Extract looks up label in the table and returns the numeric value of the
// requested period column. It returns the missing sentinel when the table
// is nil, the label is absent, or the cell is empty or non-numeric. It has
// no side effects: extracting the same label twice yields the same value.
func Extract(t *Table, label string, period Period) analysis.Scalar {
	row, ok := t.Lookup(label)
	if !ok {
		return analysis.Missing()
	}
	switch period {
	case Beginning:
		return parseCell(row.Beginning)
	case End:
		return parseCell(row.End)
	default:
		return analysis.Missing()
	}
}

// ExtractPair extracts both period values for one label.
func ExtractPair(t *Table, label string) analysis.Pair {
	return analysis.Pair{
		Beginning: Extract(t, label, Beginning),
		End:       Extract(t, label, End),
	}
}

// parseCell coerces raw cell content to a value. Thousands separators are
// stripped the way the daily-report parser does; anything that still fails
// to parse is missing, never zero.
func parseCell(raw string) analysis.Scalar {
	s := strings.TrimSpace(raw)
	if s == "" {
		return analysis.Missing()
	}
	s = strings.ReplaceAll(s, ",", "")
	// Accounting notation wraps negatives in parentheses.
	if len(s) > 2 && s[0] == '(' && s[len(s)-1] == ')' {
		s = "-" + s[1:len(s)-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return analysis.Missing()
	}
	return analysis.Of(v)
}
