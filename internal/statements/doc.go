// Package statements loads uploaded financial statement workbooks and
// extracts named line items from them.
//
// A workbook carries up to four sheets keyed by fixed Mongolian
// identifiers: СБД (balance sheet), ОДТ (income statement), ӨӨТ (changes
// in equity), МГТ (cash flow). Line-item labels are matched verbatim —
// case- and diacritic-sensitive — against the configured label table.
// Missing labels and non-numeric cells extract as the missing sentinel;
// only the structural absence of the two required sheets fails a load.
package statements
