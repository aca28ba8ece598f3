package service

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"extractor-web/internal/models"
)

// Fixed column positions of the lookup workbook (no header row):
// A = entity key, B = identifier, F = issue date, H = maturity date.
const (
	lookupColEntityKey    = 0
	lookupColIdentifier   = 1
	lookupColIssueDate    = 5
	lookupColMaturityDate = 7
)

// LookupTable resolves identifiers by exact (entity key, issue date,
// maturity date) match. Entries keep their original read order; when the
// source contains duplicate keys the first entry wins. Lookups go through
// a hash index built once at parse time, so a per-row Find stays O(1).
type LookupTable struct {
	Entries []models.LookupEntry
	index   map[string]string
}

// ParseLookupTable reads the first sheet of the lookup workbook. A date
// cell that cannot be parsed becomes nil, which leaves the entry in the
// table but permanently unmatchable.
func ParseLookupTable(f *excelize.File) (*LookupTable, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in lookup workbook")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read lookup rows: %w", err)
	}

	table := &LookupTable{index: make(map[string]string)}
	for _, row := range rows {
		entry := models.LookupEntry{
			EntityKey:    getCellValue(row, lookupColEntityKey),
			Identifier:   getCellValue(row, lookupColIdentifier),
			IssueDate:    coerceDate(getCellValue(row, lookupColIssueDate)),
			MaturityDate: coerceDate(getCellValue(row, lookupColMaturityDate)),
		}
		table.Entries = append(table.Entries, entry)

		if entry.IssueDate == nil || entry.MaturityDate == nil {
			continue
		}
		key := lookupKey(entry.EntityKey, entry.IssueDate, entry.MaturityDate)
		if _, ok := table.index[key]; !ok {
			table.index[key] = entry.Identifier
		}
	}

	return table, nil
}

// Find returns the identifier for the exact triple, or "" when either date
// is missing or no entry matches.
func (t *LookupTable) Find(entityKey string, issueDate, maturityDate *time.Time) string {
	if issueDate == nil || maturityDate == nil {
		return ""
	}
	return t.index[lookupKey(entityKey, issueDate, maturityDate)]
}

func lookupKey(entityKey string, issueDate, maturityDate *time.Time) string {
	return entityKey + "|" + issueDate.Format("2006-01-02") + "|" + maturityDate.Format("2006-01-02")
}
