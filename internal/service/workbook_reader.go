package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"extractor-web/internal/models"
)

// Column names the pipeline keys on. These are a contract with the source
// workbooks, not something to normalize or guess at.
const (
	colName         = "Name"
	colUnits        = "Units"
	colEntityKey    = "NBFC"
	colIdentifier   = "ISIN"
	colIssueDate    = "Issue Date"
	colMaturityDate = "Maturity Date"
)

// Every sheet read is capped at columns A through J, whatever the sheet's
// real width.
const maxSheetColumns = 10

// WorkbookReader turns uploaded workbooks into Tables.
type WorkbookReader struct{}

func NewWorkbookReader() *WorkbookReader {
	return &WorkbookReader{}
}

// ListSheets returns the workbook's sheet names in workbook order.
func (r *WorkbookReader) ListSheets(f *excelize.File) []string {
	return f.GetSheetList()
}

// ReadSheet loads one sheet as a Table: row 1 is the header, data rows
// follow. A blank header cell still becomes a column, named
// "Unnamed: <position>" so the downstream ghost-column drop can spot it.
func (r *WorkbookReader) ReadSheet(f *excelize.File, sheetName string) (*models.Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	table := &models.Table{SheetName: sheetName}
	if len(rows) == 0 {
		return table, nil
	}

	header := rows[0]
	if len(header) > maxSheetColumns {
		header = header[:maxSheetColumns]
	}
	for i, name := range header {
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("%s: %d", unnamedColumnPrefix, i)
		}
		table.Columns = append(table.Columns, name)
	}

	for _, raw := range rows[1:] {
		row := make(models.Row, len(table.Columns))
		for i, col := range table.Columns {
			row[col] = getCellValue(raw, i)
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// CollectEntityNames unions the "Name" column of every listed sheet into a
// sorted, de-duplicated set. A sheet without a Name column is a schema
// problem the caller has to see, not something to skip over; sheets with no
// header row at all contribute nothing.
func (r *WorkbookReader) CollectEntityNames(f *excelize.File, sheetNames []string) ([]string, error) {
	seen := map[string]bool{}
	for _, sheetName := range sheetNames {
		table, err := r.ReadSheet(f, sheetName)
		if err != nil {
			return nil, err
		}
		if len(table.Columns) == 0 {
			continue
		}
		if !table.HasColumn(colName) {
			return nil, &SchemaError{Sheet: sheetName, Column: colName}
		}
		for _, row := range table.Rows {
			if v := row[colName]; v != "" {
				seen[v] = true
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
