package service

import (
	"extractor-web/internal/models"
)

// RowFilter keeps the rows whose Name is selected and whose Units value
// parses as a positive number.
type RowFilter struct{}

func NewRowFilter() *RowFilter {
	return &RowFilter{}
}

// Filter applies the selection predicate row by row, then drops ghost
// columns (blank or "Unnamed" headers) from the result's column set. Rows
// keep their sheet order; every kept row is a fresh copy restricted to the
// surviving columns, so later enrichment never touches the source table.
func (rf *RowFilter) Filter(table *models.Table, selectedNames []string) (*models.Table, error) {
	if !table.HasColumn(colName) {
		return nil, &SchemaError{Sheet: table.SheetName, Column: colName}
	}
	if !table.HasColumn(colUnits) {
		return nil, &SchemaError{Sheet: table.SheetName, Column: colUnits}
	}

	selected := make(map[string]bool, len(selectedNames))
	for _, name := range selectedNames {
		selected[name] = true
	}

	result := &models.Table{SheetName: table.SheetName}
	for _, col := range table.Columns {
		if !isGhostColumn(col) {
			result.Columns = append(result.Columns, col)
		}
	}

	for _, row := range table.Rows {
		if !selected[row[colName]] {
			continue
		}
		units, err := parseNumber(row[colUnits])
		if err != nil || units <= 0 {
			continue
		}
		copied := make(models.Row, len(result.Columns))
		for _, col := range result.Columns {
			copied[col] = row[col]
		}
		result.Rows = append(result.Rows, copied)
	}

	return result, nil
}
