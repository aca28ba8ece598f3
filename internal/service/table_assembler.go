package service

import "extractor-web/internal/models"

// TableAssembler concatenates the per-sheet results into one rectangular
// table.
type TableAssembler struct{}

func NewTableAssembler() *TableAssembler {
	return &TableAssembler{}
}

// Assemble merges the tables in input order, preserving within-table row
// order. Columns are the union, in order of first appearance, across the
// tables that contributed rows; a row missing a column gets an empty value
// so the output stays rectangular. When no table contributed any row the
// result is ErrNoMatchingRows.
func (a *TableAssembler) Assemble(tables []*models.Table) (*models.Table, error) {
	combined := &models.Table{SheetName: "Extracted"}
	seen := map[string]bool{}

	for _, table := range tables {
		if table == nil || len(table.Rows) == 0 {
			continue
		}
		for _, col := range table.Columns {
			if !seen[col] {
				seen[col] = true
				combined.Columns = append(combined.Columns, col)
			}
		}
		combined.Rows = append(combined.Rows, table.Rows...)
	}

	if len(combined.Rows) == 0 {
		return nil, ErrNoMatchingRows
	}

	for _, row := range combined.Rows {
		for _, col := range combined.Columns {
			if _, ok := row[col]; !ok {
				row[col] = ""
			}
		}
	}

	return combined, nil
}
