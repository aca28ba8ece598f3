package models

// Row maps column names to raw cell values. Values stay as the strings
// excelize read from the sheet; numeric and date coercion happens at the
// point of use (filtering, lookup, formatting).
type Row map[string]string

// Table is an ordered set of rows plus the column order they share.
// Columns drive iteration order everywhere; the maps in Rows never grow
// keys outside Columns.
type Table struct {
	SheetName string   `json:"sheet_name"`
	Columns   []string `json:"columns"`
	Rows      []Row    `json:"rows"`
}

// HasColumn reports whether name is part of the table's column set.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// ColumnIndex returns the position of name in Columns, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// InsertColumnAfter adds a new column immediately after the named one and
// fills it with value in every row. No-op if after is absent or the column
// already exists.
func (t *Table) InsertColumnAfter(after, name, value string) {
	if t.HasColumn(name) {
		return
	}
	idx := t.ColumnIndex(after)
	if idx < 0 {
		return
	}
	cols := make([]string, 0, len(t.Columns)+1)
	cols = append(cols, t.Columns[:idx+1]...)
	cols = append(cols, name)
	cols = append(cols, t.Columns[idx+1:]...)
	t.Columns = cols

	for _, row := range t.Rows {
		row[name] = value
	}
}

// WorkbookSummary is what the upload endpoint reports back: the sheets the
// workbook contains and the aggregated, sorted entity-name set.
type WorkbookSummary struct {
	SheetNames  []string `json:"sheet_names"`
	EntityNames []string `json:"entity_names"`
}
