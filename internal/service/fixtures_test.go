package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type sheetFixture struct {
	name string
	rows [][]interface{}
}

// buildWorkbook assembles an in-memory workbook from row literals. Dates go
// in as ISO strings so the values read back exactly as written.
func buildWorkbook(t *testing.T, sheets ...sheetFixture) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	for i, sheet := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName(f.GetSheetName(0), sheet.name))
		} else {
			_, err := f.NewSheet(sheet.name)
			require.NoError(t, err)
		}
		writeRows(t, f, sheet.name, sheet.rows)
	}
	return f
}

func writeRows(t *testing.T, f *excelize.File, sheetName string, rows [][]interface{}) {
	t.Helper()
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheetName, cell, value))
		}
	}
}

// saveWorkbook writes the workbook into a temp dir and returns its path.
func saveWorkbook(t *testing.T, f *excelize.File, filename string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), filename)
	require.NoError(t, f.SaveAs(path))
	return path
}
