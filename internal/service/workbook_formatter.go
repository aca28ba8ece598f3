package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"extractor-web/internal/models"
)

const outputSheetName = "Extracted"

// Number formats applied to the output workbook.
const (
	numFmtPercent      = "0.00%"
	numFmtThousands    = "#,##0"
	numFmtDayMonthYear = "DD-MMM-YY"
	numFmtMonthYear    = "MMM-YY"
)

type columnFormat int

const (
	formatNone columnFormat = iota
	formatInterest
	formatAmount
	formatDayMonthYear
	formatMonthYear
)

// classifyColumn picks the presentation rule for a column by header text.
// Column-name conventions are a domain contract with the source workbooks;
// the rules below are evaluated in priority order, first match wins:
//  1. name contains "Interest" (case-sensitive)              -> percentage
//  2. name contains "Amount" (case-sensitive)                -> thousands
//  3. name contains "Date", not issue/maturity (insensitive) -> DD-MMM-YY
//  4. name mentions issue/maturity (case-insensitive)        -> MMM-YY
func classifyColumn(name string) columnFormat {
	lower := strings.ToLower(name)
	issueOrMaturity := strings.Contains(lower, "issue") || strings.Contains(lower, "maturity")

	switch {
	case strings.Contains(name, "Interest"):
		return formatInterest
	case strings.Contains(name, "Amount"):
		return formatAmount
	case strings.Contains(name, "Date") && !issueOrMaturity:
		return formatDayMonthYear
	case issueOrMaturity:
		return formatMonthYear
	}
	return formatNone
}

// WorkbookFormatter renders the combined table into an in-memory xlsx
// workbook named "Extracted". It touches no disk or network.
type WorkbookFormatter struct{}

func NewWorkbookFormatter() *WorkbookFormatter {
	return &WorkbookFormatter{}
}

// Render writes the header row, then every data row in order, applying the
// column's number format to each non-empty cell, and sizes each column to
// min(longest stringified cell + 2, 50).
func (w *WorkbookFormatter) Render(table *models.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(outputSheetName)
	if err != nil {
		return nil, err
	}

	styles, err := newColumnStyles(f)
	if err != nil {
		return nil, fmt.Errorf("failed to register styles: %w", err)
	}

	widths := make([]int, len(table.Columns))
	for i, col := range table.Columns {
		cell := fmt.Sprintf("%s1", getColumnName(i))
		f.SetCellValue(outputSheetName, cell, col)
		widths[i] = len(col)
	}

	for rowIdx, row := range table.Rows {
		for colIdx, col := range table.Columns {
			cell := fmt.Sprintf("%s%d", getColumnName(colIdx), rowIdx+2)
			text := w.writeCell(f, cell, col, row[col], styles)
			if len(text) > widths[colIdx] {
				widths[colIdx] = len(text)
			}
		}
	}

	for i := range table.Columns {
		colName := getColumnName(i)
		width := float64(widths[i] + 2)
		if width > 50 {
			width = 50
		}
		f.SetColWidth(outputSheetName, colName, colName, width)
	}

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writeCell writes one data cell under the column's presentation rule and
// returns the text used for width sizing. Empty cells get neither value nor
// style; a value that fails to coerce is written as-is but still styled, so
// a matched column presents uniformly.
func (w *WorkbookFormatter) writeCell(f *excelize.File, cell, column, value string, styles map[columnFormat]int) string {
	if value == "" {
		return ""
	}

	format := classifyColumn(column)
	text := value

	switch format {
	case formatInterest:
		if v, err := parseNumber(value); err == nil {
			// Raw percentages stored as e.g. 5 instead of 0.05.
			if v > 1 {
				v = v / 100
			}
			f.SetCellValue(outputSheetName, cell, v)
			text = strconv.FormatFloat(v, 'f', -1, 64)
		} else {
			f.SetCellValue(outputSheetName, cell, value)
		}
	case formatAmount:
		if v, err := parseNumber(value); err == nil {
			f.SetCellValue(outputSheetName, cell, v)
			text = strconv.FormatFloat(v, 'f', -1, 64)
		} else {
			f.SetCellValue(outputSheetName, cell, value)
		}
	case formatDayMonthYear, formatMonthYear:
		if t, err := parseDate(value); err == nil {
			f.SetCellValue(outputSheetName, cell, t)
		} else {
			f.SetCellValue(outputSheetName, cell, value)
		}
	default:
		// Unstyled columns still keep numbers as numbers.
		if v, err := parseNumber(value); err == nil {
			f.SetCellValue(outputSheetName, cell, v)
			text = strconv.FormatFloat(v, 'f', -1, 64)
		} else {
			f.SetCellValue(outputSheetName, cell, value)
		}
		return text
	}

	f.SetCellStyle(outputSheetName, cell, cell, styles[format])
	return text
}

func newColumnStyles(f *excelize.File) (map[columnFormat]int, error) {
	formats := map[columnFormat]string{
		formatInterest:     numFmtPercent,
		formatAmount:       numFmtThousands,
		formatDayMonthYear: numFmtDayMonthYear,
		formatMonthYear:    numFmtMonthYear,
	}

	styles := make(map[columnFormat]int, len(formats))
	for format, numFmt := range formats {
		numFmt := numFmt
		styleID, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
		if err != nil {
			return nil, err
		}
		styles[format] = styleID
	}
	return styles, nil
}
