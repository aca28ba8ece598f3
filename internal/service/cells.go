package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Pandas-style marker assigned to blank header cells at read time; the row
// filter drops any column whose name starts with it.
const unnamedColumnPrefix = "Unnamed"

func isGhostColumn(name string) bool {
	return strings.TrimSpace(name) == "" || strings.HasPrefix(name, unnamedColumnPrefix)
}

func getCellValue(row []string, index int) string {
	if index < len(row) {
		return row[index]
	}
	return ""
}

// parseNumber coerces a cell value to a float. Whitespace is trimmed and
// thousands commas stripped; a lone dash or anything else unparseable is an
// error, which callers treat as "fails the predicate", never as a failure.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	s = strings.ReplaceAll(s, ",", "")
	return strconv.ParseFloat(s, 64)
}

var dateFormats = []string{
	"01-02-06",              // MM-DD-YY (Excel US format with dash)
	"01/02/2006",            // MM/DD/YYYY (US format)
	"01/02/2006 3:04:05 PM", // MM/DD/YYYY with time
	"01/02/06",              // MM/DD/YY (short year)
	"1/2/2006",              // M/D/YYYY
	"2006-01-02",            // YYYY-MM-DD (ISO standard)
	"2006-01-02 15:04:05",   // ISO with time
	"2006/01/02",            // YYYY/MM/DD
	"02-01-2006",            // DD-MM-YYYY (European format)
	"02/01/2006",            // DD/MM/YYYY (European format)
	"Jan 02, 2006",          // Month DD, YYYY
	"02 Jan 2006",           // DD Month YYYY
	"2-Jan-06",              // D-Mon-YY
	"Jan-06",                // Mon-YY
}

// parseDate tries the common textual formats, then falls back to raw Excel
// serial numbers (a date cell with General formatting reads back as its
// serial). Results are truncated to the calendar day in UTC so that join
// keys compare exactly.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return truncateToDay(t), nil
		}
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return truncateToDay(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", s)
}

// coerceDate is the lenient form of parseDate: anything unparseable maps
// to nil instead of an error.
func coerceDate(s string) *time.Time {
	t, err := parseDate(s)
	if err != nil {
		return nil
	}
	return &t
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func getColumnName(index int) string {
	result := ""
	for index >= 0 {
		result = string(rune('A'+(index%26))) + result
		index = index/26 - 1
	}
	return result
}
