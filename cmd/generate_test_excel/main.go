package main

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Generates a sample multi-sheet portfolio workbook plus a matching
// headerless ISIN lookup workbook for manual testing of the extract flow.
func main() {
	if err := writePortfolio("test_portfolio.xlsx"); err != nil {
		fmt.Printf("Error creating portfolio workbook: %v\n", err)
		return
	}
	if err := writeLookup("test_lookup.xlsx"); err != nil {
		fmt.Printf("Error creating lookup workbook: %v\n", err)
		return
	}
	fmt.Println("Created test_portfolio.xlsx and test_lookup.xlsx")
}

func writePortfolio(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	headers := []string{
		"Name", "Units", "NBFC", "Issue Date", "Maturity Date",
		"Interest Rate", "Amount", "Settlement Date",
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	sheetOrder := []string{"Holdings Jan", "Holdings Feb"}
	sheets := map[string][][]interface{}{
		"Holdings Jan": {
			{"Alpha Fund", 100, "ACME Finance", "2020-01-01", "2021-01-01", 5, 125000, "2020-01-03"},
			{"Beta Fund", 0, "ACME Finance", "2020-02-01", "2022-02-01", 6.5, 98000, "2020-02-03"},
			{"Gamma Fund", -25, "Zenith Capital", "2020-03-01", "2023-03-01", 7, 310000, "2020-03-03"},
		},
		"Holdings Feb": {
			{"Alpha Fund", 50, "Zenith Capital", "2020-04-01", "2024-04-01", 0.055, 42000, "2020-04-03"},
			{"Delta Fund", "n/a", "ACME Finance", "2020-05-01", "2025-05-01", 8, 55000, "2020-05-03"},
		},
	}

	first := true
	for _, sheetName := range sheetOrder {
		rows := sheets[sheetName]
		if first {
			f.SetSheetName(f.GetSheetName(0), sheetName)
			first = false
		} else {
			if _, err := f.NewSheet(sheetName); err != nil {
				return err
			}
		}

		for i, header := range headers {
			cell := fmt.Sprintf("%s1", columnName(i))
			f.SetCellValue(sheetName, cell, header)
		}
		f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", columnName(len(headers)-1)), headerStyle)

		for rowIdx, rowData := range rows {
			for colIdx, value := range rowData {
				cell := fmt.Sprintf("%s%d", columnName(colIdx), rowIdx+2)
				f.SetCellValue(sheetName, cell, value)
			}
		}
	}

	return f.SaveAs(path)
}

func writeLookup(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := f.GetSheetName(0)

	// No header row; columns A, B, F, H carry entity key, ISIN, issue
	// date and maturity date. Other columns are filler the parser skips.
	rows := [][]interface{}{
		{"ACME Finance", "INE001A01001", "x", "x", "x", "2020-01-01", "x", "2021-01-01"},
		{"Zenith Capital", "INE002B02002", "x", "x", "x", "2020-04-01", "x", "2024-04-01"},
		{"ACME Finance", "INE003C03003", "x", "x", "x", "2020-05-01", "x", "not a date"},
	}

	for rowIdx, rowData := range rows {
		for colIdx, value := range rowData {
			cell := fmt.Sprintf("%s%d", columnName(colIdx), rowIdx+1)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	return f.SaveAs(path)
}

func columnName(index int) string {
	result := ""
	for index >= 0 {
		result = string(rune('A'+(index%26))) + result
		index = index/26 - 1
	}
	return result
}
