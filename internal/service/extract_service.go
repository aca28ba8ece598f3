package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"extractor-web/internal/models"
)

// ExtractService runs the whole pipeline for one request: read every
// sheet, filter by the selected names, resolve identifiers against the
// lookup table, assemble, render. All components are stateless, so one
// instance is safe under concurrent requests.
type ExtractService struct {
	reader    *WorkbookReader
	filter    *RowFilter
	resolver  *IdentifierResolver
	assembler *TableAssembler
	formatter *WorkbookFormatter
}

func NewExtractService() *ExtractService {
	return &ExtractService{
		reader:    NewWorkbookReader(),
		filter:    NewRowFilter(),
		resolver:  NewIdentifierResolver(),
		assembler: NewTableAssembler(),
		formatter: NewWorkbookFormatter(),
	}
}

// CollectNames opens the workbook and reports its sheets plus the sorted
// entity-name set aggregated across all of them.
func (s *ExtractService) CollectNames(workbookPath string) (*models.WorkbookSummary, error) {
	f, err := excelize.OpenFile(workbookPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := s.reader.ListSheets(f)
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in workbook")
	}

	names, err := s.reader.CollectEntityNames(f, sheets)
	if err != nil {
		return nil, err
	}

	return &models.WorkbookSummary{SheetNames: sheets, EntityNames: names}, nil
}

// Extract produces the output workbook for the selected names. lookupPath
// may be empty; the identifier column is then inserted but stays blank.
// ErrNoMatchingRows reports the (normal) empty outcome; a *SchemaError
// aborts the whole request. Formatting only happens once every sheet has
// been assembled, so a failed request never yields a partial artifact.
func (s *ExtractService) Extract(workbookPath, lookupPath string, selectedNames []string) ([]byte, error) {
	f, err := excelize.OpenFile(workbookPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	var lookup *LookupTable
	if lookupPath != "" {
		lf, err := excelize.OpenFile(lookupPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open lookup workbook: %w", err)
		}
		defer lf.Close()

		if lookup, err = ParseLookupTable(lf); err != nil {
			return nil, err
		}
	}

	var filtered []*models.Table
	for _, sheetName := range s.reader.ListSheets(f) {
		table, err := s.reader.ReadSheet(f, sheetName)
		if err != nil {
			return nil, err
		}
		if len(table.Columns) == 0 {
			continue
		}

		result, err := s.filter.Filter(table, selectedNames)
		if err != nil {
			return nil, err
		}
		filtered = append(filtered, s.resolver.Enrich(result, lookup))
	}

	combined, err := s.assembler.Assemble(filtered)
	if err != nil {
		return nil, err
	}

	return s.formatter.Render(combined)
}
