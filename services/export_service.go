// File: /services/export_service.go
package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const templateSheet = "Events"

type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// TemplateColumns returns the template header row: required columns first,
// optional columns after, in the order the importer documents them.
func TemplateColumns() []string {
	columns := make([]string, 0, len(RequiredColumns)+len(OptionalColumns))
	columns = append(columns, RequiredColumns...)
	columns = append(columns, OptionalColumns...)
	return columns
}

// BuildTemplate produces an .xlsx workbook with the import header row and a
// couple of example rows, so that an unmodified template imports cleanly.
func (s *ExportService) BuildTemplate() (*excelize.File, error) {
	workbook := excelize.NewFile()
	if err := workbook.SetSheetName("Sheet1", templateSheet); err != nil {
		return nil, fmt.Errorf("failed to prepare template sheet: %w", err)
	}

	header := TemplateColumns()
	headerRow := make([]interface{}, len(header))
	for i, name := range header {
		headerRow[i] = name
	}
	if err := workbook.SetSheetRow(templateSheet, "A1", &headerRow); err != nil {
		return nil, fmt.Errorf("failed to write template header: %w", err)
	}

	exampleRows := [][]interface{}{
		{
			"Friday", "2025-10-03", "18:30", 120, "Community Hall", 25,
			"confirmed", "17:45", "2025-10-03", "Main entrance", "Minibus",
			"Ahmed", "group", "Monthly gathering",
		},
		{
			"Sunday", "2025-10-12", "10:00", 90, "Riverside Park", 40,
			"pending", "", "", "", "", "", "individual", "",
		},
	}
	for i, row := range exampleRows {
		cellRef := fmt.Sprintf("A%d", i+2)
		if err := workbook.SetSheetRow(templateSheet, cellRef, &row); err != nil {
			return nil, fmt.Errorf("failed to write example row: %w", err)
		}
	}

	if err := workbook.SetColWidth(templateSheet, "A", "N", 20); err != nil {
		return nil, fmt.Errorf("failed to size template columns: %w", err)
	}

	return workbook, nil
}
