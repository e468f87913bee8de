package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"supriplan/internal/model"
)

const consolidatedSheet = "Consolidado"

// BuildWorkbook renders the consolidated rows as a single-sheet
// workbook with the shared column contract.
func BuildWorkbook(rows []model.ConsolidatedRow) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), consolidatedSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, title := range ConsolidatedHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(consolidatedSheet, cell, title); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
		_ = f.SetCellStyle(consolidatedSheet, cell, cell, headerStyle)
	}

	for r, row := range rows {
		values := []interface{}{
			row.Code,
			row.MaterialName,
			row.Category,
			row.Unit,
			row.Predicted,
			row.Requested,
			row.Approved,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(consolidatedSheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", r+2, err)
			}
		}
	}

	_ = f.SetColWidth(consolidatedSheet, "B", "B", 36)
	_ = f.SetColWidth(consolidatedSheet, "C", "D", 14)
	f.SetActiveSheet(0)
	return f, nil
}
