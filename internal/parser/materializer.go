package parser

import (
	"strings"

	"supriplan/internal/model"
)

// SkippedRow records why a data row was dropped during materialization.
// Callers surface only counts; the reasons are kept for diagnostics.
type SkippedRow struct {
	Row    int    `json:"row"` // zero-based grid row index
	Reason string `json:"reason"`
}

// MaterializeRows applies a column mapping to every row strictly below
// the header row and returns the surviving candidates in original row
// order. Rows whose mapped material name is empty after trimming are
// dropped without error; blank trailing rows fall out the same way.
// Numeric cells that fail to parse contribute 0, never kill the row.
func MaterializeRows(grid [][]string, headerRow int, mapping ColumnMapping) ([]model.ImportCandidate, []SkippedRow) {
	var candidates []model.ImportCandidate
	var skipped []SkippedRow

	for i := headerRow + 1; i < len(grid); i++ {
		row := grid[i]

		name := strings.TrimSpace(cellAt(row, mapping, FieldMaterial))
		if name == "" {
			skipped = append(skipped, SkippedRow{Row: i, Reason: "missing material name"})
			continue
		}

		cand := model.ImportCandidate{
			MaterialName: name,
			Code:         strings.TrimSpace(cellAt(row, mapping, FieldCode)),
			Unit:         strings.TrimSpace(cellAt(row, mapping, FieldUnit)),
			Category:     strings.TrimSpace(cellAt(row, mapping, FieldCategory)),
			Route:        strings.TrimSpace(cellAt(row, mapping, FieldRoute)),
			Location:     strings.TrimSpace(cellAt(row, mapping, FieldLocation)),
		}

		if raw := cellAt(row, mapping, FieldPredicted); raw != "" {
			if v, err := ParseLocaleNumber(raw); err == nil {
				cand.Predicted = v
			}
		}

		candidates = append(candidates, cand)
	}
	return candidates, skipped
}

// cellAt reads the mapped cell for a field, tolerating short rows and
// absent mappings.
func cellAt(row []string, mapping ColumnMapping, field Field) string {
	idx, ok := mapping[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}
