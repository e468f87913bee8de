// Package exporter renders consolidated report rows for download. All
// writers share one positional column contract: code, material,
// category, unit, predicted, requested, approved.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"supriplan/internal/model"
)

// ConsolidatedHeader is the shared export header, in contract order.
var ConsolidatedHeader = []string{
	"Código", "Material", "Categoria", "Unidade", "Previsto", "Solicitado", "Aprovado",
}

// WriteCSV renders the consolidated rows as a CSV table.
func WriteCSV(w io.Writer, rows []model.ConsolidatedRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ConsolidatedHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Code,
			row.MaterialName,
			row.Category,
			row.Unit,
			formatQty(row.Predicted),
			formatQty(row.Requested),
			formatQty(row.Approved),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatQty prints quantities without a forced decimal tail.
func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
