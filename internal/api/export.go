package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"supriplan/internal/exporter"
	"supriplan/internal/model"
	"supriplan/internal/report"
)

// consolidatedRows builds the report rows for the current selection.
// With nothing selected the whole dataset is consolidated.
func (h *Handler) consolidatedRows() []model.ConsolidatedRow {
	var records []*model.MaterialRecord
	if h.selection.Count() > 0 {
		records = h.store.FilterByLocations(h.selection.Flatten())
	} else {
		records = h.store.Records()
	}
	return report.Consolidate(records)
}

// GetConsolidation returns the consolidated report rows.
// GET /api/consolidation
func (h *Handler) GetConsolidation(c *gin.Context) {
	rows := h.consolidatedRows()
	c.JSON(http.StatusOK, gin.H{"rows": rows, "total": len(rows)})
}

// ExportCSV downloads the consolidated report as CSV.
// GET /api/export/csv
func (h *Handler) ExportCSV(c *gin.Context) {
	var buf bytes.Buffer
	if err := exporter.WriteCSV(&buf, h.consolidatedRows()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao gerar CSV"})
		return
	}

	filename := fmt.Sprintf("consolidado_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportXLSX downloads the consolidated report as a workbook.
// GET /api/export/xlsx
func (h *Handler) ExportXLSX(c *gin.Context) {
	f, err := exporter.BuildWorkbook(h.consolidatedRows())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao gerar planilha"})
		return
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao gravar planilha"})
		return
	}

	filename := fmt.Sprintf("consolidado_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
