// Package importer drives one spreadsheet through the detection,
// mapping and materialization pipeline and merges the result into the
// dataset.
package importer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"supriplan/internal/parser"
	"supriplan/internal/store"
)

// Coordinator runs imports against the dataset and records each run in
// the history log when one is attached.
type Coordinator struct {
	store   *store.MemoryStore
	history *store.HistoryStore
}

// NewCoordinator creates an import coordinator. history may be nil.
func NewCoordinator(dataset *store.MemoryStore, history *store.HistoryStore) *Coordinator {
	return &Coordinator{store: dataset, history: history}
}

// Report summarizes one import run. Handlers surface only the counts;
// the per-row skip reasons stay available for diagnostics.
type Report struct {
	Filename    string              `json:"filename"`
	HeaderRow   int                 `json:"headerRow"`
	TotalRows   int                 `json:"totalRows"`
	Accepted    int                 `json:"accepted"`
	Skipped     int                 `json:"skipped"`
	SkippedRows []parser.SkippedRow `json:"skippedRows,omitempty"`
	Duration    time.Duration       `json:"duration"`
}

// ImportFile reads the file fully into a cell grid, runs the pipeline
// and merges the surviving rows. An unreadable file fails the whole
// operation and leaves the dataset untouched; everything after a
// successful read is recovered row by row.
func (c *Coordinator) ImportFile(path string) (*Report, error) {
	start := time.Now()
	filename := filepath.Base(path)

	grid, err := readGrid(path)
	if err != nil {
		c.logRun(filename, 0, 0, 0, "error", err.Error())
		return nil, err
	}

	headerRow, headerCells := parser.DetectHeader(grid)
	mapping := parser.MapColumns(headerCells)
	candidates, skipped := parser.MaterializeRows(grid, headerRow, mapping)

	accepted := c.store.Merge(candidates)

	report := &Report{
		Filename:    filename,
		HeaderRow:   headerRow,
		TotalRows:   accepted + len(skipped),
		Accepted:    accepted,
		Skipped:     len(skipped),
		SkippedRows: skipped,
		Duration:    time.Since(start),
	}
	c.logRun(filename, report.TotalRows, accepted, len(skipped), "done", "")
	return report, nil
}

// logRun records the run in the history store, best effort.
func (c *Coordinator) logRun(filename string, total, accepted, skipped int, status, errMsg string) {
	if c.history == nil {
		return
	}
	_, _ = c.history.LogImport(filename, total, accepted, skipped, status, errMsg)
}

// readGrid loads the whole file into a 2-D cell grid: sheet 1 of a
// workbook, or a single CSV table.
func readGrid(path string) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return readCSVGrid(path)
	}
	return readWorkbookGrid(path)
}

func readWorkbookGrid(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func readCSVGrid(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	r := csv.NewReader(strings.NewReader(string(data)))
	r.Comma = sniffDelimiter(string(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return rows, nil
}

// sniffDelimiter picks ';' over ',' when the first line favors it,
// which is how pt-BR spreadsheets usually export.
func sniffDelimiter(data string) rune {
	line := data
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}
	return ','
}
