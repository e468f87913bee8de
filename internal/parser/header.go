package parser

import (
	"regexp"
	"strings"
)

// maxHeaderScanRows bounds how deep into the sheet the detector looks.
const maxHeaderScanRows = 20

// headerKeywordGroups score candidate header rows. Each group counts at
// most once per row no matter how many cells match it.
var headerKeywordGroups = [][]string{
	{"material", "produto", "item"},
	{"descri"},
	{"cód", "cod"},
	{"rota"},
	{"comarca", "local", "cidade", "munic"},
}

var spaceRun = regexp.MustCompile(`\s+`)

// NormalizeCell lower-cases a cell and strips line breaks, tabs and
// runs of spaces so keyword matching sees a stable form.
func NormalizeCell(cell string) string {
	cell = strings.TrimSpace(strings.ToLower(cell))
	cell = strings.ReplaceAll(cell, "\n", " ")
	cell = strings.ReplaceAll(cell, "\r", " ")
	cell = strings.ReplaceAll(cell, "\t", " ")
	return spaceRun.ReplaceAllString(cell, " ")
}

// DetectHeader scans the first rows of a raw cell grid and returns the
// index and cells of the row most likely to be the header. The first
// row, top to bottom, matching at least two distinct keyword groups
// wins; later higher-scoring rows are never preferred, which keeps a
// short preamble from losing to a totals row further down. When no row
// qualifies, row 0 is the degraded fallback and mapping may come up
// empty for every field.
func DetectHeader(grid [][]string) (int, []string) {
	if len(grid) == 0 {
		return 0, nil
	}

	limit := len(grid)
	if limit > maxHeaderScanRows {
		limit = maxHeaderScanRows
	}

	for i := 0; i < limit; i++ {
		if headerScore(grid[i]) >= 2 {
			return i, grid[i]
		}
	}
	return 0, grid[0]
}

// headerScore counts how many keyword groups match some cell of the row.
func headerScore(row []string) int {
	normalized := make([]string, len(row))
	for i, cell := range row {
		normalized[i] = NormalizeCell(cell)
	}

	score := 0
	for _, group := range headerKeywordGroups {
		for _, cell := range normalized {
			if cell != "" && containsAny(cell, group) {
				score++
				break
			}
		}
	}
	return score
}

// containsAny reports whether text contains any of the keywords.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
