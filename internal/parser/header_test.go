package parser

import "testing"

func TestDetectHeader_PreambleThenHeader(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"Planejamento de demanda 2026"},
		{"Gerado em 15/01/2026"},
		{""},
		{"Cód", "Material", "Comarca", "Previsão"},
		{"EXP-001", "Papel A4 75g", "Castanhal", "120"},
	}

	idx, cells := DetectHeader(grid)
	if idx != 3 {
		t.Fatalf("header index want=3 got=%d", idx)
	}
	if len(cells) != 4 || cells[1] != "Material" {
		t.Fatalf("unexpected header cells: %v", cells)
	}
}

func TestDetectHeader_FirstQualifyingRowWins(t *testing.T) {
	t.Parallel()

	// A totals block further down also looks header-ish; the scan must
	// stop at the first qualifying row.
	grid := [][]string{
		{"Código", "Produto", "Quantidade"},
		{"EXP-002", "Caneta azul", "300"},
		{"Totais por material", "Comarca", "Rota"},
	}

	idx, _ := DetectHeader(grid)
	if idx != 0 {
		t.Fatalf("header index want=0 got=%d", idx)
	}
}

func TestDetectHeader_FallbackRowZero(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"a", "b", "c"},
		{"1", "2", "3"},
	}

	idx, cells := DetectHeader(grid)
	if idx != 0 {
		t.Fatalf("fallback header index want=0 got=%d", idx)
	}
	if len(cells) != 3 {
		t.Fatalf("unexpected fallback cells: %v", cells)
	}
}

func TestDetectHeader_ScanDepthLimit(t *testing.T) {
	t.Parallel()

	grid := make([][]string, 0, 25)
	for i := 0; i < 22; i++ {
		grid = append(grid, []string{"filler"})
	}
	// Real header beyond row 20 must not be found.
	grid = append(grid, []string{"Material", "Comarca"})

	idx, _ := DetectHeader(grid)
	if idx != 0 {
		t.Fatalf("header beyond scan depth: want=0 got=%d", idx)
	}
}

func TestDetectHeader_EmptyGrid(t *testing.T) {
	t.Parallel()

	idx, cells := DetectHeader(nil)
	if idx != 0 || cells != nil {
		t.Fatalf("empty grid: want (0, nil) got (%d, %v)", idx, cells)
	}
}
