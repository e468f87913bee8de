package parser

import "testing"

func TestMapColumns_ArbitraryOrder(t *testing.T) {
	t.Parallel()

	headers := []string{"Comarca", "Previsão de Consumo", "Material", "Unid.", "Cód", "Categoria", "Rota"}
	m := MapColumns(headers)

	want := map[Field]int{
		FieldLocation:  0,
		FieldPredicted: 1,
		FieldMaterial:  2,
		FieldUnit:      3,
		FieldCode:      4,
		FieldCategory:  5,
		FieldRoute:     6,
	}
	for field, idx := range want {
		got, ok := m[field]
		if !ok {
			t.Fatalf("field %s not mapped", field)
		}
		if got != idx {
			t.Fatalf("field %s: want col %d got %d", field, idx, got)
		}
	}
}

func TestMapColumns_ContestedColumnFirstFieldWins(t *testing.T) {
	t.Parallel()

	// "Código do material" matches both code and material; code claims it
	// first and material takes its next matching column.
	headers := []string{"Código do material", "Material", "Unidade"}
	m := MapColumns(headers)

	if got := m[FieldCode]; got != 0 {
		t.Fatalf("code: want col 0 got %d", got)
	}
	if got := m[FieldMaterial]; got != 1 {
		t.Fatalf("material: want col 1 got %d", got)
	}
	if got := m[FieldUnit]; got != 2 {
		t.Fatalf("unit: want col 2 got %d", got)
	}
}

func TestMapColumns_AbsentFields(t *testing.T) {
	t.Parallel()

	headers := []string{"Material", "Quantidade prevista"}
	m := MapColumns(headers)

	if _, ok := m[FieldMaterial]; !ok {
		t.Fatal("material should be mapped")
	}
	if _, ok := m[FieldPredicted]; !ok {
		t.Fatal("predicted should be mapped")
	}
	for _, absent := range []Field{FieldCode, FieldRoute, FieldLocation, FieldCategory, FieldUnit} {
		if idx, ok := m[absent]; ok {
			t.Fatalf("field %s should be absent, mapped to %d", absent, idx)
		}
	}
}

func TestMapColumns_EmptyHeader(t *testing.T) {
	t.Parallel()

	if m := MapColumns(nil); len(m) != 0 {
		t.Fatalf("empty header should map nothing, got %v", m)
	}
}
