package report

import (
	"testing"

	"supriplan/internal/model"
)

func rec(code, name, comarca string, predicted, requested, approved float64) *model.MaterialRecord {
	return &model.MaterialRecord{
		Code:            code,
		MaterialName:    name,
		LocationName:    comarca,
		Category:        "Expediente",
		Unit:            "UN",
		PredictedDemand: predicted,
		RequestedQty:    requested,
		ApprovedQty:     approved,
	}
}

func TestConsolidate_GroupsByCode(t *testing.T) {
	t.Parallel()

	records := []*model.MaterialRecord{
		rec("EXP-001", "Papel A4", "Castanhal", 10, 5, 0),
		rec("EXP-002", "Caneta azul", "Castanhal", 3, 0, 0),
		rec("EXP-001", "Papel A4", "Marabá", 20, 7, 2),
	}

	rows := Consolidate(records)
	if len(rows) != 2 {
		t.Fatalf("rows want=2 got=%d", len(rows))
	}

	// First-seen order: EXP-001 then EXP-002.
	if rows[0].Code != "EXP-001" || rows[1].Code != "EXP-002" {
		t.Fatalf("unexpected order: %v, %v", rows[0].Code, rows[1].Code)
	}
	if rows[0].Predicted != 30 || rows[0].Requested != 12 || rows[0].Approved != 2 {
		t.Fatalf("EXP-001 sums wrong: %+v", rows[0])
	}
}

func TestConsolidate_NameFallbackIdentity(t *testing.T) {
	t.Parallel()

	records := []*model.MaterialRecord{
		rec("", "Papel rascunho", "Castanhal", 5, 0, 0),
		rec("", "Papel rascunho", "Belém", 7, 0, 0),
		rec("", "Outro material", "Belém", 1, 0, 0),
	}

	rows := Consolidate(records)
	if len(rows) != 2 {
		t.Fatalf("rows want=2 got=%d", len(rows))
	}
	if rows[0].MaterialName != "Papel rascunho" || rows[0].Predicted != 12 {
		t.Fatalf("name-keyed group wrong: %+v", rows[0])
	}
}

func TestConsolidate_SumsMatchDirectFilter(t *testing.T) {
	t.Parallel()

	records := []*model.MaterialRecord{
		rec("A", "a", "x", 1.5, 2, 0),
		rec("B", "b", "x", 10, 0, 3),
		rec("A", "a", "y", 2.5, 4, 1),
		rec("B", "b", "y", 30, 1, 0),
		rec("A", "a", "z", 6, 0, 0),
	}

	rows := Consolidate(records)
	for _, row := range rows {
		var p, q, a float64
		for _, r := range records {
			if r.IdentityKey() == row.Code {
				p += r.PredictedDemand
				q += r.RequestedQty
				a += r.ApprovedQty
			}
		}
		if row.Predicted != p || row.Requested != q || row.Approved != a {
			t.Fatalf("group %s: want (%v,%v,%v) got (%v,%v,%v)",
				row.Code, p, q, a, row.Predicted, row.Requested, row.Approved)
		}
	}
}

func TestConsolidate_Empty(t *testing.T) {
	t.Parallel()

	if rows := Consolidate(nil); len(rows) != 0 {
		t.Fatalf("empty input should yield no rows, got %d", len(rows))
	}
}
