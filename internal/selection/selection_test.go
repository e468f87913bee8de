package selection

import (
	"reflect"
	"testing"
)

var norte = []string{"Castanhal", "Capanema", "Bragança"}

func TestToggleLeaf_FlipAndPrune(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.ToggleLeaf("Rota Norte", "Castanhal")
	if got := s.StatusOf("Rota Norte", norte); got != StatePartial {
		t.Fatalf("status want=partial got=%s", got)
	}

	s.ToggleLeaf("Rota Norte", "Castanhal")
	if got := s.StatusOf("Rota Norte", norte); got != StateNone {
		t.Fatalf("status after untoggle want=none got=%s", got)
	}
	// Route key must be pruned, not kept as an empty set.
	if snap := s.Snapshot(); len(snap) != 0 {
		t.Fatalf("expected pruned route key, got %v", snap)
	}
}

func TestToggleRoute_Idempotence(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.ToggleRoute("Rota Norte", norte)
	if got := s.StatusOf("Rota Norte", norte); got != StateAll {
		t.Fatalf("status want=all got=%s", got)
	}

	s.ToggleRoute("Rota Norte", norte)
	if got := s.StatusOf("Rota Norte", norte); got != StateNone {
		t.Fatalf("double toggle must return to none, got=%s", got)
	}
}

func TestToggleRoute_PartialGoesToAll(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.ToggleLeaf("Rota Norte", "Capanema")
	s.ToggleRoute("Rota Norte", norte)
	if got := s.StatusOf("Rota Norte", norte); got != StateAll {
		t.Fatalf("partial + route toggle want=all got=%s", got)
	}
	if s.Count() != len(norte) {
		t.Fatalf("count want=%d got=%d", len(norte), s.Count())
	}
}

func TestFlatten_UnionAcrossRoutes(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.ToggleLeaf("Rota Norte", "Castanhal")
	s.ToggleLeaf("Rota Sul", "Marabá")
	s.ToggleLeaf("Rota Sul", "Tucuruí")

	got := s.Flatten()
	want := map[string]struct{}{"Castanhal": {}, "Marabá": {}, "Tucuruí": {}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("flatten want=%v got=%v", want, got)
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.ToggleRoute("Rota Norte", norte)
	s.Clear()
	if s.Count() != 0 {
		t.Fatalf("count after clear want=0 got=%d", s.Count())
	}
}
