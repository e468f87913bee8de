package model

import "testing"

func TestRecomputeStatus_Precedence(t *testing.T) {
	t.Parallel()

	r := &MaterialRecord{}
	r.RecomputeStatus()
	if r.Status != StatusPending {
		t.Fatalf("zero quantities want=pending got=%s", r.Status)
	}

	r.RequestedQty = 5
	r.RecomputeStatus()
	if r.Status != StatusRequested {
		t.Fatalf("requested>0 want=requested got=%s", r.Status)
	}

	// Approval wins over an open request.
	r.ApprovedQty = 3
	r.RecomputeStatus()
	if r.Status != StatusApproved {
		t.Fatalf("approved>0 want=approved got=%s", r.Status)
	}

	r.ApprovedQty = 0
	r.RecomputeStatus()
	if r.Status != StatusRequested {
		t.Fatalf("approval reset want=requested got=%s", r.Status)
	}
}

func TestIdentityKey(t *testing.T) {
	t.Parallel()

	r := &MaterialRecord{Code: "EXP-001", MaterialName: "Papel A4"}
	if r.IdentityKey() != "EXP-001" {
		t.Fatalf("code identity want=EXP-001 got=%s", r.IdentityKey())
	}
	r.Code = ""
	if r.IdentityKey() != "Papel A4" {
		t.Fatalf("name fallback want=Papel A4 got=%s", r.IdentityKey())
	}
}

func TestFindRoute(t *testing.T) {
	t.Parallel()

	routes := CanonicalRoutes()
	if got := FindRoute(routes, "Castanhal"); got != "Rota Norte" {
		t.Fatalf("Castanhal route want=Rota Norte got=%s", got)
	}
	if got := FindRoute(routes, "Inexistente"); got != "" {
		t.Fatalf("unknown comarca want empty route, got=%s", got)
	}
}
