package model

// ConsolidatedRow is one per-material total produced by consolidation.
// Column order is part of the export contract: code, material, category,
// unit, predicted, requested, approved.
type ConsolidatedRow struct {
	Code         string  `json:"code"`
	MaterialName string  `json:"materialName"`
	Category     string  `json:"category"`
	Unit         string  `json:"unit"`
	Predicted    float64 `json:"predicted"`
	Requested    float64 `json:"requested"`
	Approved     float64 `json:"approved"`
}

// IdentityKey groups records by catalog code, falling back to the
// material name for uncoded lines.
func (r *MaterialRecord) IdentityKey() string {
	if r.Code != "" {
		return r.Code
	}
	return r.MaterialName
}
