// Package report regroups location-scoped demand lines into
// per-material totals for the exporters.
package report

import "supriplan/internal/model"

// Consolidate groups records by material identity (catalog code, or
// material name when the code is empty) and sums the three quantity
// fields. Output order is the first-seen order of each identity key
// while scanning the input; sums are strictly additive. Category and
// unit come from the first contributing record, assumed constant per
// material.
func Consolidate(records []*model.MaterialRecord) []model.ConsolidatedRow {
	rows := make([]model.ConsolidatedRow, 0)
	index := make(map[string]int)

	for _, rec := range records {
		key := rec.IdentityKey()
		if key == "" {
			continue
		}

		i, seen := index[key]
		if !seen {
			i = len(rows)
			index[key] = i
			rows = append(rows, model.ConsolidatedRow{
				Code:         rec.Code,
				MaterialName: rec.MaterialName,
				Category:     rec.Category,
				Unit:         rec.Unit,
			})
		}

		rows[i].Predicted += rec.PredictedDemand
		rows[i].Requested += rec.RequestedQty
		rows[i].Approved += rec.ApprovedQty
	}
	return rows
}
