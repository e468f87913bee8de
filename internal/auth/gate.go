// Package auth decides which role may write which record field. The
// rule table is the single source of truth consulted by both the HTTP
// layer (to reject early) and the store (as a hard precondition), so
// permission can never be a UI-only artifact.
package auth

import (
	"crypto/subtle"
	"strings"

	"supriplan/internal/model"
)

// writableBy maps each field to the only role allowed to write it.
// Requested quantities belong to the field offices; approvals and every
// catalog/descriptive field belong to the administrator.
var writableBy = map[model.FieldName]model.Role{
	model.FieldRequestedQty:    model.RoleRegional,
	model.FieldApprovedQty:     model.RoleAdmin,
	model.FieldCode:            model.RoleAdmin,
	model.FieldMaterialName:    model.RoleAdmin,
	model.FieldUnit:            model.RoleAdmin,
	model.FieldCategory:        model.RoleAdmin,
	model.FieldPredictedDemand: model.RoleAdmin,
	model.FieldRoute:           model.RoleAdmin,
	model.FieldLocation:        model.RoleAdmin,
}

// CanWrite reports whether role may write field. Unknown fields are
// never writable.
func CanWrite(role model.Role, field model.FieldName) bool {
	owner, ok := writableBy[field]
	return ok && owner == role
}

// QuantityAffectsStatus reports whether a write to field requires the
// record status to be recomputed afterwards.
func QuantityAffectsStatus(field model.FieldName) bool {
	return field == model.FieldRequestedQty || field == model.FieldApprovedQty
}

// VerifyAdminPassword checks a password attempt against the configured
// admin password, case-insensitively, in constant time.
func VerifyAdminPassword(attempt, configured string) bool {
	if configured == "" {
		return false
	}
	a := []byte(strings.ToLower(strings.TrimSpace(attempt)))
	b := []byte(strings.ToLower(configured))
	return subtle.ConstantTimeCompare(a, b) == 1
}
