// Package store owns the session dataset. Every mutation funnels
// through the authorization gate and keeps the derived record status
// consistent under a single lock acquisition.
package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"supriplan/internal/auth"
	"supriplan/internal/model"
)

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrFieldNotWritable = errors.New("field not writable by role")
	ErrUnknownField     = errors.New("unknown field")
)

// MemoryStore is the in-memory dataset. Order is meaningful: imported
// records are prepended, seeded records keep catalog × location order.
type MemoryStore struct {
	mu      sync.RWMutex
	records []*model.MaterialRecord
	index   map[string]*model.MaterialRecord
	seedSeq int
}

// NewMemoryStore creates an empty dataset.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{index: make(map[string]*model.MaterialRecord)}
}

// Seed fills the dataset with the cross product of known comarcas and
// the material catalog: one pending zero-quantity line per pair.
func (s *MemoryStore) Seed(routes []model.LocationStructure, catalog []model.CatalogMaterial) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, route := range routes {
		for _, comarca := range route.Comarcas {
			for _, mat := range catalog {
				s.seedSeq++
				rec := &model.MaterialRecord{
					ID:           fmt.Sprintf("seed_%04d", s.seedSeq),
					Code:         mat.Code,
					RouteName:    route.RouteName,
					LocationName: comarca,
					MaterialName: mat.Name,
					Category:     mat.Category,
					Unit:         mat.Unit,
					Status:       model.StatusPending,
				}
				s.records = append(s.records, rec)
				s.index[rec.ID] = rec
			}
		}
	}
}

// Merge turns every candidate into a new record and prepends the batch,
// in candidate order, to the dataset. Fields the mapping left unset get
// the catalog defaults. Append-only on purpose: no deduplication
// against existing lines of the same material and comarca. Returns the
// number of records created.
func (s *MemoryStore) Merge(candidates []model.ImportCandidate) int {
	if len(candidates) == 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batch := make([]*model.MaterialRecord, 0, len(candidates))
	for _, c := range candidates {
		rec := &model.MaterialRecord{
			ID:              fmt.Sprintf("imp_%s", uuid.New().String()[:8]),
			Code:            c.Code,
			RouteName:       orDefault(c.Route, model.DefaultRoute),
			LocationName:    orDefault(c.Location, model.DefaultLocation),
			MaterialName:    c.MaterialName,
			Category:        orDefault(c.Category, model.DefaultCategory),
			Unit:            orDefault(c.Unit, model.DefaultUnit),
			PredictedDemand: clampQty(c.Predicted),
			Status:          model.StatusPending,
		}
		batch = append(batch, rec)
		s.index[rec.ID] = rec
	}
	s.records = append(batch, s.records...)
	return len(batch)
}

// Add inserts one manually created record. Admin-only, same defaults
// and prepend position as imported records.
func (s *MemoryStore) Add(role model.Role, c model.ImportCandidate) (*model.MaterialRecord, error) {
	if role != model.RoleAdmin {
		return nil, ErrFieldNotWritable
	}
	if strings.TrimSpace(c.MaterialName) == "" {
		return nil, errors.New("material name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &model.MaterialRecord{
		ID:              fmt.Sprintf("imp_%s", uuid.New().String()[:8]),
		Code:            c.Code,
		RouteName:       orDefault(c.Route, model.DefaultRoute),
		LocationName:    orDefault(c.Location, model.DefaultLocation),
		MaterialName:    strings.TrimSpace(c.MaterialName),
		Category:        orDefault(c.Category, model.DefaultCategory),
		Unit:            orDefault(c.Unit, model.DefaultUnit),
		PredictedDemand: clampQty(c.Predicted),
		Status:          model.StatusPending,
	}
	s.records = append([]*model.MaterialRecord{rec}, s.records...)
	s.index[rec.ID] = rec
	return rec, nil
}

// Get returns one record by id.
func (s *MemoryStore) Get(id string) (*model.MaterialRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.index[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	out := *rec
	return &out, nil
}

// Records returns a snapshot of the dataset in order.
func (s *MemoryStore) Records() []*model.MaterialRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.MaterialRecord, len(s.records))
	for i, rec := range s.records {
		cp := *rec
		out[i] = &cp
	}
	return out
}

// FilterByLocations returns records whose comarca is in the set,
// preserving dataset order. An empty set matches nothing.
func (s *MemoryStore) FilterByLocations(comarcas map[string]struct{}) []*model.MaterialRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.MaterialRecord
	for _, rec := range s.records {
		if _, ok := comarcas[rec.LocationName]; ok {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out
}

// SetQuantity writes one of the numeric fields through the
// authorization gate. Negative values clamp to zero; the status
// invariant is recomputed under the same lock so no reader can observe
// the quantity and the stale status together.
func (s *MemoryStore) SetQuantity(role model.Role, id string, field model.FieldName, qty float64) error {
	if !auth.CanWrite(role, field) {
		return ErrFieldNotWritable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.index[id]
	if !ok {
		return ErrRecordNotFound
	}

	qty = clampQty(qty)
	switch field {
	case model.FieldRequestedQty:
		rec.RequestedQty = qty
	case model.FieldApprovedQty:
		rec.ApprovedQty = qty
	case model.FieldPredictedDemand:
		rec.PredictedDemand = qty
	default:
		return ErrUnknownField
	}

	if auth.QuantityAffectsStatus(field) {
		rec.RecomputeStatus()
	}
	return nil
}

// SetText writes one of the descriptive fields through the
// authorization gate.
func (s *MemoryStore) SetText(role model.Role, id string, field model.FieldName, value string) error {
	if !auth.CanWrite(role, field) {
		return ErrFieldNotWritable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.index[id]
	if !ok {
		return ErrRecordNotFound
	}

	value = strings.TrimSpace(value)
	switch field {
	case model.FieldCode:
		rec.Code = value
	case model.FieldMaterialName:
		rec.MaterialName = value
	case model.FieldUnit:
		rec.Unit = value
	case model.FieldCategory:
		rec.Category = value
	case model.FieldRoute:
		rec.RouteName = value
	case model.FieldLocation:
		rec.LocationName = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Delete removes the given ids and returns how many existed.
func (s *MemoryStore) Delete(ids []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := s.index[id]; ok {
			drop[id] = true
			delete(s.index, id)
		}
	}
	if len(drop) == 0 {
		return 0
	}

	kept := s.records[:0]
	for _, rec := range s.records {
		if !drop[rec.ID] {
			kept = append(kept, rec)
		}
	}
	s.records = kept
	return len(drop)
}

// Count returns the number of records in the dataset.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}

func clampQty(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
