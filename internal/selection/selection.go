// Package selection tracks which comarcas are selected for
// consolidation, grouped by route, with tri-state route status.
package selection

import (
	"sort"
	"sync"
)

// TriState is the selection status of a route.
type TriState string

const (
	StateNone    TriState = "none"
	StatePartial TriState = "partial"
	StateAll     TriState = "all"
)

// Store holds the session's selection. Route keys exist only while
// their selected set is non-empty; an absent route means nothing is
// selected there, which is what distinguishes "none" from "partial".
type Store struct {
	mu       sync.RWMutex
	selected map[string]map[string]struct{}
}

// NewStore creates an empty selection store.
func NewStore() *Store {
	return &Store{selected: make(map[string]map[string]struct{})}
}

// ToggleLeaf flips one comarca's membership in its route's selection,
// pruning the route key when the set empties.
func (s *Store) ToggleLeaf(route, comarca string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.selected[route]
	if !ok {
		s.selected[route] = map[string]struct{}{comarca: {}}
		return
	}
	if _, on := set[comarca]; on {
		delete(set, comarca)
		if len(set) == 0 {
			delete(s.selected, route)
		}
		return
	}
	set[comarca] = struct{}{}
}

// ToggleRoute selects every comarca of the route unless all are already
// selected, in which case it clears the route entirely. Binary, never
// cumulative: toggling twice restores the original all/none state.
func (s *Store) ToggleRoute(route string, allComarcas []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if set, ok := s.selected[route]; ok && len(set) == len(allComarcas) {
		delete(s.selected, route)
		return
	}
	set := make(map[string]struct{}, len(allComarcas))
	for _, c := range allComarcas {
		set[c] = struct{}{}
	}
	if len(set) == 0 {
		delete(s.selected, route)
		return
	}
	s.selected[route] = set
}

// StatusOf returns the route's tri-state selection status.
func (s *Store) StatusOf(route string, allComarcas []string) TriState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.selected[route]
	switch {
	case !ok || len(set) == 0:
		return StateNone
	case len(set) == len(allComarcas):
		return StateAll
	default:
		return StatePartial
	}
}

// Flatten returns the union of selected comarcas across every route.
// The result is a set, so route iteration order cannot leak into it.
func (s *Store) Flatten() map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	union := make(map[string]struct{})
	for _, set := range s.selected {
		for c := range set {
			union[c] = struct{}{}
		}
	}
	return union
}

// Count returns how many comarcas are selected in total.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, set := range s.selected {
		n += len(set)
	}
	return n
}

// Clear drops the whole selection.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = make(map[string]map[string]struct{})
}

// Snapshot returns the selection as sorted slices per route, for
// rendering. Mutating the result does not affect the store.
func (s *Store) Snapshot() map[string][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]string, len(s.selected))
	for route, set := range s.selected {
		comarcas := make([]string, 0, len(set))
		for c := range set {
			comarcas = append(comarcas, c)
		}
		sort.Strings(comarcas)
		out[route] = comarcas
	}
	return out
}
