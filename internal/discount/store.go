package discount

import (
	"sync"

	"github.com/google/uuid"
)

// Store holds discount rules in memory. List preserves insertion order, which
// the resolver relies on for its deterministic tie-break.
type Store struct {
	mu      sync.RWMutex
	ordered []uuid.UUID
	byID    map[uuid.UUID]Rule
}

// NewStore constructs an empty rule store.
func NewStore() *Store {
	return &Store{byID: make(map[uuid.UUID]Rule)}
}

// List returns a copy of all rules, active and inactive, in insertion order.
func (s *Store) List() []Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Rule, 0, len(s.ordered))
	for _, id := range s.ordered {
		if rule, ok := s.byID[id]; ok {
			out = append(out, rule)
		}
	}
	return out
}

// Get looks up a rule by id.
func (s *Store) Get(id uuid.UUID) (Rule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rule, ok := s.byID[id]
	return rule, ok
}

// Put inserts or replaces a rule, keeping its original position on replace.
func (s *Store) Put(rule Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[rule.ID]; !exists {
		s.ordered = append(s.ordered, rule.ID)
	}
	s.byID[rule.ID] = rule
}

// Delete removes a rule by id, reporting whether it existed.
func (s *Store) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	for i, existing := range s.ordered {
		if existing == id {
			s.ordered = append(s.ordered[:i], s.ordered[i+1:]...)
			break
		}
	}
	return true
}
