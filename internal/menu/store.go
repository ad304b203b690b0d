package menu

import (
	"sync"

	"github.com/google/uuid"
)

// Store holds the current menu options in memory. Listing preserves insertion
// order per kind so the terminal UI renders entries the way staff added them.
type Store struct {
	mu      sync.RWMutex
	ordered map[Kind][]uuid.UUID
	byID    map[uuid.UUID]Option
}

// NewStore constructs an empty menu store.
func NewStore() *Store {
	return &Store{
		ordered: make(map[Kind][]uuid.UUID),
		byID:    make(map[uuid.UUID]Option),
	}
}

// List returns a copy of all options of the given kind in insertion order.
func (s *Store) List(kind Kind) []Option {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.ordered[kind]
	out := make([]Option, 0, len(ids))
	for _, id := range ids {
		if opt, ok := s.byID[id]; ok {
			out = append(out, opt)
		}
	}
	return out
}

// Get looks up an option by id.
func (s *Store) Get(id uuid.UUID) (Option, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	opt, ok := s.byID[id]
	return opt, ok
}

// Put appends an option to its kind's sequence.
func (s *Store) Put(opt Option) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[opt.ID]; !exists {
		s.ordered[opt.Kind] = append(s.ordered[opt.Kind], opt.ID)
	}
	s.byID[opt.ID] = opt
}

// Delete removes an option by id, reporting whether it existed.
func (s *Store) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	opt, ok := s.byID[id]
	if !ok {
		return false
	}
	delete(s.byID, id)
	ids := s.ordered[opt.Kind]
	for i, existing := range ids {
		if existing == id {
			s.ordered[opt.Kind] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return true
}

// Len reports the total number of options across all kinds.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
