package billing

import (
	"sync"

	"github.com/google/uuid"
)

// Store retains finalized bills for the export layer to pull. Bills stay
// available when a new order begins; only process exit discards them.
type Store struct {
	mu      sync.RWMutex
	ordered []uuid.UUID
	byID    map[uuid.UUID]Bill
}

// NewStore constructs an empty bill store.
func NewStore() *Store {
	return &Store{byID: make(map[uuid.UUID]Bill)}
}

// Put records a finalized bill.
func (s *Store) Put(bill Bill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[bill.ID]; !exists {
		s.ordered = append(s.ordered, bill.ID)
	}
	s.byID[bill.ID] = bill
}

// Get looks up a bill by id.
func (s *Store) Get(id uuid.UUID) (Bill, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bill, ok := s.byID[id]
	return bill, ok
}

// List returns one page of bills, newest first, plus the total count.
func (s *Store) List(page, perPage int) ([]Bill, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := len(s.ordered)
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	start := (page - 1) * perPage
	if start >= total {
		return []Bill{}, total
	}
	end := start + perPage
	if end > total {
		end = total
	}
	out := make([]Bill, 0, end-start)
	for i := 0; i < end-start; i++ {
		id := s.ordered[total-1-start-i]
		out = append(out, s.byID[id])
	}
	return out, total
}
