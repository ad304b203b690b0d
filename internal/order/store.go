package order

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrCartNotFound indicates the requested cart session does not exist.
var ErrCartNotFound = errors.New("cart not found")

type session struct {
	mu   sync.Mutex
	cart Cart
}

// Store keeps cart sessions in memory, one per terminal order. Mutations of a
// single cart are serialized; the core cart type itself carries no locking.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
}

// NewStore constructs an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[uuid.UUID]*session)}
}

// Create registers a new empty cart session.
func (s *Store) Create(id uuid.UUID, now time.Time) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := &session{cart: Cart{ID: id, CreatedAt: now}}
	s.sessions[id] = sess
	return copyCart(sess.cart)
}

// Mutate runs fn against the cart under its session lock and returns the
// resulting state as a copy.
func (s *Store) Mutate(id uuid.UUID, fn func(*Cart) error) (Cart, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return Cart{}, ErrCartNotFound
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := fn(&sess.cart); err != nil {
		return Cart{}, err
	}
	return copyCart(sess.cart), nil
}

// Len reports the number of open sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// View returns a copy of the cart's current state.
func (s *Store) View(id uuid.UUID) (Cart, error) {
	return s.Mutate(id, func(*Cart) error { return nil })
}

func copyCart(c Cart) Cart {
	out := c
	out.Items = c.Snapshot()
	return out
}
