package cart

import (
	"sync"
)

// Stores holds one cart mirror per user id.
type Stores struct {
	mu sync.Mutex
	m  map[string]*Store
}

// NewStores returns an empty registry.
func NewStores() *Stores {
	return &Stores{m: make(map[string]*Store)}
}

// For returns the user's store, creating it on first use.
func (s *Stores) For(userID string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.m[userID]
	if !ok {
		st = NewStore()
		s.m[userID] = st
	}
	return st
}

// Drop forgets a user's mirror, typically at logout.
func (s *Stores) Drop(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, userID)
}
