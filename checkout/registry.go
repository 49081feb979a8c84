package checkout

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Registry tracks the active checkout flow per user. At most one flow per
// user exists at a time; starting a new one replaces any leftover.
type Registry struct {
	mu    sync.Mutex
	flows map[string]*Flow
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{flows: make(map[string]*Flow)}
}

// Start begins a fresh flow for the user, discarding any previous one.
func (r *Registry) Start(userID string, cartTotal decimal.Decimal) *Flow {
	r.mu.Lock()
	defer r.mu.Unlock()
	f := NewFlow(userID, cartTotal)
	r.flows[userID] = f
	return f
}

// Get returns the user's active flow, or nil.
func (r *Registry) Get(userID string) *Flow {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.flows[userID]
}

// Remove drops the user's flow, typically after a successful submission.
func (r *Registry) Remove(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.flows, userID)
}

// PruneIdle discards flows untouched for longer than ttl and reports how
// many were dropped.
func (r *Registry) PruneIdle(ttl time.Duration, now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	pruned := 0
	for userID, f := range r.flows {
		if now.Sub(f.IdleSince()) > ttl {
			delete(r.flows, userID)
			pruned++
		}
	}
	return pruned
}
