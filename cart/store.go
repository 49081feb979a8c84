package cart

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"haircare-web/models"
)

// Mutation outcomes the view can render. A pending line has been changed
// locally but not yet confirmed by the backend; a failed line was reverted
// to its last confirmed quantity and shows a retryable error.
type LineState string

const (
	StateConfirmed LineState = "confirmed"
	StatePending   LineState = "pending"
	StateFailed    LineState = "failed"
)

var (
	// ErrQuantityTooLow rejects any quantity below 1.
	ErrQuantityTooLow = errors.New("cart: quantity must be at least 1")
	// ErrLineNotFound means no line holds the given service.
	ErrLineNotFound = errors.New("cart: no line for service")
)

// Line is a snapshot of one cart entry for rendering.
type Line struct {
	Service  models.Service `json:"serviceId"`
	Quantity int            `json:"quantity"`
	State    LineState      `json:"state"`
}

type line struct {
	service models.Service
	qty     int
	state   LineState

	confirmedQty int
	seq          uint64 // newest mutation issued for this line
}

type removedLine struct {
	line  *line
	index int
	seq   uint64
}

// Store mirrors the server-held cart for one user. Mutations are staged
// optimistically, tagged with a per-store monotonically increasing sequence
// number, and later resolved against the backend response; a resolution
// whose sequence number is not the newest issued for its line is discarded,
// so out-of-order completions cannot clobber newer state. Lines are always
// addressed by service identity, never by display position.
type Store struct {
	mu      sync.Mutex
	lines   []*line
	removed map[string]removedLine
	nextSeq uint64
}

// NewStore returns an empty cart mirror.
func NewStore() *Store {
	return &Store{removed: make(map[string]removedLine)}
}

// Replace swaps in a freshly fetched cart. Everything becomes confirmed and
// in-flight staged mutations are forgotten.
func (s *Store) Replace(fetched []models.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = make([]*line, 0, len(fetched))
	for _, l := range fetched {
		s.lines = append(s.lines, &line{
			service:      l.Service,
			qty:          l.Quantity,
			state:        StateConfirmed,
			confirmedQty: l.Quantity,
		})
	}
	s.removed = make(map[string]removedLine)
}

// StageQuantity optimistically sets a line's quantity and returns the
// sequence number to resolve the backend round-trip with.
func (s *Store) StageQuantity(serviceID string, qty int) (uint64, error) {
	if qty < 1 {
		return 0, ErrQuantityTooLow
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.find(serviceID)
	if l == nil {
		return 0, ErrLineNotFound
	}
	s.nextSeq++
	l.seq = s.nextSeq
	l.qty = qty
	l.state = StatePending
	return l.seq, nil
}

// ResolveQuantity applies the backend outcome for a staged quantity change.
// It reports false when the resolution was stale and discarded.
func (s *Store) ResolveQuantity(serviceID string, seq uint64, ok bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.find(serviceID)
	if l == nil || l.seq != seq {
		return false
	}
	if ok {
		l.confirmedQty = l.qty
		l.state = StateConfirmed
	} else {
		l.qty = l.confirmedQty
		l.state = StateFailed
	}
	return true
}

// StageRemove optimistically drops a line, keeping it aside so a backend
// failure can put it back where it was.
func (s *Store) StageRemove(serviceID string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.lines {
		if l.service.ID == serviceID {
			s.nextSeq++
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.removed[serviceID] = removedLine{line: l, index: i, seq: s.nextSeq}
			return s.nextSeq, nil
		}
	}
	return 0, ErrLineNotFound
}

// ResolveRemove applies the backend outcome for a staged removal.
func (s *Store) ResolveRemove(serviceID string, seq uint64, ok bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, exists := s.removed[serviceID]
	if !exists || r.seq != seq {
		return false
	}
	delete(s.removed, serviceID)
	if !ok {
		r.line.state = StateFailed
		r.line.qty = r.line.confirmedQty
		i := r.index
		if i > len(s.lines) {
			i = len(s.lines)
		}
		s.lines = append(s.lines[:i], append([]*line{r.line}, s.lines[i:]...)...)
	}
	return true
}

// Lines returns a render-ready snapshot in display order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, 0, len(s.lines))
	for _, l := range s.lines {
		out = append(out, Line{Service: l.service, Quantity: l.qty, State: l.state})
	}
	return out
}

// Len returns the number of visible lines (the cart badge count).
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Total sums price times quantity over the visible lines. The result is
// exact; rounding to 2 decimals happens only at formatting.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.service.Price.Mul(decimal.NewFromInt(int64(l.qty))))
	}
	return total
}

// FormatTotal renders the total rounded to 2 decimal places.
func (s *Store) FormatTotal() string {
	return s.Total().StringFixed(2)
}

func (s *Store) find(serviceID string) *line {
	for _, l := range s.lines {
		if l.service.ID == serviceID {
			return l
		}
	}
	return nil
}
