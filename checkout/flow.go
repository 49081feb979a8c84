package checkout

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"haircare-web/models"
)

// Checkout states. A flow is single-shot: it either reaches home after a
// successful submission or falls back to scheduling on failure.
type State string

const (
	StateReviewing         State = "reviewing"
	StateEnteringAddress   State = "entering_address"
	StateConfirmingDetails State = "confirming_details"
	StateSchedulingTime    State = "scheduling_time"
	StateSubmitting        State = "submitting"
)

// ErrBadTransition reports an operation invoked in the wrong state.
type ErrBadTransition struct {
	From State
	Op   string
}

func (e *ErrBadTransition) Error() string {
	return fmt.Sprintf("checkout: cannot %s while %s", e.Op, e.From)
}

// Flow is one user's checkout in progress. The cart total is captured when
// the flow starts; the fee joins it after the postal code resolves.
type Flow struct {
	ID     uuid.UUID
	UserID string

	mu          sync.Mutex
	state       State
	cartTotal   decimal.Decimal
	prefix      string
	suffix      string
	fee         decimal.Decimal
	address     models.AppointmentLocation
	description string
	slot        time.Time
	touched     time.Time
}

// NewFlow starts a checkout at the cart review step.
func NewFlow(userID string, cartTotal decimal.Decimal) *Flow {
	return &Flow{
		ID:        uuid.New(),
		UserID:    userID,
		state:     StateReviewing,
		cartTotal: cartTotal,
		touched:   time.Now(),
	}
}

// State returns the current step.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Proceed moves from cart review to address entry.
func (f *Flow) Proceed() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateReviewing {
		return &ErrBadTransition{From: f.state, Op: "proceed"}
	}
	f.state = StateEnteringAddress
	f.touch()
	return nil
}

// ResolveAddress records a successful fee lookup and pre-fills the address
// with the resolved fields as editable defaults.
func (f *Flow) ResolveAddress(prefix, suffix string, loc models.Location, fee decimal.Decimal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateEnteringAddress {
		return &ErrBadTransition{From: f.state, Op: "resolve address"}
	}
	f.prefix = prefix
	f.suffix = suffix
	f.fee = fee
	f.address = models.AppointmentLocation{
		PostalCodePrefix: prefix,
		PostalCodeSuffix: suffix,
		Street:           loc.Street,
		Locality:         loc.Locality,
		Parish:           loc.Parish,
		County:           loc.County,
	}
	f.state = StateConfirmingDetails
	f.touch()
	return nil
}

// ResolveFailed clears any previously resolved fields and keeps the flow at
// address entry so the user can retry with different postal values.
func (f *Flow) ResolveFailed() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateEnteringAddress {
		return
	}
	f.fee = decimal.Zero
	f.address = models.AppointmentLocation{}
	f.touch()
}

// Confirm accepts the (possibly edited) address and description, moving on
// to time selection. Empty edits keep the resolved defaults.
func (f *Flow) Confirm(edited models.AppointmentLocation, description string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateConfirmingDetails {
		return &ErrBadTransition{From: f.state, Op: "confirm details"}
	}
	merge := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	merge(&f.address.Street, edited.Street)
	merge(&f.address.Locality, edited.Locality)
	merge(&f.address.Parish, edited.Parish)
	merge(&f.address.County, edited.County)
	f.address.Number = edited.Number
	f.address.Floor = edited.Floor
	f.description = description
	f.state = StateSchedulingTime
	f.touch()
	return nil
}

// Schedule validates the chosen slot and moves to submission.
func (f *Flow) Schedule(slot time.Time, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateSchedulingTime {
		return &ErrBadTransition{From: f.state, Op: "schedule"}
	}
	if err := ValidateSlot(slot, now); err != nil {
		return err
	}
	f.slot = slot
	f.state = StateSubmitting
	f.touch()
	return nil
}

// SubmitFailed returns the flow to time selection after a backend error.
// No rollback of a half-submitted appointment is attempted.
func (f *Flow) SubmitFailed() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateSubmitting {
		return
	}
	f.state = StateSchedulingTime
	f.touch()
}

// Draft builds the submission payload. Service ids are deduplicated;
// quantities are folded server-side.
func (f *Flow) Draft(serviceIDs []string) (models.AppointmentDraft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateSubmitting {
		return models.AppointmentDraft{}, &ErrBadTransition{From: f.state, Op: "build draft"}
	}
	seen := make(map[string]bool, len(serviceIDs))
	unique := make([]string, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	return models.AppointmentDraft{
		Location:    f.address,
		Description: f.description,
		User:        f.UserID,
		Date:        f.slot,
		Services:    unique,
	}, nil
}

// Fee returns the resolved travel fee.
func (f *Flow) Fee() decimal.Decimal {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fee
}

// Address returns the current (resolved plus edited) address.
func (f *Flow) Address() models.AppointmentLocation {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.address
}

// TotalFinal is the cart total plus the travel fee, unrounded.
func (f *Flow) TotalFinal() decimal.Decimal {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cartTotal.Add(f.fee)
}

// FormatTotalFinal renders the final total rounded to 2 decimal places.
func (f *Flow) FormatTotalFinal() string {
	return f.TotalFinal().StringFixed(2)
}

// IdleSince returns the time of the last state change.
func (f *Flow) IdleSince() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.touched
}

func (f *Flow) touch() {
	f.touched = time.Now()
}
