package appointments

import (
	"context"
	"errors"
	"fmt"

	"haircare-web/backend"
	"haircare-web/models"
	"haircare-web/pkg/logging"
)

// Actions an admin can take on a pending appointment.
const (
	ActionAccept = "accept"
	ActionReject = "reject"
)

var (
	// ErrNotPending means the appointment already left the pending state;
	// the action buttons are disabled and the request is a no-op.
	ErrNotPending = errors.New("appointments: appointment is no longer pending")
	// ErrUnknownAction rejects anything other than accept/reject.
	ErrUnknownAction = errors.New("appointments: unknown action")
	// ErrNotFound means the appointment id is not in the current list.
	ErrNotFound = errors.New("appointments: appointment not found")
)

// Manager drives the admin appointment view: listing, accept/reject, and
// the pending-only guard in front of actions. The guard mirrors the
// disabled buttons; the backend stays the real arbiter.
type Manager struct {
	api    *backend.Client
	logger *logging.Logger
}

// NewManager wires the manager to the backend client.
func NewManager(api *backend.Client, logger *logging.Logger) *Manager {
	if logger == nil {
		logger = logging.Default()
	}
	return &Manager{api: api, logger: logger}
}

// List fetches the appointments visible to the credential.
func (m *Manager) List(ctx context.Context, token string) ([]models.Appointment, error) {
	return m.api.ListAppointments(ctx, token)
}

// Act posts an accept or reject and returns the refreshed list. Acting on
// a non-pending appointment fails before any network call.
func (m *Manager) Act(ctx context.Context, token, appointmentID, action string) ([]models.Appointment, error) {
	if action != ActionAccept && action != ActionReject {
		return nil, ErrUnknownAction
	}

	current, err := m.api.ListAppointments(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("appointments: refresh before action: %w", err)
	}
	var target *models.Appointment
	for i := range current {
		if current[i].ID == appointmentID {
			target = &current[i]
			break
		}
	}
	if target == nil {
		return nil, ErrNotFound
	}
	if !target.Pending() {
		return nil, ErrNotPending
	}

	if err := m.api.AppointmentAction(ctx, token, appointmentID, action); err != nil {
		return nil, err
	}
	m.logger.Info("appointment action", "id", appointmentID, "action", action)

	return m.api.ListAppointments(ctx, token)
}
