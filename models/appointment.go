package models

import (
	"time"
)

// Appointment statuses as the backend reports them.
const (
	AppointmentPending  = "pending"
	AppointmentAccepted = "accepted"
	AppointmentRejected = "rejected"
)

// AppointmentService is the per-service summary embedded in an appointment.
type AppointmentService struct {
	ID          string `json:"_id"`
	ServiceName string `json:"serviceName"`
}

// AppointmentUser identifies the booking customer.
type AppointmentUser struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
}

// Appointment is a submitted booking as listed by the backend.
type Appointment struct {
	ID          string               `json:"_id"`
	Status      string               `json:"status"`
	Date        time.Time            `json:"date"`
	User        AppointmentUser      `json:"user"`
	Services    []AppointmentService `json:"services"`
	Location    AppointmentLocation  `json:"location"`
	Description string               `json:"description"`
}

// Pending reports whether accept/reject actions are still allowed.
func (a Appointment) Pending() bool {
	return a.Status == AppointmentPending
}

// AppointmentDraft is the client-side, not-yet-submitted booking. Services
// holds deduplicated service identifiers; quantities are folded server-side.
type AppointmentDraft struct {
	Location    AppointmentLocation `json:"location"`
	Description string              `json:"description"`
	User        string              `json:"user"`
	Date        time.Time           `json:"date"`
	Services    []string            `json:"services"`
}
