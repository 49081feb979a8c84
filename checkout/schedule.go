package checkout

import (
	"errors"
	"time"

	"haircare-web/utils"
)

// Appointments start between 09:00 and 18:45 on quarter-hour marks,
// weekdays only.
const (
	openingHour     = 9
	closingHour     = 19
	slotGranularity = 15 // minutes
)

var (
	// ErrWeekend rejects Saturday and Sunday dates.
	ErrWeekend = errors.New("checkout: appointments are not available on weekends")
	// ErrOutsideHours rejects start times outside 09:00-19:00.
	ErrOutsideHours = errors.New("checkout: appointments run between 09:00 and 19:00")
	// ErrBadGranularity rejects times off the 15-minute grid.
	ErrBadGranularity = errors.New("checkout: appointments start on 15-minute marks")
	// ErrPastDate rejects dates before today.
	ErrPastDate = errors.New("checkout: appointment date is in the past")
)

// ValidateSlot checks a proposed appointment start against the business
// rules. Rules are ordered so the most actionable error surfaces first.
func ValidateSlot(t time.Time, now time.Time) error {
	if utils.BeginningOfDay(t).Before(utils.BeginningOfDay(now)) {
		return ErrPastDate
	}
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return ErrWeekend
	}
	if t.Hour() < openingHour || t.Hour() >= closingHour {
		return ErrOutsideHours
	}
	if t.Minute()%slotGranularity != 0 {
		return ErrBadGranularity
	}
	return nil
}
