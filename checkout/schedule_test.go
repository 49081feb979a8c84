package checkout

import (
	"testing"
	"time"
)

var scheduleNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func slot(day, hour, minute int) time.Time {
	return time.Date(2026, 9, day, hour, minute, 0, 0, time.UTC)
}

func TestValidateSlotWeekends(t *testing.T) {
	// 2026-09-05 is a Saturday, 2026-09-06 a Sunday.
	if err := ValidateSlot(slot(5, 10, 0), scheduleNow); err != ErrWeekend {
		t.Fatalf("saturday err = %v, want ErrWeekend", err)
	}
	if err := ValidateSlot(slot(6, 10, 0), scheduleNow); err != ErrWeekend {
		t.Fatalf("sunday err = %v, want ErrWeekend", err)
	}
	if err := ValidateSlot(slot(7, 10, 0), scheduleNow); err != nil {
		t.Fatalf("monday err = %v, want nil", err)
	}
}

func TestValidateSlotBusinessHours(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         error
	}{
		{8, 45, ErrOutsideHours},
		{9, 0, nil},
		{12, 30, nil},
		{18, 45, nil},
		{19, 0, ErrOutsideHours},
		{22, 0, ErrOutsideHours},
		{0, 0, ErrOutsideHours},
	}
	for _, tt := range tests {
		if err := ValidateSlot(slot(7, tt.hour, tt.minute), scheduleNow); err != tt.want {
			t.Errorf("%02d:%02d err = %v, want %v", tt.hour, tt.minute, err, tt.want)
		}
	}
}

func TestValidateSlotGranularity(t *testing.T) {
	for _, minute := range []int{0, 15, 30, 45} {
		if err := ValidateSlot(slot(7, 10, minute), scheduleNow); err != nil {
			t.Errorf("minute %d err = %v, want nil", minute, err)
		}
	}
	for _, minute := range []int{1, 7, 20, 59} {
		if err := ValidateSlot(slot(7, 10, minute), scheduleNow); err != ErrBadGranularity {
			t.Errorf("minute %d err = %v, want ErrBadGranularity", minute, err)
		}
	}
}

func TestValidateSlotPastDate(t *testing.T) {
	past := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	if err := ValidateSlot(past, scheduleNow); err != ErrPastDate {
		t.Fatalf("err = %v, want ErrPastDate", err)
	}
	// Same day is allowed.
	if err := ValidateSlot(slot(1, 15, 0), scheduleNow); err != nil {
		t.Fatalf("same-day err = %v, want nil", err)
	}
}
