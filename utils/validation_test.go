package utils

import (
	"testing"
	"time"
)

func TestValidatePostalCode(t *testing.T) {
	valid := [][2]string{
		{"1200", "192"},
		{"4000", "007"},
		{" 1200 ", "192"},
	}
	for _, tc := range valid {
		if !ValidatePostalCode(tc[0], tc[1]) {
			t.Errorf("ValidatePostalCode(%q, %q) = false", tc[0], tc[1])
		}
	}

	invalid := [][2]string{
		{"", "192"},
		{"1200", ""},
		{"120", "192"},
		{"12000", "192"},
		{"1200", "19"},
		{"1200", "1920"},
		{"12a0", "192"},
		{"1200", "19x"},
	}
	for _, tc := range invalid {
		if ValidatePostalCode(tc[0], tc[1]) {
			t.Errorf("ValidatePostalCode(%q, %q) = true", tc[0], tc[1])
		}
	}
}

func TestValidatePhone(t *testing.T) {
	if !ValidatePhone("+351 912 345 678") {
		t.Error("valid phone rejected")
	}
	if ValidatePhone("not-a-phone") {
		t.Error("invalid phone accepted")
	}
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2026, 9, 1, 23, 50, 0, 0, time.UTC)
	end := time.Date(2026, 9, 3, 0, 10, 0, 0, time.UTC)
	if got := DaysBetween(start, end); got != 2 {
		t.Fatalf("DaysBetween = %d, want 2", got)
	}
}
