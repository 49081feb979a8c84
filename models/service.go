package models

import (
	"github.com/shopspring/decimal"
)

// HairLength is the service attribute affecting price and duration.
type HairLength string

const (
	HairShort     HairLength = "Short"
	HairMedium    HairLength = "Medium"
	HairLong      HairLength = "Long"
	HairExtraLong HairLength = "Extra-long"
)

// Service is one bookable salon service as the backend returns it.
type Service struct {
	ID          string          `json:"_id"`
	Treatment   string          `json:"treatments"`
	HairLength  HairLength      `json:"hairLength"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Duration    int             `json:"duration"` // seconds
	Active      bool            `json:"active"`
}

// DurationMinutes converts the stored duration for display.
func (s Service) DurationMinutes() int {
	return s.Duration / 60
}
