package models

import (
	"github.com/shopspring/decimal"
)

// CartLine is one entry of the server-held cart: a service and how many
// times it was added. A service appears at most once per cart.
type CartLine struct {
	Service  Service `json:"serviceId"`
	Quantity int     `json:"quantity"`
}

// Subtotal is price times quantity, unrounded.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Service.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
