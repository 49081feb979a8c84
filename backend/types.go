package backend

import (
	"strings"

	"github.com/shopspring/decimal"

	"haircare-web/models"
)

// LoginRequest carries the credentials forwarded to the auth endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries a new account registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the token envelope returned by login/register.
type AuthResult struct {
	Token string `json:"token"`
}

// CreateServiceRequest is the admin payload for a new catalog entry.
type CreateServiceRequest struct {
	Treatment   string          `json:"treatments"`
	HairLength  string          `json:"hairLength"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Duration    int             `json:"duration"`
	Active      bool            `json:"active"`
}

// UpdateServiceRequest uses pointers so only provided fields are sent.
type UpdateServiceRequest struct {
	Treatment   *string          `json:"treatments,omitempty"`
	HairLength  *string          `json:"hairLength,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Duration    *int             `json:"duration,omitempty"`
	Active      *bool            `json:"active,omitempty"`
}

type cartMutationRequest struct {
	ServiceID string `json:"serviceId"`
	Quantity  int    `json:"quantity,omitempty"`
}

type localityRequest struct {
	PostalCodePrefix string `json:"postalCodePrefix"`
	PostalCodeSuffix string `json:"postalCodeSuffix"`
}

type localityResponse struct {
	Location models.Location `json:"location"`
	Fee      feeAmount       `json:"fee"`
}

// FeeQuote is a resolved locality and its travel charge.
type FeeQuote struct {
	Location models.Location
	Fee      decimal.Decimal
}

// feeAmount tolerates the backend's two fee encodings: a bare number or a
// string that may carry a trailing euro sign ("5.50 €").
type feeAmount struct {
	decimal.Decimal
}

func (f *feeAmount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == `""` {
		f.Decimal = decimal.Zero
		return nil
	}
	raw = strings.Trim(raw, `"`)
	raw = strings.TrimSpace(strings.TrimSuffix(raw, "€"))
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return err
	}
	f.Decimal = d
	return nil
}
