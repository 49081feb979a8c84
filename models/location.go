package models

// Location is a resolved postal address. All fields are defaults the user
// may edit before submission; coordinates are optional.
type Location struct {
	Street      string    `json:"street"`
	Locality    string    `json:"locality"`
	Parish      string    `json:"parish"`
	County      string    `json:"county"`
	Coordinates []float64 `json:"coordinates,omitempty"`
}

// AppointmentLocation is the address block submitted with an appointment.
type AppointmentLocation struct {
	PostalCodePrefix string `json:"postalCodePrefix"`
	PostalCodeSuffix string `json:"postalCodeSuffix"`
	Number           string `json:"number"`
	Floor            string `json:"floor"`

	Street   string `json:"street,omitempty"`
	Locality string `json:"locality,omitempty"`
	Parish   string `json:"parish,omitempty"`
	County   string `json:"county,omitempty"`
}
