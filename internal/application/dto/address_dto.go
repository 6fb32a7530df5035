package dto

import (
	"time"

	"github.com/jhoicas/contacts-api/internal/application/validation"
)

const maxPostalCode = 5

// AddressRequest campos editables de una dirección.
type AddressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

// Validate exige país y código postal de hasta 5 caracteres.
func (r AddressRequest) Validate() error {
	c := validation.New()
	c.MaxLen("street", r.Street, maxText)
	c.MaxLen("city", r.City, maxText)
	c.MaxLen("province", r.Province, maxText)
	if c.NotBlank("country", r.Country) {
		c.MaxLen("country", r.Country, maxText)
	}
	if c.NotBlank("postalCode", r.PostalCode) {
		c.MaxLen("postalCode", r.PostalCode, maxPostalCode)
	}
	return c.Err()
}

// AddressResponse salida de una dirección.
type AddressResponse struct {
	ID         string    `json:"id"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	Province   string    `json:"province"`
	Country    string    `json:"country"`
	PostalCode string    `json:"postalCode"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
