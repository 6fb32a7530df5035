package dto

import (
	"time"

	"github.com/jhoicas/contacts-api/internal/application/validation"
)

const maxPhone = 15

// ContactRequest campos editables de un contacto (crear y reemplazar).
type ContactRequest struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Validate exige nombre; email opcional pero bien formado.
func (r ContactRequest) Validate() error {
	c := validation.New()
	if c.NotBlank("firstname", r.FirstName) {
		c.MaxLen("firstname", r.FirstName, maxText)
	}
	c.MaxLen("lastname", r.LastName, maxText)
	if c.MaxLen("email", r.Email, maxText) {
		c.Email("email", r.Email)
	}
	c.MaxLen("phone", r.Phone, maxPhone)
	return c.Err()
}

// SearchContactRequest filtros opcionales (nil = sin filtro) y página.
type SearchContactRequest struct {
	Name  *string
	Email *string
	Phone *string
	PageRequest
}

// ContactResponse salida de un contacto.
type ContactResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstname"`
	LastName  string    `json:"lastname"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactListResponse página de contactos.
type ContactListResponse struct {
	Items  []ContactResponse
	Paging PagingResponse
}
