package dto

import (
	"time"

	"github.com/jhoicas/contacts-api/internal/application/validation"
)

// CategoryRequest entrada para crear o renombrar una categoría.
type CategoryRequest struct {
	Name string `json:"name"`
}

// Validate exige nombre.
func (r CategoryRequest) Validate() error {
	c := validation.New()
	if c.NotBlank("name", r.Name) {
		c.MaxLen("name", r.Name, maxText)
	}
	return c.Err()
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryListResponse página de categorías.
type CategoryListResponse struct {
	Items  []CategoryResponse
	Paging PagingResponse
}
