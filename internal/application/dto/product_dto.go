package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/contacts-api/internal/application/validation"
)

// ProductRequest entrada para crear o reemplazar un producto.
// Precios y stock son punteros para distinguir "no enviado" de cero.
type ProductRequest struct {
	CategoryID  string           `json:"categoryId"`
	Name        string           `json:"name"`
	PriceBuy    *decimal.Decimal `json:"priceBuy"`
	PriceSell   *decimal.Decimal `json:"priceSell"`
	Stock       *int             `json:"stock"`
	Description string           `json:"description"`
}

// Validate exige categoría, nombre, precios y stock no negativos.
func (r ProductRequest) Validate() error {
	c := validation.New()
	c.NotBlank("categoryId", r.CategoryID)
	if c.NotBlank("name", r.Name) {
		c.MaxLen("name", r.Name, maxText)
	}
	if c.Present("priceBuy", r.PriceBuy != nil) {
		c.MinDecimal("priceBuy", *r.PriceBuy, decimal.Zero)
	}
	if c.Present("priceSell", r.PriceSell != nil) {
		c.MinDecimal("priceSell", *r.PriceSell, decimal.Zero)
	}
	if c.Present("stock", r.Stock != nil) {
		c.MinInt("stock", *r.Stock, 0)
	}
	c.MaxLen("description", r.Description, maxText)
	return c.Err()
}

// SearchProductRequest filtros opcionales; los numéricos son cotas inferiores inclusivas.
type SearchProductRequest struct {
	Name      *string
	PriceBuy  *decimal.Decimal
	PriceSell *decimal.Decimal
	Stock     *int
	PageRequest
}

// ProductResponse salida de un producto con su categoría.
type ProductResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	PriceBuy    decimal.Decimal  `json:"priceBuy"`
	PriceSell   decimal.Decimal  `json:"priceSell"`
	Stock       int              `json:"stock"`
	Description string           `json:"description"`
	Category    CategoryResponse `json:"category"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// ProductListResponse página de productos.
type ProductListResponse struct {
	Items  []ProductResponse
	Paging PagingResponse
}
