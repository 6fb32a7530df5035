package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product artículo del catálogo. Pertenece a exactamente una Category.
type Product struct {
	ID          string
	CategoryID  string
	Name        string
	PriceBuy    decimal.Decimal // precio de compra
	PriceSell   decimal.Decimal // precio de venta
	Stock       int
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Category se carga junto al producto en lecturas (JOIN); puede ser nil en escrituras.
	Category *Category
}
