package repository

import (
	"math"

	"github.com/shopspring/decimal"
)

// PageRequest página base cero.
type PageRequest struct {
	Page int
	Size int
}

// Offset filas a saltar. Satura en math.MaxInt en lugar de desbordar.
func (p PageRequest) Offset() int {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Page > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Page * p.Size
}

// TotalPages ceil(total / size); 0 si no hay filas.
func (p PageRequest) TotalPages(total int64) int {
	if p.Size <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(p.Size) - 1) / int64(p.Size))
}

// ContactFilter filtros opcionales de búsqueda de contactos; nil = sin predicado.
// UserID siempre se aplica.
type ContactFilter struct {
	UserID string
	Name   *string // subcadena en nombre O apellido, sin distinguir mayúsculas
	Email  *string
	Phone  *string
}

// ProductFilter filtros opcionales de búsqueda de productos; nil = sin predicado.
// Los numéricos son cotas inferiores inclusivas (valor almacenado >= filtro).
type ProductFilter struct {
	Name      *string
	PriceBuy  *decimal.Decimal
	PriceSell *decimal.Decimal
	Stock     *int
}
