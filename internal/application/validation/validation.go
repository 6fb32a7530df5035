// Package validation reúne validadores explícitos de campos. Cada request los invoca en su
// método Validate y obtiene la lista completa de violaciones, no solo la primera.
package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/contacts-api/internal/domain"
)

// Checker acumula violaciones de campo.
type Checker struct {
	violations []domain.Violation
}

// New crea un Checker vacío.
func New() *Checker {
	return &Checker{}
}

// Add registra una violación arbitraria.
func (c *Checker) Add(field, message string) {
	c.violations = append(c.violations, domain.Violation{Field: field, Message: message})
}

// NotBlank exige texto con al menos un carácter no blanco.
func (c *Checker) NotBlank(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		c.Add(field, "no puede estar vacío")
		return false
	}
	return true
}

// MaxLen limita la longitud en caracteres (no bytes).
func (c *Checker) MaxLen(field, value string, max int) bool {
	if utf8.RuneCountInString(value) > max {
		c.Add(field, fmt.Sprintf("debe tener como máximo %d caracteres", max))
		return false
	}
	return true
}

// Email exige una dirección bien formada sin nombre visible ("a@b.com", no "A <a@b.com>").
// El valor vacío se acepta; combinar con NotBlank si es obligatorio.
func (c *Checker) Email(field, value string) bool {
	if value == "" {
		return true
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || !strings.Contains(addr.Address, "@") {
		c.Add(field, "debe ser un email válido")
		return false
	}
	return true
}

// Present exige que un campo opcional en JSON haya sido enviado.
func (c *Checker) Present(field string, present bool) bool {
	if !present {
		c.Add(field, "es obligatorio")
		return false
	}
	return true
}

// MinInt exige value >= min.
func (c *Checker) MinInt(field string, value, min int) bool {
	if value < min {
		c.Add(field, fmt.Sprintf("debe ser mayor o igual a %d", min))
		return false
	}
	return true
}

// MaxInt exige value <= max.
func (c *Checker) MaxInt(field string, value, max int) bool {
	if value > max {
		c.Add(field, fmt.Sprintf("debe ser menor o igual a %d", max))
		return false
	}
	return true
}

// MinDecimal exige value >= min.
func (c *Checker) MinDecimal(field string, value, min decimal.Decimal) bool {
	if value.LessThan(min) {
		c.Add(field, fmt.Sprintf("debe ser mayor o igual a %s", min.StringFixed(2)))
		return false
	}
	return true
}

// Err devuelve *domain.ValidationError con todas las violaciones, o nil.
func (c *Checker) Err() error {
	if len(c.violations) == 0 {
		return nil
	}
	out := make([]domain.Violation, len(c.violations))
	copy(out, c.violations)
	return &domain.ValidationError{Violations: out}
}
