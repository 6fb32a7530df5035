package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// Credenciales incorrectas: mismo texto para email inexistente y password errónea.
var ErrBadCredentials = fmt.Errorf("%w: email o contraseña incorrectos", ErrUnauthorized)

// Recursos no encontrados. Un recurso de otro usuario se reporta igual que uno inexistente.
var (
	ErrUserNotFound     = &NotFoundError{Resource: "usuario"}
	ErrContactNotFound  = &NotFoundError{Resource: "contacto"}
	ErrAddressNotFound  = &NotFoundError{Resource: "dirección"}
	ErrCategoryNotFound = &NotFoundError{Resource: "categoría"}
	ErrProductNotFound  = &NotFoundError{Resource: "producto"}
)

// ErrCategoryInUse la categoría tiene productos y la FK impide borrarla.
var ErrCategoryInUse = fmt.Errorf("%w: la categoría tiene productos asociados", ErrConflict)

// NotFoundError indica que el recurso no existe (o no pertenece al usuario).
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " no encontrado"
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Violation una restricción incumplida sobre un campo de entrada.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lista todas las violaciones detectadas en una petición.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// IsValidation informa si err es (o envuelve) un ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
