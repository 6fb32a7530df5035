package dto

import (
	"time"

	"github.com/jhoicas/contacts-api/internal/application/validation"
)

const maxText = 255

// RegisterRequest entrada para registro de usuario (password en texto, se hashea en use case).
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Validate exige email válido, password y nombre.
func (r RegisterRequest) Validate() error {
	c := validation.New()
	if c.NotBlank("email", r.Email) && c.MaxLen("email", r.Email, maxText) {
		c.Email("email", r.Email)
	}
	if c.NotBlank("password", r.Password) {
		c.MaxLen("password", r.Password, maxText)
	}
	if c.NotBlank("name", r.Name) {
		c.MaxLen("name", r.Name, maxText)
	}
	return c.Err()
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate exige email y password.
func (r LoginRequest) Validate() error {
	c := validation.New()
	if c.NotBlank("email", r.Email) && c.MaxLen("email", r.Email, maxText) {
		c.Email("email", r.Email)
	}
	if c.NotBlank("password", r.Password) {
		c.MaxLen("password", r.Password, maxText)
	}
	return c.Err()
}

// TokenResponse salida de login: token de sesión y vencimiento en epoch ms.
type TokenResponse struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Token     string `json:"token"`
	ExpiredAt int64  `json:"expiredAt"`
}

// UpdateUserRequest actualización parcial; nil = no cambiar.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// Validate revisa solo los campos enviados.
func (r UpdateUserRequest) Validate() error {
	c := validation.New()
	if r.Name != nil && c.NotBlank("name", *r.Name) {
		c.MaxLen("name", *r.Name, maxText)
	}
	if r.Password != nil && c.NotBlank("password", *r.Password) {
		c.MaxLen("password", *r.Password, maxText)
	}
	return c.Err()
}

// UserResponse salida de un usuario (sin password ni token).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
