package entity

import "time"

// User representa un usuario registrado. El email es la clave natural.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Token        *string // nil si no hay sesión activa
	TokenExpires *int64  // epoch en milisegundos; nil si no hay sesión activa
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SessionActiveAt informa si el usuario tiene un token vigente en el instante now.
func (u *User) SessionActiveAt(now time.Time) bool {
	if u.Token == nil || u.TokenExpires == nil {
		return false
	}
	return now.UnixMilli() <= *u.TokenExpires
}

// StartSession registra el token y su vencimiento.
func (u *User) StartSession(token string, expiresAt time.Time) {
	exp := expiresAt.UnixMilli()
	u.Token = &token
	u.TokenExpires = &exp
}

// EndSession elimina el token actual.
func (u *User) EndSession() {
	u.Token = nil
	u.TokenExpires = nil
}
