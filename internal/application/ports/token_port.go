package ports

import "time"

// TokenIssuer emite y verifica tokens de sesión firmados. El subject es el ID del usuario.
type TokenIssuer interface {
	Generate(subject string, expiresAt time.Time) (string, error)
	Verify(token string) (subject string, err error)
}

// PasswordHasher abstrae el hash de contraseñas (bcrypt en producción, coste mínimo en tests).
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
