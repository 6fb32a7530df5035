package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalid se devuelve para cualquier token mal formado, con firma incorrecta o vencido.
var ErrInvalid = errors.New("token: inválido")

// Claims del token de sesión. El ID (jti) es aleatorio en cada emisión, así dos logins
// seguidos del mismo usuario nunca producen el mismo token.
type Claims struct {
	jwt.RegisteredClaims
}

// Issuer firma tokens de sesión con HS256.
type Issuer struct {
	secret []byte
	issuer string
}

// NewIssuer construye el emisor. El secret no puede estar vacío.
func NewIssuer(secret, issuer string) (*Issuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("token: secret vacío")
	}
	return &Issuer{secret: []byte(secret), issuer: issuer}, nil
}

// Generate genera un token firmado para subject que vence en expiresAt.
func (i *Issuer) Generate(subject string, expiresAt time.Time) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    i.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify valida firma, emisor y vencimiento; devuelve el subject.
// No consulta la base de datos: el token sigue siendo válido solo si además está registrado.
func (i *Issuer) Verify(tokenString string) (string, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if i.issuer != "" {
		opts = append(opts, jwt.WithIssuer(i.issuer))
	}
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid || claims.Subject == "" {
		return "", ErrInvalid
	}
	return claims.Subject, nil
}
