// Package password hashea contraseñas con bcrypt.
package password

import "golang.org/x/crypto/bcrypt"

// Bcrypt implementa ports.PasswordHasher. Cost 0 usa bcrypt.DefaultCost.
type Bcrypt struct {
	Cost int
}

// Hash genera el hash bcrypt de plain.
func (b Bcrypt) Hash(plain string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare devuelve error si plain no corresponde a hash.
func (b Bcrypt) Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
