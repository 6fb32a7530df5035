package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/contacts-api/pkg/password"
)

func TestBcrypt_HashAndCompare(t *testing.T) {
	h := password.Bcrypt{Cost: bcrypt.MinCost}
	hash, err := h.Hash("rahasia")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia", hash)

	assert.NoError(t, h.Compare(hash, "rahasia"))
	assert.ErrorIs(t, h.Compare(hash, "salah"), bcrypt.ErrMismatchedHashAndPassword)
}

func TestBcrypt_SalDistintaPorHash(t *testing.T) {
	h := password.Bcrypt{Cost: bcrypt.MinCost}
	a, err := h.Hash("rahasia")
	require.NoError(t, err)
	b, err := h.Hash("rahasia")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
