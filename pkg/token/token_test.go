package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contacts-api/pkg/token"
)

const (
	testSecret  = "test-secret-key-for-unit-tests"
	testIssuer  = "contacts-api-test"
	testSubject = "00000000-0000-0000-0000-000000000001"
)

func newIssuer(t *testing.T) *token.Issuer {
	t.Helper()
	iss, err := token.NewIssuer(testSecret, testIssuer)
	require.NoError(t, err)
	return iss
}

func TestNewIssuer_SecretVacio(t *testing.T) {
	_, err := token.NewIssuer("", testIssuer)
	assert.Error(t, err)
}

func TestGenerateAndVerify(t *testing.T) {
	iss := newIssuer(t)
	tok, err := iss.Generate(testSubject, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	sub, err := iss.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, testSubject, sub)
}

func TestGenerate_TokensDistintosEnCadaEmision(t *testing.T) {
	iss := newIssuer(t)
	exp := time.Now().Add(time.Hour)
	a, err := iss.Generate(testSubject, exp)
	require.NoError(t, err)
	b, err := iss.Generate(testSubject, exp)
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "cada login debe rotar el token")
}

func TestVerify_TokenExpirado(t *testing.T) {
	iss := newIssuer(t)
	tok, err := iss.Generate(testSubject, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = iss.Verify(tok)
	assert.ErrorIs(t, err, token.ErrInvalid)
}

func TestVerify_SecretIncorrecto(t *testing.T) {
	tok, err := newIssuer(t).Generate(testSubject, time.Now().Add(time.Hour))
	require.NoError(t, err)

	other, err := token.NewIssuer("otro-secret-completamente-distinto", testIssuer)
	require.NoError(t, err)
	_, err = other.Verify(tok)
	assert.ErrorIs(t, err, token.ErrInvalid)
}

func TestVerify_EmisorDistinto(t *testing.T) {
	tok, err := newIssuer(t).Generate(testSubject, time.Now().Add(time.Hour))
	require.NoError(t, err)

	other, err := token.NewIssuer(testSecret, "otro-emisor")
	require.NoError(t, err)
	_, err = other.Verify(tok)
	assert.ErrorIs(t, err, token.ErrInvalid)
}

func TestVerify_Basura(t *testing.T) {
	_, err := newIssuer(t).Verify("token.invalido.aqui")
	assert.ErrorIs(t, err, token.ErrInvalid)
}
