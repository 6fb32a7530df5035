package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/contacts-api/internal/domain/entity"
	"github.com/jhoicas/contacts-api/internal/domain/repository"
	"github.com/jhoicas/contacts-api/internal/infrastructure/memory"
	"github.com/jhoicas/contacts-api/pkg/password"
)

var hasher = password.Bcrypt{Cost: bcrypt.MinCost}

func ptr[T any](v T) *T { return &v }

func seedUser(t *testing.T, s *memory.Store, id string) {
	t.Helper()
	hash, err := hasher.Hash("rahasia")
	require.NoError(t, err)
	require.NoError(t, s.Run(context.Background(), func(r repository.Repositories) error {
		return r.Users.Create(context.Background(), &entity.User{ID: id, Email: id + "@gmail.com", Name: id, PasswordHash: hash})
	}))
}

func seedCategory(t *testing.T, s *memory.Store, id string) {
	t.Helper()
	require.NoError(t, s.Run(context.Background(), func(r repository.Repositories) error {
		return r.Categories.Create(context.Background(), &entity.Category{ID: id, Name: id})
	}))
}
