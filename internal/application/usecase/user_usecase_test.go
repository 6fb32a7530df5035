package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contacts-api/internal/application/dto"
	"github.com/jhoicas/contacts-api/internal/application/usecase"
	"github.com/jhoicas/contacts-api/internal/domain"
	"github.com/jhoicas/contacts-api/internal/domain/repository"
	"github.com/jhoicas/contacts-api/internal/infrastructure/memory"
)

func TestUserUseCase_Get(t *testing.T) {
	s := memory.NewStore()
	seedUser(t, s, "ucup")
	uc := usecase.NewUserUseCase(s, hasher)

	out, err := uc.Get(context.Background(), "ucup")
	require.NoError(t, err)
	assert.Equal(t, "ucup@gmail.com", out.Email)

	_, err = uc.Get(context.Background(), "nadie")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserUseCase_UpdateParcial(t *testing.T) {
	s := memory.NewStore()
	seedUser(t, s, "ucup")
	uc := usecase.NewUserUseCase(s, hasher)
	ctx := context.Background()

	before, err := uc.Get(ctx, "ucup")
	require.NoError(t, err)

	out, err := uc.Update(ctx, "ucup", dto.UpdateUserRequest{Name: ptr("Ucup Surucup")})
	require.NoError(t, err)
	assert.Equal(t, "Ucup Surucup", out.Name)
	assert.Equal(t, before.CreatedAt, out.CreatedAt)
	assert.True(t, out.UpdatedAt.After(before.UpdatedAt))

	_, err = uc.Update(ctx, "ucup", dto.UpdateUserRequest{Password: ptr("baru")})
	require.NoError(t, err)

	_ = s.RunReadOnly(ctx, func(r repository.Repositories) error {
		u, err := r.Users.GetByID(ctx, "ucup")
		require.NoError(t, err)
		assert.Equal(t, "Ucup Surucup", u.Name, "el nombre no cambia si no se envía")
		assert.NoError(t, hasher.Compare(u.PasswordHash, "baru"))
		return nil
	})
}

func TestUserUseCase_UpdateInvalido(t *testing.T) {
	s := memory.NewStore()
	seedUser(t, s, "ucup")
	_, err := usecase.NewUserUseCase(s, hasher).Update(context.Background(), "ucup", dto.UpdateUserRequest{Name: ptr("")})
	assert.True(t, domain.IsValidation(err))
}
