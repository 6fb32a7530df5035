package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contacts-api/internal/application/dto"
	"github.com/jhoicas/contacts-api/internal/application/usecase"
	"github.com/jhoicas/contacts-api/internal/domain"
	"github.com/jhoicas/contacts-api/internal/infrastructure/memory"
)

func newContactUC(t *testing.T) (*usecase.ContactUseCase, *memory.Store) {
	t.Helper()
	s := memory.NewStore()
	seedUser(t, s, "ucup")
	seedUser(t, s, "otro")
	return usecase.NewContactUseCase(s), s
}

func TestContactUseCase_CRUD(t *testing.T) {
	uc, _ := newContactUC(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, "ucup", dto.ContactRequest{FirstName: "Ucup", LastName: "Surucup", Email: "ucup@gmail.com", Phone: "08999"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := uc.Get(ctx, "ucup", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := uc.Update(ctx, "ucup", created.ID, dto.ContactRequest{FirstName: "Budi"})
	require.NoError(t, err)
	assert.Equal(t, "Budi", updated.FirstName)
	assert.Empty(t, updated.LastName, "reemplazo completo de campos editables")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	require.NoError(t, uc.Delete(ctx, "ucup", created.ID))
	_, err = uc.Get(ctx, "ucup", created.ID)
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, "ucup", created.ID), domain.ErrNotFound)
}

func TestContactUseCase_AjenoEsInexistente(t *testing.T) {
	uc, _ := newContactUC(t)
	ctx := context.Background()
	created, err := uc.Create(ctx, "ucup", dto.ContactRequest{FirstName: "Ucup"})
	require.NoError(t, err)

	_, err = uc.Get(ctx, "otro", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Update(ctx, "otro", created.ID, dto.ContactRequest{FirstName: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, "otro", created.ID), domain.ErrNotFound)

	_, err = uc.Get(ctx, "ucup", created.ID)
	assert.NoError(t, err, "el dueño conserva el contacto")
}

func TestContactUseCase_Search21EnTresPaginas(t *testing.T) {
	uc, _ := newContactUC(t)
	ctx := context.Background()
	for i := 0; i < 21; i++ {
		_, err := uc.Create(ctx, "ucup", dto.ContactRequest{FirstName: "Ucup " + fmt.Sprint(i), LastName: "Surucup", Email: "ucup@gmail.com", Phone: "08999"})
		require.NoError(t, err)
	}
	_, err := uc.Create(ctx, "ucup", dto.ContactRequest{FirstName: "Budi", LastName: "Santoso"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, "otro", dto.ContactRequest{FirstName: "Ucup"})
	require.NoError(t, err)

	name := ptr("cUp")
	page0, err := uc.Search(ctx, "ucup", dto.SearchContactRequest{Name: name, PageRequest: dto.NewPageRequest(nil, nil)})
	require.NoError(t, err)
	assert.Len(t, page0.Items, 10)
	assert.Equal(t, dto.PagingResponse{CurrentPage: 0, TotalPage: 3, Size: 10}, page0.Paging)

	page1, err := uc.Search(ctx, "ucup", dto.SearchContactRequest{Name: name, PageRequest: dto.NewPageRequest(ptr(1), nil)})
	require.NoError(t, err)
	assert.Len(t, page1.Items, 10)
	assert.NotEqual(t, page0.Items[0].ID, page1.Items[0].ID)

	for _, c := range append(page0.Items, page1.Items...) {
		assert.Contains(t, c.FirstName+c.LastName, "Ucup")
	}

	byLast, err := uc.Search(ctx, "ucup", dto.SearchContactRequest{Name: ptr("santoso"), PageRequest: dto.NewPageRequest(nil, nil)})
	require.NoError(t, err)
	require.Len(t, byLast.Items, 1)
	assert.Equal(t, "Budi", byLast.Items[0].FirstName)
}

func TestContactUseCase_SearchPaginaInvalida(t *testing.T) {
	uc, _ := newContactUC(t)
	_, err := uc.Search(context.Background(), "ucup", dto.SearchContactRequest{PageRequest: dto.NewPageRequest(ptr(-1), ptr(0))})
	assert.True(t, domain.IsValidation(err))
}
