package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contacts-api/internal/application/dto"
	"github.com/jhoicas/contacts-api/internal/application/usecase"
	"github.com/jhoicas/contacts-api/internal/domain"
	"github.com/jhoicas/contacts-api/internal/infrastructure/memory"
)

func rexus() dto.ProductRequest {
	return dto.ProductRequest{
		CategoryID:  "TestCategory",
		Name:        "Rexus Daxa Air IV",
		PriceBuy:    ptr(decimal.RequireFromString("800000.00")),
		PriceSell:   ptr(decimal.RequireFromString("900000.00")),
		Stock:       ptr(100),
		Description: "Mouse gaming",
	}
}

func newProductUC(t *testing.T) *usecase.ProductUseCase {
	t.Helper()
	s := memory.NewStore()
	seedCategory(t, s, "TestCategory")
	return usecase.NewProductUseCase(s)
}

func TestProductUseCase_RoundTrip(t *testing.T) {
	uc := newProductUC(t)
	ctx := context.Background()
	in := rexus()

	created, err := uc.Create(ctx, in)
	require.NoError(t, err)

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, in.Name, got.Name)
	assert.True(t, in.PriceBuy.Equal(got.PriceBuy))
	assert.True(t, in.PriceSell.Equal(got.PriceSell))
	assert.Equal(t, *in.Stock, got.Stock)
	assert.Equal(t, in.Description, got.Description)
	assert.Equal(t, "TestCategory", got.Category.ID)
	assert.Equal(t, "TestCategory", got.Category.Name)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestProductUseCase_CategoriaInexistente(t *testing.T) {
	uc := newProductUC(t)
	in := rexus()
	in.CategoryID = "nope"
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	_, err = uc.ListByCategory(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_UpdateYDelete(t *testing.T) {
	uc := newProductUC(t)
	ctx := context.Background()
	created, err := uc.Create(ctx, rexus())
	require.NoError(t, err)

	in := rexus()
	in.Stock = ptr(5)
	updated, err := uc.Update(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Stock)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	list, err := uc.ListByCategory(ctx, "TestCategory")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, uc.Delete(ctx, created.ID))
	_, err = uc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductUseCase_SearchPrecioCeroIncluyeTodos(t *testing.T) {
	uc := newProductUC(t)
	ctx := context.Background()
	for i := 0; i < 12; i++ {
		in := rexus()
		in.Name = fmt.Sprintf("Rexus %d", i)
		in.PriceBuy = ptr(decimal.NewFromInt(int64(i * 1000)))
		in.PriceSell = ptr(decimal.Zero)
		in.Stock = ptr(i)
		_, err := uc.Create(ctx, in)
		require.NoError(t, err)
	}

	zero := decimal.RequireFromString("0.00")
	byBuy, err := uc.Search(ctx, dto.SearchProductRequest{PriceBuy: &zero, PageRequest: dto.NewPageRequest(nil, nil)})
	require.NoError(t, err)
	assert.Len(t, byBuy.Items, 10)
	assert.Equal(t, 2, byBuy.Paging.TotalPage)

	bySell, err := uc.Search(ctx, dto.SearchProductRequest{PriceSell: &zero, PageRequest: dto.NewPageRequest(ptr(1), nil)})
	require.NoError(t, err)
	assert.Len(t, bySell.Items, 2)

	bounded, err := uc.Search(ctx, dto.SearchProductRequest{Stock: ptr(10), Name: ptr("REXUS"), PageRequest: dto.NewPageRequest(nil, nil)})
	require.NoError(t, err)
	assert.Len(t, bounded.Items, 2, "stock 10 y 11")

	none, err := uc.Search(ctx, dto.SearchProductRequest{Name: ptr("logitech"), PageRequest: dto.NewPageRequest(nil, nil)})
	require.NoError(t, err)
	assert.NotNil(t, none.Items)
	assert.Empty(t, none.Items)
}
