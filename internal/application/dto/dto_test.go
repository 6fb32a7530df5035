package dto_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contacts-api/internal/application/dto"
	"github.com/jhoicas/contacts-api/internal/domain"
)

func fields(t *testing.T, err error) []string {
	t.Helper()
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	out := make([]string, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		out = append(out, v.Field)
	}
	return out
}

func ptr[T any](v T) *T { return &v }

func TestRegisterRequest_Validate(t *testing.T) {
	assert.NoError(t, dto.RegisterRequest{Email: "ucup@gmail.com", Password: "rahasia", Name: "Ucup"}.Validate())

	err := dto.RegisterRequest{Email: "no-email", Password: "", Name: strings.Repeat("a", 256)}.Validate()
	assert.ElementsMatch(t, []string{"email", "password", "name"}, fields(t, err))
}

func TestUpdateUserRequest_SoloValidaLoEnviado(t *testing.T) {
	assert.NoError(t, dto.UpdateUserRequest{}.Validate())
	assert.NoError(t, dto.UpdateUserRequest{Name: ptr("Nuevo")}.Validate())

	err := dto.UpdateUserRequest{Password: ptr("  ")}.Validate()
	assert.Equal(t, []string{"password"}, fields(t, err))
}

func TestContactRequest_Validate(t *testing.T) {
	assert.NoError(t, dto.ContactRequest{FirstName: "Ucup"}.Validate(), "solo firstname es obligatorio")

	err := dto.ContactRequest{Email: "mal", Phone: "1234567890123456"}.Validate()
	assert.Equal(t, []string{"firstname", "email", "phone"}, fields(t, err))
}

func TestAddressRequest_Validate(t *testing.T) {
	assert.NoError(t, dto.AddressRequest{Country: "Indonesia", PostalCode: "12345"}.Validate())

	err := dto.AddressRequest{Country: "", PostalCode: "123456"}.Validate()
	assert.Equal(t, []string{"country", "postalCode"}, fields(t, err))
}

func TestProductRequest_Validate(t *testing.T) {
	ok := dto.ProductRequest{
		CategoryID: "TestCategory",
		Name:       "Rexus Daxa Air IV",
		PriceBuy:   ptr(decimal.Zero),
		PriceSell:  ptr(decimal.RequireFromString("900000.00")),
		Stock:      ptr(0),
	}
	assert.NoError(t, ok.Validate(), "cero es un valor válido")

	err := dto.ProductRequest{
		Name:      "x",
		PriceSell: ptr(decimal.RequireFromString("-1")),
		Stock:     ptr(-1),
	}.Validate()
	assert.Equal(t, []string{"categoryId", "priceBuy", "priceSell", "stock"}, fields(t, err))
}

func TestPageRequest(t *testing.T) {
	p := dto.NewPageRequest(nil, nil)
	assert.Equal(t, dto.PageRequest{Page: 0, Size: 10}, p)
	assert.NoError(t, p.Validate())

	assert.Equal(t, []string{"page", "size"}, fields(t, dto.NewPageRequest(ptr(-1), ptr(0)).Validate()))
	assert.Equal(t, []string{"size"}, fields(t, dto.NewPageRequest(ptr(0), ptr(101)).Validate()))

	assert.NoError(t, dto.NewPageRequest(ptr(dto.MaxPage), ptr(dto.MaxSize)).Validate())
	assert.Equal(t, []string{"page"}, fields(t, dto.NewPageRequest(ptr(100000000000000000), ptr(100)).Validate()))
}

func TestNewPagingResponse(t *testing.T) {
	p := dto.PagingResponse{CurrentPage: 1, TotalPage: 3, Size: 10}
	assert.Equal(t, p, dto.NewPagingResponse(dto.PageRequest{Page: 1, Size: 10}, 21))
	assert.Equal(t, 0, dto.NewPagingResponse(dto.PageRequest{Page: 0, Size: 10}, 0).TotalPage)
}
