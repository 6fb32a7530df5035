package http_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contacts-api/internal/application/dto"
)

func createContact(t *testing.T, s *testServer, tok string, in dto.ContactRequest) dto.ContactResponse {
	t.Helper()
	status, res := s.do(t, http.MethodPost, "/contacts", tok, in)
	require.Equal(t, http.StatusOK, status, res.Errors)
	return decode[dto.ContactResponse](t, res.Data)
}

func TestContacts_CRUD(t *testing.T) {
	s := newTestServer(t)
	tok := s.login(t, "ucup@gmail.com")

	created := createContact(t, s, tok, dto.ContactRequest{FirstName: "Ucup", LastName: "Surucup", Email: "ucup@gmail.com", Phone: "08999"})

	status, res := s.do(t, http.MethodGet, "/contacts/"+created.ID, tok, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Surucup", decode[dto.ContactResponse](t, res.Data).LastName)

	status, res = s.do(t, http.MethodPut, "/contacts/"+created.ID, tok, dto.ContactRequest{FirstName: "Budi"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Budi", decode[dto.ContactResponse](t, res.Data).FirstName)

	status, _ = s.do(t, http.MethodDelete, "/contacts/"+created.ID, tok, nil)
	require.Equal(t, http.StatusOK, status)

	status, res = s.do(t, http.MethodGet, "/contacts/"+created.ID, tok, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.NotEmpty(t, res.Errors)
}

func TestContacts_Validacion(t *testing.T) {
	s := newTestServer(t)
	tok := s.login(t, "ucup@gmail.com")

	status, res := s.do(t, http.MethodPost, "/contacts", tok, dto.ContactRequest{Email: "salah"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, res.Errors, "firstname")
	assert.Contains(t, res.Errors, "email")
}

func TestContacts_SinToken(t *testing.T) {
	s := newTestServer(t)
	status, res := s.do(t, http.MethodPost, "/contacts", "", dto.ContactRequest{FirstName: "Ucup"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.NotEmpty(t, res.Errors)
}

func TestContacts_AjenoEs404(t *testing.T) {
	s := newTestServer(t)
	owner := s.login(t, "ucup@gmail.com")
	other := s.login(t, "otro@gmail.com")
	created := createContact(t, s, owner, dto.ContactRequest{FirstName: "Ucup"})

	status, _ := s.do(t, http.MethodGet, "/contacts/"+created.ID, other, nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = s.do(t, http.MethodGet, "/contacts/no-existe", other, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.do(t, http.MethodPost, "/contacts/"+created.ID+"/addresses", other,
		dto.AddressRequest{Country: "Indonesia", PostalCode: "12345"})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestContacts_Search(t *testing.T) {
	s := newTestServer(t)
	tok := s.login(t, "ucup@gmail.com")
	for i := 0; i < 21; i++ {
		createContact(t, s, tok, dto.ContactRequest{FirstName: fmt.Sprintf("Ucup %d", i), LastName: "Surucup", Email: "ucup@gmail.com", Phone: "08999"})
	}
	createContact(t, s, tok, dto.ContactRequest{FirstName: "Budi"})

	status, res := s.do(t, http.MethodGet, "/contacts?name=ucup", tok, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]dto.ContactResponse](t, res.Data), 10)
	require.NotNil(t, res.Paging)
	assert.Equal(t, dto.PagingResponse{CurrentPage: 0, TotalPage: 3, Size: 10}, *res.Paging)

	status, res = s.do(t, http.MethodGet, "/contacts?name=ucup&page=1&size=10", tok, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]dto.ContactResponse](t, res.Data), 10)
	assert.Equal(t, 1, res.Paging.CurrentPage)

	status, res = s.do(t, http.MethodGet, "/contacts?email=gmail&phone=089&page=2", tok, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]dto.ContactResponse](t, res.Data), 1)

	status, res = s.do(t, http.MethodGet, "/contacts?name=zzz", tok, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(res.Data), "sin resultados data es lista vacía")
	assert.Equal(t, 0, res.Paging.TotalPage)

	status, res = s.do(t, http.MethodGet, "/contacts?page=abc", tok, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, res.Errors, "page")
}

func TestAddresses_CRUD(t *testing.T) {
	s := newTestServer(t)
	tok := s.login(t, "ucup@gmail.com")
	contact := createContact(t, s, tok, dto.ContactRequest{FirstName: "Ucup"})
	base := "/contacts/" + contact.ID + "/addresses"

	in := dto.AddressRequest{Street: "Jalan", City: "Jakarta", Province: "DKI", Country: "Indonesia", PostalCode: "12345"}
	status, res := s.do(t, http.MethodPost, base, tok, in)
	require.Equal(t, http.StatusOK, status, res.Errors)
	addr := decode[dto.AddressResponse](t, res.Data)

	status, res = s.do(t, http.MethodGet, base, tok, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]dto.AddressResponse](t, res.Data), 1)

	in.PostalCode = "123456"
	status, res = s.do(t, http.MethodPut, base+"/"+addr.ID, tok, in)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, res.Errors, "postalCode")

	status, _ = s.do(t, http.MethodDelete, base+"/"+addr.ID, tok, nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = s.do(t, http.MethodGet, base+"/"+addr.ID, tok, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestContacts_PaginaEnorme(t *testing.T) {
	s := newTestServer(t)
	tok := s.login(t, "ucup@gmail.com")
	createContact(t, s, tok, dto.ContactRequest{FirstName: "Ucup"})

	status, res := s.do(t, http.MethodGet, "/contacts?page=100000000000000000&size=100", tok, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, res.Errors, "page")

	status, res = s.do(t, http.MethodGet, "/contacts?page=5", tok, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(res.Data))
	assert.Equal(t, dto.PagingResponse{CurrentPage: 5, TotalPage: 1, Size: 10}, *res.Paging)
}
