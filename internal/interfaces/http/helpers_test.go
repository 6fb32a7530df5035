package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/contacts-api/internal/application/auth"
	"github.com/jhoicas/contacts-api/internal/application/dto"
	"github.com/jhoicas/contacts-api/internal/application/usecase"
	"github.com/jhoicas/contacts-api/internal/domain/entity"
	"github.com/jhoicas/contacts-api/internal/domain/repository"
	"github.com/jhoicas/contacts-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/contacts-api/internal/interfaces/http"
	"github.com/jhoicas/contacts-api/pkg/logger"
	"github.com/jhoicas/contacts-api/pkg/password"
	"github.com/jhoicas/contacts-api/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "contacts-api-test"
	testHeader = "X-API-TOKEN"
)

// testServer app Fiber completa (router real) sobre el almacén en memoria.
type testServer struct {
	app   *fiber.App
	store *memory.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := memory.NewStore()
	issuer, err := token.NewIssuer(testSecret, testIssuer)
	require.NoError(t, err)
	hasher := password.Bcrypt{Cost: bcrypt.MinCost}

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop())})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      auth.NewAuthUseCase(store, issuer, hasher, time.Hour),
		UserUC:      usecase.NewUserUseCase(store, hasher),
		ContactUC:   usecase.NewContactUseCase(store),
		AddressUC:   usecase.NewAddressUseCase(store),
		CategoryUC:  usecase.NewCategoryUseCase(store),
		ProductUC:   usecase.NewProductUseCase(store),
		TokenHeader: testHeader,
	})
	return &testServer{app: app, store: store}
}

// webResponse sobre decodificado con data sin interpretar.
type webResponse struct {
	Messages string              `json:"messages"`
	Data     json.RawMessage     `json:"data"`
	Errors   string              `json:"errors"`
	Paging   *dto.PagingResponse `json:"paging"`
}

// do lanza la petición y devuelve status y sobre decodificado.
func (s *testServer) do(t *testing.T, method, path, tok string, body any) (int, webResponse) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok != "" {
		req.Header.Set(testHeader, tok)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out webResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "cuerpo: %s", raw)
	}
	return resp.StatusCode, out
}

// login registra un usuario, inicia sesión y devuelve el token.
func (s *testServer) login(t *testing.T, email string) string {
	t.Helper()
	status, _ := s.do(t, http.MethodPost, "/auth/register", "", dto.RegisterRequest{Email: email, Password: "rahasia", Name: "Ucup"})
	require.Equal(t, http.StatusOK, status)

	status, res := s.do(t, http.MethodPost, "/auth/login", "", dto.LoginRequest{Email: email, Password: "rahasia"})
	require.Equal(t, http.StatusOK, status)
	var tok dto.TokenResponse
	require.NoError(t, json.Unmarshal(res.Data, &tok))
	return tok.Token
}

// expireSession fuerza el vencimiento registrado del token del usuario.
func (s *testServer) expireSession(t *testing.T, email string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.store.Run(ctx, func(r repository.Repositories) error {
		u, err := r.Users.GetByEmail(ctx, email)
		require.NoError(t, err)
		past := time.Now().Add(-time.Second).UnixMilli()
		u.TokenExpires = &past
		return r.Users.Update(ctx, u)
	}))
}

func (s *testServer) seedCategory(t *testing.T, id string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.store.Run(ctx, func(r repository.Repositories) error {
		return r.Categories.Create(ctx, &entity.Category{ID: id, Name: id, CreatedAt: time.Now(), UpdatedAt: time.Now()})
	}))
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}
