package postgres_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contacts-api/internal/domain"
	"github.com/jhoicas/contacts-api/internal/domain/entity"
	"github.com/jhoicas/contacts-api/internal/domain/repository"
	"github.com/jhoicas/contacts-api/internal/infrastructure/postgres"
	"github.com/jhoicas/contacts-api/pkg/config"
	"github.com/jhoicas/contacts-api/pkg/logger"
)

// Estos tests necesitan un PostgreSQL real: TEST_DATABASE_URL=postgres://... go test ./...
// Cada test trabaja dentro de una transacción que se descarta al final.

var errRollback = errors.New("rollback")

func newRunner(t *testing.T) *postgres.TxRunner {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.Migrate(ctx, pool, logger.Nop()))
	return postgres.NewTxRunner(pool)
}

// inTx ejecuta fn y deshace todo lo escrito.
func inTx(t *testing.T, r *postgres.TxRunner, fn func(ctx context.Context, repos repository.Repositories)) {
	t.Helper()
	ctx := context.Background()
	err := r.Run(ctx, func(repos repository.Repositories) error {
		fn(ctx, repos)
		return errRollback
	})
	require.ErrorIs(t, err, errRollback)
}

func now() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }

func newCategory(t *testing.T, ctx context.Context, repos repository.Repositories) *entity.Category {
	t.Helper()
	c := &entity.Category{ID: uuid.New().String(), Name: "Mouse", CreatedAt: now(), UpdatedAt: now()}
	require.NoError(t, repos.Categories.Create(ctx, c))
	return c
}

func TestUserRepo_LoginConBloqueo(t *testing.T) {
	runner := newRunner(t)
	inTx(t, runner, func(ctx context.Context, repos repository.Repositories) {
		email := uuid.New().String() + "@gmail.com"
		u := &entity.User{ID: uuid.New().String(), Email: email, Name: "Ucup", PasswordHash: "hash", CreatedAt: now(), UpdatedAt: now()}
		require.NoError(t, repos.Users.Create(ctx, u))

		err := repos.Users.Create(ctx, &entity.User{ID: uuid.New().String(), Email: email, Name: "Otro", PasswordHash: "x", CreatedAt: now(), UpdatedAt: now()})
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	inTx(t, runner, func(ctx context.Context, repos repository.Repositories) {
		email := uuid.New().String() + "@gmail.com"
		u := &entity.User{ID: uuid.New().String(), Email: email, Name: "Ucup", PasswordHash: "hash", CreatedAt: now(), UpdatedAt: now()}
		require.NoError(t, repos.Users.Create(ctx, u))

		locked, err := repos.Users.GetByEmailForUpdate(ctx, email)
		require.NoError(t, err)
		require.NotNil(t, locked)
		locked.StartSession("tok-"+u.ID, now().Add(time.Hour))
		require.NoError(t, repos.Users.Update(ctx, locked))

		byToken, err := repos.Users.GetByToken(ctx, "tok-"+u.ID)
		require.NoError(t, err)
		require.NotNil(t, byToken)
		assert.Equal(t, u.ID, byToken.ID)

		missing, err := repos.Users.GetByEmailForUpdate(ctx, "nadie-"+email)
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})
}

func TestProductRepo_JoinCategoria(t *testing.T) {
	runner := newRunner(t)
	inTx(t, runner, func(ctx context.Context, repos repository.Repositories) {
		cat := newCategory(t, ctx, repos)
		p := &entity.Product{
			ID:          uuid.New().String(),
			CategoryID:  cat.ID,
			Name:        "Rexus Daxa Air IV",
			PriceBuy:    decimal.RequireFromString("800000.00"),
			PriceSell:   decimal.RequireFromString("900000.00"),
			Stock:       100,
			Description: "Mouse gaming",
			CreatedAt:   now(),
			UpdatedAt:   now(),
		}
		require.NoError(t, repos.Products.Create(ctx, p))

		got, err := repos.Products.GetByID(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, p.PriceBuy.Equal(got.PriceBuy))
		assert.True(t, p.PriceSell.Equal(got.PriceSell))
		assert.Equal(t, 100, got.Stock)
		assert.True(t, p.CreatedAt.Equal(got.CreatedAt))
		require.NotNil(t, got.Category)
		assert.Equal(t, cat.ID, got.Category.ID)
		assert.Equal(t, "Mouse", got.Category.Name)

		list, err := repos.Products.ListByCategory(ctx, cat.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.NotNil(t, list[0].Category)

		zero := decimal.Zero
		name := "daxa"
		found, total, err := repos.Products.Search(ctx, repository.ProductFilter{Name: &name, PriceBuy: &zero}, repository.PageRequest{Page: 0, Size: 10})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, int64(1))
		assert.NotEmpty(t, found)
	})
}

func TestProductRepo_CategoriaInexistente(t *testing.T) {
	runner := newRunner(t)
	inTx(t, runner, func(ctx context.Context, repos repository.Repositories) {
		err := repos.Products.Create(ctx, &entity.Product{
			ID: uuid.New().String(), CategoryID: "no-existe", Name: "x",
			PriceBuy: decimal.Zero, PriceSell: decimal.Zero, CreatedAt: now(), UpdatedAt: now(),
		})
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	})
}

func TestCategoryRepo_BorrarEnUso(t *testing.T) {
	runner := newRunner(t)
	inTx(t, runner, func(ctx context.Context, repos repository.Repositories) {
		cat := newCategory(t, ctx, repos)
		require.NoError(t, repos.Products.Create(ctx, &entity.Product{
			ID: uuid.New().String(), CategoryID: cat.ID, Name: "x",
			PriceBuy: decimal.Zero, PriceSell: decimal.Zero, CreatedAt: now(), UpdatedAt: now(),
		}))
		// La violación de FK aborta la transacción: debe ser la última sentencia.
		err := repos.Categories.Delete(ctx, cat.ID)
		assert.ErrorIs(t, err, domain.ErrCategoryInUse)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestContactRepo_PaginaFueraDeRango(t *testing.T) {
	runner := newRunner(t)
	inTx(t, runner, func(ctx context.Context, repos repository.Repositories) {
		u := &entity.User{ID: uuid.New().String(), Email: uuid.New().String() + "@gmail.com", Name: "Ucup", PasswordHash: "h", CreatedAt: now(), UpdatedAt: now()}
		require.NoError(t, repos.Users.Create(ctx, u))
		require.NoError(t, repos.Contacts.Create(ctx, &entity.Contact{ID: uuid.New().String(), UserID: u.ID, FirstName: "Ucup", CreatedAt: now(), UpdatedAt: now()}))

		items, total, err := repos.Contacts.Search(ctx, repository.ContactFilter{UserID: u.ID}, repository.PageRequest{Page: 100000000000000000, Size: 100})
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.EqualValues(t, 1, total)
	})
}
