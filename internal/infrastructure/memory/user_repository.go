package memory

import (
	"context"

	"github.com/jhoicas/contacts-api/internal/domain"
	"github.com/jhoicas/contacts-api/internal/domain/entity"
	"github.com/jhoicas/contacts-api/internal/domain/repository"
)

// UserRepo implementa repository.UserRepository.
type UserRepo struct {
	tx *txState
}

var _ repository.UserRepository = (*UserRepo)(nil)

// Create inserta el usuario.
func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	for _, existing := range r.tx.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.tx.users[u.ID] = *u
	return nil
}

// GetByID nil, nil si no existe.
func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.tx.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetByEmail búsqueda exacta por email; nil, nil si no existe.
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.tx.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

// GetByEmailForUpdate el lock de escritura de Run ya serializa la transacción.
func (r *UserRepo) GetByEmailForUpdate(ctx context.Context, email string) (*entity.User, error) {
	return r.GetByEmail(ctx, email)
}

// GetByToken usuario con ese token de sesión; nil, nil si no hay.
func (r *UserRepo) GetByToken(_ context.Context, token string) (*entity.User, error) {
	for _, u := range r.tx.users {
		if u.Token != nil && *u.Token == token {
			return &u, nil
		}
	}
	return nil, nil
}

// Update persiste los cambios; NotFound si la fila no existe.
func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	if _, ok := r.tx.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.tx.users[u.ID] = *u
	return nil
}
