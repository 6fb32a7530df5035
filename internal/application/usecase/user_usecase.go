package usecase

import (
	"context"

	"github.com/jhoicas/contacts-api/internal/application/auth"
	"github.com/jhoicas/contacts-api/internal/application/dto"
	"github.com/jhoicas/contacts-api/internal/application/ports"
	"github.com/jhoicas/contacts-api/internal/domain"
	"github.com/jhoicas/contacts-api/internal/domain/entity"
	"github.com/jhoicas/contacts-api/internal/domain/repository"
)

// UserUseCase perfil del usuario autenticado.
type UserUseCase struct {
	tx     ports.TxRunner
	hasher ports.PasswordHasher
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(tx ports.TxRunner, hasher ports.PasswordHasher) *UserUseCase {
	return &UserUseCase{tx: tx, hasher: hasher}
}

// Get devuelve el usuario autenticado.
func (uc *UserUseCase) Get(ctx context.Context, userID string) (*dto.UserResponse, error) {
	var user *entity.User
	err := uc.tx.RunReadOnly(ctx, func(repos repository.Repositories) error {
		var err error
		user, err = loadUser(ctx, repos, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Update actualización parcial de nombre y/o password (re-hasheada).
func (uc *UserUseCase) Update(ctx context.Context, userID string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var hash string
	if in.Password != nil {
		var err error
		if hash, err = uc.hasher.Hash(*in.Password); err != nil {
			return nil, err
		}
	}
	var user *entity.User
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		var err error
		if user, err = loadUser(ctx, repos, userID); err != nil {
			return err
		}
		if in.Name != nil {
			user.Name = *in.Name
		}
		if in.Password != nil {
			user.PasswordHash = hash
		}
		user.UpdatedAt = now()
		return repos.Users.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

func loadUser(ctx context.Context, repos repository.Repositories, userID string) (*entity.User, error) {
	user, err := repos.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
