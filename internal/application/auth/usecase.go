package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/contacts-api/internal/application/dto"
	"github.com/jhoicas/contacts-api/internal/application/ports"
	"github.com/jhoicas/contacts-api/internal/domain"
	"github.com/jhoicas/contacts-api/internal/domain/entity"
	"github.com/jhoicas/contacts-api/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación: registro, login, logout y validación de token.
type AuthUseCase struct {
	tx     ports.TxRunner
	tokens ports.TokenIssuer
	hasher ports.PasswordHasher
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth. ttl es la vigencia de cada token emitido.
func NewAuthUseCase(tx ports.TxRunner, tokens ports.TokenIssuer, hasher ports.PasswordHasher, ttl time.Duration) *AuthUseCase {
	return &AuthUseCase{tx: tx, tokens: tokens, hasher: hasher, ttl: ttl, now: time.Now}
}

// WithClock reemplaza el reloj (tests de expiración).
func (uc *AuthUseCase) WithClock(now func() time.Time) *AuthUseCase {
	uc.now = now
	return uc
}

// Register crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe; el registro previo no se toca.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	var out *entity.User
	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		existing, err := repos.Users.GetByEmail(ctx, in.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrEmailAlreadyExists
		}
		now := uc.now()
		user := &entity.User{
			ID:           uuid.New().String(),
			Email:        in.Email,
			PasswordHash: hash,
			Name:         in.Name,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := repos.Users.Create(ctx, user); err != nil {
			return err
		}
		out, err = repos.Users.GetByEmail(ctx, in.Email)
		if err != nil {
			return err
		}
		if out == nil {
			return domain.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToUserResponse(out), nil
}

// Login verifica email/password, rota el token de sesión y devuelve token + vencimiento.
// Email inexistente y password incorrecta producen el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out *dto.TokenResponse
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		user, err := repos.Users.GetByEmailForUpdate(ctx, in.Email)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrBadCredentials
		}
		if err := uc.hasher.Compare(user.PasswordHash, in.Password); err != nil {
			return domain.ErrBadCredentials
		}
		now := uc.now()
		expiresAt := now.Add(uc.ttl)
		tok, err := uc.tokens.Generate(user.ID, expiresAt)
		if err != nil {
			return err
		}
		user.StartSession(tok, expiresAt)
		user.UpdatedAt = now
		if err := repos.Users.Update(ctx, user); err != nil {
			return err
		}
		out = &dto.TokenResponse{
			Email:     user.Email,
			Name:      user.Name,
			Token:     tok,
			ExpiredAt: *user.TokenExpires,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Logout elimina el token del usuario. Repetirlo no es error.
func (uc *AuthUseCase) Logout(ctx context.Context, userID string) error {
	return uc.tx.Run(ctx, func(repos repository.Repositories) error {
		user, err := repos.Users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUnauthorized
		}
		if user.Token == nil && user.TokenExpires == nil {
			return nil
		}
		user.EndSession()
		user.UpdatedAt = uc.now()
		return repos.Users.Update(ctx, user)
	})
}

// Authenticate resuelve el token del header al usuario dueño.
// Token vacío, firma inválida, token desconocido o vencido: todos ErrUnauthorized.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	subject, err := uc.tokens.Verify(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	var user *entity.User
	err = uc.tx.RunReadOnly(ctx, func(repos repository.Repositories) error {
		var err error
		user, err = repos.Users.GetByToken(ctx, token)
		return err
	})
	if err != nil {
		return nil, err
	}
	if user == nil || user.ID != subject || !user.SessionActiveAt(uc.now()) {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// ToUserResponse mapea la entidad a su salida pública.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
