package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/contacts-api/internal/domain"
	"github.com/jhoicas/contacts-api/internal/domain/entity"
)

// DefaultTokenHeader header que transporta el token de sesión.
const DefaultTokenHeader = "X-API-TOKEN"

// LocalUser clave en c.Locals del usuario autenticado.
const LocalUser = "current_user"

// Authenticator resuelve un token al usuario dueño (auth.AuthUseCase).
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}

// AuthMiddleware valida el token del header y deja el usuario en c.Locals.
// Header ausente, token desconocido o vencido: 401 con el mismo cuerpo.
func AuthMiddleware(authn Authenticator, header string) fiber.Handler {
	if header == "" {
		header = DefaultTokenHeader
	}
	return func(c *fiber.Ctx) error {
		token := strings.TrimSpace(c.Get(header))
		if token == "" {
			return domain.ErrUnauthorized
		}
		user, err := authn.Authenticate(c.UserContext(), token)
		if err != nil {
			return err
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// CurrentUser devuelve el usuario autenticado (nil fuera de rutas protegidas).
func CurrentUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}

// GetUserID devuelve el ID del usuario autenticado o "".
func GetUserID(c *fiber.Ctx) string {
	if u := CurrentUser(c); u != nil {
		return u.ID
	}
	return ""
}
