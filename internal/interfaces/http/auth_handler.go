package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/contacts-api/internal/application/auth"
	"github.com/jhoicas/contacts-api/internal/application/dto"
)

// AuthHandler maneja registro, login y logout.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "email, password, name"
// @Success      200   {object}  dto.WebResponse{data=dto.UserResponse}
// @Failure      400   {object}  dto.WebResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Messages: "usuario registrado", Data: out})
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Devuelve un token nuevo en cada login; el anterior deja de ser válido.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.WebResponse{data=dto.TokenResponse}
// @Failure      400   {object}  dto.WebResponse
// @Failure      401   {object}  dto.WebResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Messages: "login exitoso", Data: out})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     ApiToken
// @Produce      json
// @Success      200  {object}  dto.WebResponse
// @Failure      401  {object}  dto.WebResponse
// @Router       /auth/logout [delete]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext(), GetUserID(c)); err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Messages: "sesión cerrada"})
}
