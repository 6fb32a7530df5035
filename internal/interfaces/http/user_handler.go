package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/contacts-api/internal/application/dto"
	"github.com/jhoicas/contacts-api/internal/application/usecase"
)

// UserHandler perfil del usuario autenticado.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler del usuario actual.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Get godoc
// @Summary      Usuario actual
// @Tags         users
// @Security     ApiToken
// @Produce      json
// @Success      200  {object}  dto.WebResponse{data=dto.UserResponse}
// @Failure      401  {object}  dto.WebResponse
// @Router       /users/current [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Data: out})
}

// Update godoc
// @Summary      Actualizar usuario actual
// @Description  Actualización parcial: solo se cambian los campos enviados.
// @Tags         users
// @Security     ApiToken
// @Accept       json
// @Produce      json
// @Param        body  body      dto.UpdateUserRequest  true  "name y/o password"
// @Success      200   {object}  dto.WebResponse{data=dto.UserResponse}
// @Failure      400   {object}  dto.WebResponse
// @Failure      401   {object}  dto.WebResponse
// @Router       /users/current [patch]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Messages: "usuario actualizado", Data: out})
}
