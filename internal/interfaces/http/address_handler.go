package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/contacts-api/internal/application/dto"
	"github.com/jhoicas/contacts-api/internal/application/usecase"
)

// AddressHandler direcciones de un contacto del usuario.
type AddressHandler struct {
	uc *usecase.AddressUseCase
}

// NewAddressHandler construye el handler de direcciones.
func NewAddressHandler(uc *usecase.AddressUseCase) *AddressHandler {
	return &AddressHandler{uc: uc}
}

// Create godoc
// @Summary      Crear dirección
// @Tags         addresses
// @Security     ApiToken
// @Accept       json
// @Produce      json
// @Param        contactId  path      string              true  "ID del contacto"
// @Param        body       body      dto.AddressRequest  true  "Datos de la dirección"
// @Success      200        {object}  dto.WebResponse{data=dto.AddressResponse}
// @Failure      400        {object}  dto.WebResponse
// @Failure      404        {object}  dto.WebResponse
// @Router       /contacts/{contactId}/addresses [post]
func (h *AddressHandler) Create(c *fiber.Ctx) error {
	var in dto.AddressRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), c.Params("contactId"), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Messages: "dirección creada", Data: out})
}

// List godoc
// @Summary      Listar direcciones
// @Tags         addresses
// @Security     ApiToken
// @Produce      json
// @Param        contactId  path      string  true  "ID del contacto"
// @Success      200        {object}  dto.WebResponse{data=[]dto.AddressResponse}
// @Failure      404        {object}  dto.WebResponse
// @Router       /contacts/{contactId}/addresses [get]
func (h *AddressHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetUserID(c), c.Params("contactId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Data: out})
}

// Get godoc
// @Summary      Obtener dirección
// @Tags         addresses
// @Security     ApiToken
// @Produce      json
// @Param        contactId  path      string  true  "ID del contacto"
// @Param        addressId  path      string  true  "ID de la dirección"
// @Success      200        {object}  dto.WebResponse{data=dto.AddressResponse}
// @Failure      404        {object}  dto.WebResponse
// @Router       /contacts/{contactId}/addresses/{addressId} [get]
func (h *AddressHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetUserID(c), c.Params("contactId"), c.Params("addressId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Data: out})
}

// Update godoc
// @Summary      Reemplazar dirección
// @Tags         addresses
// @Security     ApiToken
// @Accept       json
// @Produce      json
// @Param        contactId  path      string              true  "ID del contacto"
// @Param        addressId  path      string              true  "ID de la dirección"
// @Param        body       body      dto.AddressRequest  true  "Datos de la dirección"
// @Success      200        {object}  dto.WebResponse{data=dto.AddressResponse}
// @Failure      400        {object}  dto.WebResponse
// @Failure      404        {object}  dto.WebResponse
// @Router       /contacts/{contactId}/addresses/{addressId} [put]
func (h *AddressHandler) Update(c *fiber.Ctx) error {
	var in dto.AddressRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetUserID(c), c.Params("contactId"), c.Params("addressId"), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Messages: "dirección actualizada", Data: out})
}

// Delete godoc
// @Summary      Borrar dirección
// @Tags         addresses
// @Security     ApiToken
// @Produce      json
// @Param        contactId  path      string  true  "ID del contacto"
// @Param        addressId  path      string  true  "ID de la dirección"
// @Success      200        {object}  dto.WebResponse
// @Failure      404        {object}  dto.WebResponse
// @Router       /contacts/{contactId}/addresses/{addressId} [delete]
func (h *AddressHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("contactId"), c.Params("addressId")); err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Messages: "dirección eliminada"})
}
