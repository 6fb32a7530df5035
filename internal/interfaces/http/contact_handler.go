package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/contacts-api/internal/application/dto"
	"github.com/jhoicas/contacts-api/internal/application/usecase"
)

// ContactHandler maneja las peticiones HTTP para Contact (acotado al usuario).
type ContactHandler struct {
	uc *usecase.ContactUseCase
}

// NewContactHandler construye el handler.
func NewContactHandler(uc *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Create godoc
// @Summary      Crear contacto
// @Tags         contacts
// @Security     ApiToken
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ContactRequest  true  "Datos del contacto"
// @Success      200   {object}  dto.WebResponse{data=dto.ContactResponse}
// @Failure      400   {object}  dto.WebResponse
// @Router       /contacts [post]
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var in dto.ContactRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Messages: "contacto creado", Data: out})
}

// Get godoc
// @Summary      Obtener contacto
// @Tags         contacts
// @Security     ApiToken
// @Produce      json
// @Param        contactId  path      string  true  "ID del contacto"
// @Success      200        {object}  dto.WebResponse{data=dto.ContactResponse}
// @Failure      404        {object}  dto.WebResponse
// @Router       /contacts/{contactId} [get]
func (h *ContactHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetUserID(c), c.Params("contactId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Data: out})
}

// Update godoc
// @Summary      Reemplazar contacto
// @Tags         contacts
// @Security     ApiToken
// @Accept       json
// @Produce      json
// @Param        contactId  path      string              true  "ID del contacto"
// @Param        body       body      dto.ContactRequest  true  "Datos del contacto"
// @Success      200        {object}  dto.WebResponse{data=dto.ContactResponse}
// @Failure      400        {object}  dto.WebResponse
// @Failure      404        {object}  dto.WebResponse
// @Router       /contacts/{contactId} [put]
func (h *ContactHandler) Update(c *fiber.Ctx) error {
	var in dto.ContactRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetUserID(c), c.Params("contactId"), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Messages: "contacto actualizado", Data: out})
}

// Delete godoc
// @Summary      Borrar contacto
// @Tags         contacts
// @Security     ApiToken
// @Produce      json
// @Param        contactId  path      string  true  "ID del contacto"
// @Success      200        {object}  dto.WebResponse
// @Failure      404        {object}  dto.WebResponse
// @Router       /contacts/{contactId} [delete]
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("contactId")); err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Messages: "contacto eliminado"})
}

// Search godoc
// @Summary      Buscar contactos
// @Description  name busca en nombre o apellido; todos los filtros son subcadenas sin distinguir mayúsculas.
// @Tags         contacts
// @Security     ApiToken
// @Produce      json
// @Param        name   query     string  false  "Nombre o apellido"
// @Param        email  query     string  false  "Email"
// @Param        phone  query     string  false  "Teléfono"
// @Param        page   query     int     false  "Página (base 0)"  default(0)
// @Param        size   query     int     false  "Tamaño de página"  default(10)
// @Success      200    {object}  dto.WebResponse{data=[]dto.ContactResponse}
// @Failure      400    {object}  dto.WebResponse
// @Router       /contacts [get]
func (h *ContactHandler) Search(c *fiber.Ctx) error {
	q := newQueryParams(c)
	in := dto.SearchContactRequest{
		Name:        q.String("name"),
		Email:       q.String("email"),
		Phone:       q.String("phone"),
		PageRequest: q.Page(),
	}
	if err := q.Err(); err != nil {
		return err
	}
	out, err := h.uc.Search(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Data: out.Items, Paging: &out.Paging})
}
