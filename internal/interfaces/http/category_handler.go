package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/contacts-api/internal/application/dto"
	"github.com/jhoicas/contacts-api/internal/application/usecase"
)

// CategoryHandler catálogo de categorías y sus productos.
type CategoryHandler struct {
	uc       *usecase.CategoryUseCase
	products *usecase.ProductUseCase
}

// NewCategoryHandler construye el handler de categorías.
func NewCategoryHandler(uc *usecase.CategoryUseCase, products *usecase.ProductUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc, products: products}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     ApiToken
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CategoryRequest  true  "Nombre"
// @Success      200   {object}  dto.WebResponse{data=dto.CategoryResponse}
// @Failure      400   {object}  dto.WebResponse
// @Router       /categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Messages: "categoría creada", Data: out})
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Security     ApiToken
// @Produce      json
// @Param        page  query     int  false  "Página (base 0)"  default(0)
// @Param        size  query     int  false  "Tamaño de página"  default(10)
// @Success      200   {object}  dto.WebResponse{data=[]dto.CategoryResponse}
// @Router       /categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	q := newQueryParams(c)
	page := q.Page()
	if err := q.Err(); err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Data: out.Items, Paging: &out.Paging})
}

// Get godoc
// @Summary      Obtener categoría
// @Tags         categories
// @Security     ApiToken
// @Produce      json
// @Param        categoryId  path      string  true  "ID de la categoría"
// @Success      200         {object}  dto.WebResponse{data=dto.CategoryResponse}
// @Failure      404         {object}  dto.WebResponse
// @Router       /categories/{categoryId} [get]
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("categoryId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Data: out})
}

// Update godoc
// @Summary      Renombrar categoría
// @Tags         categories
// @Security     ApiToken
// @Accept       json
// @Produce      json
// @Param        categoryId  path      string               true  "ID de la categoría"
// @Param        body        body      dto.CategoryRequest  true  "Nombre"
// @Success      200         {object}  dto.WebResponse{data=dto.CategoryResponse}
// @Failure      400         {object}  dto.WebResponse
// @Failure      404         {object}  dto.WebResponse
// @Router       /categories/{categoryId} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("categoryId"), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Messages: "categoría actualizada", Data: out})
}

// Delete godoc
// @Summary      Borrar categoría
// @Description  Falla con 400 si la categoría tiene productos.
// @Tags         categories
// @Security     ApiToken
// @Produce      json
// @Param        categoryId  path      string  true  "ID de la categoría"
// @Success      200         {object}  dto.WebResponse
// @Failure      400         {object}  dto.WebResponse
// @Failure      404         {object}  dto.WebResponse
// @Router       /categories/{categoryId} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("categoryId")); err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Messages: "categoría eliminada"})
}

// ListProducts godoc
// @Summary      Productos de una categoría
// @Tags         categories
// @Security     ApiToken
// @Produce      json
// @Param        categoryId  path      string  true  "ID de la categoría"
// @Success      200         {object}  dto.WebResponse{data=[]dto.ProductResponse}
// @Failure      404         {object}  dto.WebResponse
// @Router       /categories/{categoryId}/products [get]
func (h *CategoryHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.products.ListByCategory(c.UserContext(), c.Params("categoryId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Data: out})
}
