package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/contacts-api/internal/application/dto"
	"github.com/jhoicas/contacts-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     ApiToken
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ProductRequest  true  "Datos del producto"
// @Success      200   {object}  dto.WebResponse{data=dto.ProductResponse}
// @Failure      400   {object}  dto.WebResponse
// @Failure      404   {object}  dto.WebResponse  "categoría inexistente"
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Messages: "producto creado", Data: out})
}

// Get godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     ApiToken
// @Produce      json
// @Param        productId  path      string  true  "ID del producto"
// @Success      200        {object}  dto.WebResponse{data=dto.ProductResponse}
// @Failure      404        {object}  dto.WebResponse
// @Router       /products/{productId} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("productId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Data: out})
}

// Update godoc
// @Summary      Reemplazar producto
// @Tags         products
// @Security     ApiToken
// @Accept       json
// @Produce      json
// @Param        productId  path      string              true  "ID del producto"
// @Param        body       body      dto.ProductRequest  true  "Datos del producto"
// @Success      200        {object}  dto.WebResponse{data=dto.ProductResponse}
// @Failure      400        {object}  dto.WebResponse
// @Failure      404        {object}  dto.WebResponse
// @Router       /products/{productId} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("productId"), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Messages: "producto actualizado", Data: out})
}

// Delete godoc
// @Summary      Borrar producto
// @Tags         products
// @Security     ApiToken
// @Produce      json
// @Param        productId  path      string  true  "ID del producto"
// @Success      200        {object}  dto.WebResponse
// @Failure      404        {object}  dto.WebResponse
// @Router       /products/{productId} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("productId")); err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Messages: "producto eliminado"})
}

// Search godoc
// @Summary      Buscar productos
// @Description  name es subcadena sin distinguir mayúsculas; priceBuy, priceSell y stock son cotas inferiores inclusivas.
// @Tags         products
// @Security     ApiToken
// @Produce      json
// @Param        name       query     string  false  "Nombre"
// @Param        priceBuy   query     number  false  "Precio de compra mínimo"
// @Param        priceSell  query     number  false  "Precio de venta mínimo"
// @Param        stock      query     int     false  "Stock mínimo"
// @Param        page       query     int     false  "Página (base 0)"  default(0)
// @Param        size       query     int     false  "Tamaño de página"  default(10)
// @Success      200        {object}  dto.WebResponse{data=[]dto.ProductResponse}
// @Failure      400        {object}  dto.WebResponse
// @Router       /products [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	q := newQueryParams(c)
	in := dto.SearchProductRequest{
		Name:        q.String("name"),
		PriceBuy:    q.Decimal("priceBuy"),
		PriceSell:   q.Decimal("priceSell"),
		Stock:       q.Int("stock"),
		PageRequest: q.Page(),
	}
	if err := q.Err(); err != nil {
		return err
	}
	out, err := h.uc.Search(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.WebResponse{Data: out.Items, Paging: &out.Paging})
}
