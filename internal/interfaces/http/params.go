package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/contacts-api/internal/application/dto"
	"github.com/jhoicas/contacts-api/internal/application/validation"
)

// queryParams lee parámetros de query opcionales acumulando errores de formato.
type queryParams struct {
	c     *fiber.Ctx
	check *validation.Checker
}

func newQueryParams(c *fiber.Ctx) *queryParams {
	return &queryParams{c: c, check: validation.New()}
}

// String nil si el parámetro falta o está vacío.
func (q *queryParams) String(key string) *string {
	v := strings.TrimSpace(q.c.Query(key))
	if v == "" {
		return nil
	}
	return &v
}

func (q *queryParams) Int(key string) *int {
	raw := q.String(key)
	if raw == nil {
		return nil
	}
	n, err := strconv.Atoi(*raw)
	if err != nil {
		q.check.Add(key, "debe ser un número entero")
		return nil
	}
	return &n
}

func (q *queryParams) Decimal(key string) *decimal.Decimal {
	raw := q.String(key)
	if raw == nil {
		return nil
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil {
		q.check.Add(key, "debe ser un número decimal")
		return nil
	}
	return &d
}

// Page page/size con valores por defecto 0 y 10.
func (q *queryParams) Page() dto.PageRequest {
	return dto.NewPageRequest(q.Int("page"), q.Int("size"))
}

func (q *queryParams) Err() error {
	return q.check.Err()
}

// parseBody decodifica el JSON del cuerpo; un cuerpo mal formado es 400.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return badRequest("cuerpo de la petición inválido")
	}
	return nil
}
