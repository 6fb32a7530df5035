package dto

import (
	"math"

	"github.com/jhoicas/contacts-api/internal/application/validation"
	"github.com/jhoicas/contacts-api/internal/domain/repository"
)

// Paginación por defecto y tope de tamaño de página.
const (
	DefaultPage = 0
	DefaultSize = 10
	MaxSize     = 100
	MaxPage     = math.MaxInt32
)

// WebResponse sobre común de todas las respuestas HTTP.
type WebResponse struct {
	Messages string          `json:"messages,omitempty"`
	Data     any             `json:"data,omitempty"`
	Errors   string          `json:"errors,omitempty"`
	Paging   *PagingResponse `json:"paging,omitempty"`
}

// PagingResponse metadatos de página en búsquedas.
type PagingResponse struct {
	CurrentPage int `json:"currentPage"`
	TotalPage   int `json:"totalPage"`
	Size        int `json:"size"`
}

// PageRequest página base cero solicitada por el cliente.
type PageRequest struct {
	Page int
	Size int
}

// NewPageRequest aplica los valores por defecto a parámetros no enviados.
func NewPageRequest(page, size *int) PageRequest {
	p := PageRequest{Page: DefaultPage, Size: DefaultSize}
	if page != nil {
		p.Page = *page
	}
	if size != nil {
		p.Size = *size
	}
	return p
}

func (p PageRequest) check(c *validation.Checker) {
	if c.MinInt("page", p.Page, 0) {
		c.MaxInt("page", p.Page, MaxPage)
	}
	if c.MinInt("size", p.Size, 1) {
		c.MaxInt("size", p.Size, MaxSize)
	}
}

// Validate comprueba los límites de página.
func (p PageRequest) Validate() error {
	c := validation.New()
	p.check(c)
	return c.Err()
}

// ToRepository convierte al tipo del puerto de persistencia.
func (p PageRequest) ToRepository() repository.PageRequest {
	return repository.PageRequest{Page: p.Page, Size: p.Size}
}

// NewPagingResponse calcula los metadatos a partir del total de filas.
func NewPagingResponse(p PageRequest, total int64) PagingResponse {
	return PagingResponse{
		CurrentPage: p.Page,
		TotalPage:   p.ToRepository().TotalPages(total),
		Size:        p.Size,
	}
}
