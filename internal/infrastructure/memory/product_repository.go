package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/contacts-api/internal/domain"
	"github.com/jhoicas/contacts-api/internal/domain/entity"
	"github.com/jhoicas/contacts-api/internal/domain/repository"
)

// ProductRepo implementa repository.ProductRepository.
type ProductRepo struct {
	tx *txState
}

var _ repository.ProductRepository = (*ProductRepo)(nil)

// Create inserta el producto.
func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	if _, ok := r.tx.categories[p.CategoryID]; !ok {
		return fmt.Errorf("product create: %w", domain.ErrCategoryNotFound)
	}
	r.tx.products[p.ID] = detach(p)
	return nil
}

// GetByID nil, nil si no existe.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.tx.products[id]
	if !ok {
		return nil, nil
	}
	return r.withCategory(p), nil
}

// ListByCategory productos de la categoría en orden estable.
func (r *ProductRepo) ListByCategory(_ context.Context, categoryID string) ([]*entity.Product, error) {
	out := []*entity.Product{}
	for _, p := range r.tx.products {
		if p.CategoryID == categoryID {
			out = append(out, r.withCategory(p))
		}
	}
	sortStable(out, func(p *entity.Product) (time.Time, string) { return p.CreatedAt, p.ID })
	return out, nil
}

// Update persiste los cambios; NotFound si la fila no existe.
func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	if _, ok := r.tx.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	if _, ok := r.tx.categories[p.CategoryID]; !ok {
		return fmt.Errorf("product update: %w", domain.ErrCategoryNotFound)
	}
	r.tx.products[p.ID] = detach(p)
	return nil
}

// Delete borra por ID.
func (r *ProductRepo) Delete(_ context.Context, id string) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	delete(r.tx.products, id)
	return nil
}

// Search aplica los filtros y devuelve la página y el total.
func (r *ProductRepo) Search(_ context.Context, f repository.ProductFilter, page repository.PageRequest) ([]*entity.Product, int64, error) {
	var matched []*entity.Product
	for _, p := range r.tx.products {
		if f.Name != nil && !containsFold(p.Name, *f.Name) {
			continue
		}
		if f.PriceBuy != nil && p.PriceBuy.LessThan(*f.PriceBuy) {
			continue
		}
		if f.PriceSell != nil && p.PriceSell.LessThan(*f.PriceSell) {
			continue
		}
		if f.Stock != nil && p.Stock < *f.Stock {
			continue
		}
		matched = append(matched, r.withCategory(p))
	}
	sortStable(matched, func(p *entity.Product) (time.Time, string) { return p.CreatedAt, p.ID })
	items, total := paginate(matched, page)
	return items, total, nil
}

// withCategory copia el producto con su categoría cargada (JOIN).
func (r *ProductRepo) withCategory(p entity.Product) *entity.Product {
	if c, ok := r.tx.categories[p.CategoryID]; ok {
		p.Category = &c
	}
	return &p
}

func detach(p *entity.Product) entity.Product {
	v := *p
	v.Category = nil
	return v
}
