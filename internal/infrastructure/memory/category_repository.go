package memory

import (
	"context"
	"time"

	"github.com/jhoicas/contacts-api/internal/domain"
	"github.com/jhoicas/contacts-api/internal/domain/entity"
	"github.com/jhoicas/contacts-api/internal/domain/repository"
)

// CategoryRepo implementa repository.CategoryRepository.
type CategoryRepo struct {
	tx *txState
}

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// Create inserta la categoría.
func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	if _, ok := r.tx.categories[c.ID]; ok {
		return domain.ErrConflict
	}
	r.tx.categories[c.ID] = *c
	return nil
}

// GetByID nil, nil si no existe.
func (r *CategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := r.tx.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// List página de categorías y total.
func (r *CategoryRepo) List(_ context.Context, page repository.PageRequest) ([]*entity.Category, int64, error) {
	all := make([]*entity.Category, 0, len(r.tx.categories))
	for _, c := range r.tx.categories {
		c := c
		all = append(all, &c)
	}
	sortStable(all, func(c *entity.Category) (time.Time, string) { return c.CreatedAt, c.ID })
	items, total := paginate(all, page)
	return items, total, nil
}

// Update persiste los cambios; NotFound si la fila no existe.
func (r *CategoryRepo) Update(_ context.Context, c *entity.Category) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	if _, ok := r.tx.categories[c.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	r.tx.categories[c.ID] = *c
	return nil
}

// Delete equivale a ON DELETE RESTRICT sobre products.category_id.
func (r *CategoryRepo) Delete(_ context.Context, id string) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	for _, p := range r.tx.products {
		if p.CategoryID == id {
			return domain.ErrCategoryInUse
		}
	}
	delete(r.tx.categories, id)
	return nil
}
