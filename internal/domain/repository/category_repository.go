package repository

import (
	"context"

	"github.com/jhoicas/contacts-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context, page PageRequest) ([]*entity.Category, int64, error)
	Update(ctx context.Context, category *entity.Category) error
	// Delete devuelve domain.ErrCategoryInUse si hay productos que la referencian.
	Delete(ctx context.Context, id string) error
}
