package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/contacts-api/internal/application/dto"
	"github.com/jhoicas/contacts-api/internal/application/ports"
	"github.com/jhoicas/contacts-api/internal/domain"
	"github.com/jhoicas/contacts-api/internal/domain/entity"
	"github.com/jhoicas/contacts-api/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías (catálogo global).
type CategoryUseCase struct {
	tx ports.TxRunner
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(tx ports.TxRunner) *CategoryUseCase {
	return &CategoryUseCase{tx: tx}
}

// Create registra una categoría nueva.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	ts := now()
	category := &entity.Category{ID: uuid.New().String(), Name: in.Name, CreatedAt: ts, UpdatedAt: ts}
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		return repos.Categories.Create(ctx, category)
	})
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Get devuelve la categoría por ID.
func (uc *CategoryUseCase) Get(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	var category *entity.Category
	err := uc.tx.RunReadOnly(ctx, func(repos repository.Repositories) error {
		var err error
		category, err = loadCategory(ctx, repos, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List página de categorías en orden de creación.
func (uc *CategoryUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.CategoryListResponse, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	var (
		categories []*entity.Category
		total      int64
	)
	err := uc.tx.RunReadOnly(ctx, func(repos repository.Repositories) error {
		var err error
		categories, total, err = repos.Categories.List(ctx, page.ToRepository())
		return err
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Items: items, Paging: dto.NewPagingResponse(page, total)}, nil
}

// Update renombra la categoría; CreatedAt se conserva.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var category *entity.Category
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		var err error
		if category, err = loadCategory(ctx, repos, id); err != nil {
			return err
		}
		category.Name = in.Name
		category.UpdatedAt = now()
		return repos.Categories.Update(ctx, category)
	})
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete falla con ErrCategoryInUse si algún producto la referencia.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(repos repository.Repositories) error {
		if _, err := loadCategory(ctx, repos, id); err != nil {
			return err
		}
		return repos.Categories.Delete(ctx, id)
	})
}

func loadCategory(ctx context.Context, repos repository.Repositories, id string) (*entity.Category, error) {
	category, err := repos.Categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}
