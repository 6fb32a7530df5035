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

// ProductUseCase CRUD y búsqueda de productos. La categoría indicada debe existir.
type ProductUseCase struct {
	tx ports.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(tx ports.TxRunner) *ProductUseCase {
	return &ProductUseCase{tx: tx}
}

// Create crea un producto en una categoría existente.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var product *entity.Product
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		category, err := loadCategory(ctx, repos, in.CategoryID)
		if err != nil {
			return err
		}
		ts := now()
		product = &entity.Product{
			ID:          uuid.New().String(),
			CategoryID:  category.ID,
			Name:        in.Name,
			PriceBuy:    *in.PriceBuy,
			PriceSell:   *in.PriceSell,
			Stock:       *in.Stock,
			Description: in.Description,
			CreatedAt:   ts,
			UpdatedAt:   ts,
			Category:    category,
		}
		return repos.Products.Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Get obtiene un producto con su categoría.
func (uc *ProductUseCase) Get(ctx context.Context, id string) (*dto.ProductResponse, error) {
	var product *entity.Product
	err := uc.tx.RunReadOnly(ctx, func(repos repository.Repositories) error {
		var err error
		product, err = loadProduct(ctx, repos, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// ListByCategory productos de una categoría existente.
func (uc *ProductUseCase) ListByCategory(ctx context.Context, categoryID string) ([]dto.ProductResponse, error) {
	var products []*entity.Product
	err := uc.tx.RunReadOnly(ctx, func(repos repository.Repositories) error {
		if _, err := loadCategory(ctx, repos, categoryID); err != nil {
			return err
		}
		var err error
		products, err = repos.Products.ListByCategory(ctx, categoryID)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Update reemplaza los campos editables (incluida la categoría); CreatedAt se conserva.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var product *entity.Product
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		var err error
		if product, err = loadProduct(ctx, repos, id); err != nil {
			return err
		}
		category, err := loadCategory(ctx, repos, in.CategoryID)
		if err != nil {
			return err
		}
		product.CategoryID = category.ID
		product.Category = category
		product.Name = in.Name
		product.PriceBuy = *in.PriceBuy
		product.PriceSell = *in.PriceSell
		product.Stock = *in.Stock
		product.Description = in.Description
		product.UpdatedAt = now()
		return repos.Products.Update(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete borra el producto; NotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(repos repository.Repositories) error {
		if _, err := loadProduct(ctx, repos, id); err != nil {
			return err
		}
		return repos.Products.Delete(ctx, id)
	})
}

// Search nombre por subcadena; precios y stock como cotas inferiores inclusivas.
func (uc *ProductUseCase) Search(ctx context.Context, in dto.SearchProductRequest) (*dto.ProductListResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	filter := repository.ProductFilter{Name: in.Name, PriceBuy: in.PriceBuy, PriceSell: in.PriceSell, Stock: in.Stock}
	var (
		products []*entity.Product
		total    int64
	)
	err := uc.tx.RunReadOnly(ctx, func(repos repository.Repositories) error {
		var err error
		products, total, err = repos.Products.Search(ctx, filter, in.ToRepository())
		return err
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Paging: dto.NewPagingResponse(in.PageRequest, total)}, nil
}

func loadProduct(ctx context.Context, repos repository.Repositories, id string) (*entity.Product, error) {
	product, err := repos.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	out := &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		PriceBuy:    p.PriceBuy,
		PriceSell:   p.PriceSell,
		Stock:       p.Stock,
		Description: p.Description,
		Category:    dto.CategoryResponse{ID: p.CategoryID},
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Category != nil {
		out.Category = *toCategoryResponse(p.Category)
	}
	return out
}
