package repository

import (
	"context"

	"github.com/jhoicas/contacts-api/internal/domain/entity"
)

// AddressRepository define el puerto de persistencia para Address.
type AddressRepository interface {
	Create(ctx context.Context, address *entity.Address) error
	GetByContactAndID(ctx context.Context, contactID, id string) (*entity.Address, error)
	ListByContact(ctx context.Context, contactID string) ([]*entity.Address, error)
	Update(ctx context.Context, address *entity.Address) error
	Delete(ctx context.Context, id string) error
}
