package repository

import (
	"context"

	"github.com/jhoicas/contacts-api/internal/domain/entity"
)

// ContactRepository define el puerto de persistencia para Contact.
// Toda lectura por ID va acotada al dueño.
type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	GetByUserAndID(ctx context.Context, userID, id string) (*entity.Contact, error)
	Update(ctx context.Context, contact *entity.Contact) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, filter ContactFilter, page PageRequest) ([]*entity.Contact, int64, error)
}
