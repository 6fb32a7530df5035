package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/contacts-api/internal/domain"
	"github.com/jhoicas/contacts-api/internal/domain/entity"
	"github.com/jhoicas/contacts-api/internal/domain/repository"
)

// AddressRepo implementa repository.AddressRepository.
type AddressRepo struct {
	tx *txState
}

var _ repository.AddressRepository = (*AddressRepo)(nil)

// Create inserta la dirección.
func (r *AddressRepo) Create(_ context.Context, a *entity.Address) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	if _, ok := r.tx.contacts[a.ContactID]; !ok {
		return fmt.Errorf("address create: contacto %q inexistente", a.ContactID)
	}
	r.tx.addresses[a.ID] = *a
	return nil
}

// GetByContactAndID nil, nil si no existe o es de otro contacto.
func (r *AddressRepo) GetByContactAndID(_ context.Context, contactID, id string) (*entity.Address, error) {
	a, ok := r.tx.addresses[id]
	if !ok || a.ContactID != contactID {
		return nil, nil
	}
	return &a, nil
}

// ListByContact direcciones del contacto en orden estable.
func (r *AddressRepo) ListByContact(_ context.Context, contactID string) ([]*entity.Address, error) {
	out := []*entity.Address{}
	for _, a := range r.tx.addresses {
		if a.ContactID == contactID {
			a := a
			out = append(out, &a)
		}
	}
	sortStable(out, func(a *entity.Address) (time.Time, string) { return a.CreatedAt, a.ID })
	return out, nil
}

// Update persiste los cambios; NotFound si la fila no existe.
func (r *AddressRepo) Update(_ context.Context, a *entity.Address) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	if _, ok := r.tx.addresses[a.ID]; !ok {
		return domain.ErrAddressNotFound
	}
	r.tx.addresses[a.ID] = *a
	return nil
}

// Delete borra por ID.
func (r *AddressRepo) Delete(_ context.Context, id string) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	delete(r.tx.addresses, id)
	return nil
}
