package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/contacts-api/internal/domain"
	"github.com/jhoicas/contacts-api/internal/domain/entity"
	"github.com/jhoicas/contacts-api/internal/domain/repository"
)

// ContactRepo implementa repository.ContactRepository.
type ContactRepo struct {
	tx *txState
}

var _ repository.ContactRepository = (*ContactRepo)(nil)

// Create inserta el contacto.
func (r *ContactRepo) Create(_ context.Context, c *entity.Contact) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	if _, ok := r.tx.users[c.UserID]; !ok {
		return fmt.Errorf("contact create: usuario %q inexistente", c.UserID)
	}
	r.tx.contacts[c.ID] = *c
	return nil
}

// GetByUserAndID nil, nil si no existe o es de otro usuario.
func (r *ContactRepo) GetByUserAndID(_ context.Context, userID, id string) (*entity.Contact, error) {
	c, ok := r.tx.contacts[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	return &c, nil
}

// Update persiste los cambios; NotFound si la fila no existe.
func (r *ContactRepo) Update(_ context.Context, c *entity.Contact) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	if _, ok := r.tx.contacts[c.ID]; !ok {
		return domain.ErrContactNotFound
	}
	r.tx.contacts[c.ID] = *c
	return nil
}

// Delete borra el contacto y sus direcciones (ON DELETE CASCADE).
func (r *ContactRepo) Delete(_ context.Context, id string) error {
	if err := r.tx.writable(); err != nil {
		return err
	}
	delete(r.tx.contacts, id)
	for aid, a := range r.tx.addresses {
		if a.ContactID == id {
			delete(r.tx.addresses, aid)
		}
	}
	return nil
}

// Search aplica los filtros y devuelve la página y el total.
func (r *ContactRepo) Search(_ context.Context, f repository.ContactFilter, page repository.PageRequest) ([]*entity.Contact, int64, error) {
	var matched []*entity.Contact
	for _, c := range r.tx.contacts {
		if c.UserID != f.UserID {
			continue
		}
		if f.Name != nil && !containsFold(c.FirstName, *f.Name) && !containsFold(c.LastName, *f.Name) {
			continue
		}
		if f.Email != nil && !containsFold(c.Email, *f.Email) {
			continue
		}
		if f.Phone != nil && !containsFold(c.Phone, *f.Phone) {
			continue
		}
		c := c
		matched = append(matched, &c)
	}
	sortStable(matched, func(c *entity.Contact) (time.Time, string) { return c.CreatedAt, c.ID })
	items, total := paginate(matched, page)
	return items, total, nil
}
