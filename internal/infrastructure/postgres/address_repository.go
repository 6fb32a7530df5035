package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/contacts-api/internal/domain"
	"github.com/jhoicas/contacts-api/internal/domain/entity"
	"github.com/jhoicas/contacts-api/internal/domain/repository"
)

var _ repository.AddressRepository = (*AddressRepo)(nil)

const addressColumns = `id, contact_id, street, city, province, country, postal_code, created_at, updated_at`

// AddressRepo implementación del puerto AddressRepository sobre PostgreSQL.
type AddressRepo struct {
	q Querier
}

// NewAddressRepository construye el adaptador de persistencia para direcciones.
func NewAddressRepository(q Querier) *AddressRepo {
	return &AddressRepo{q: q}
}

// Create inserta la dirección.
func (r *AddressRepo) Create(ctx context.Context, a *entity.Address) error {
	query := `INSERT INTO addresses (` + addressColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.ContactID, a.Street, a.City, a.Province, a.Country, a.PostalCode, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrContactNotFound
		}
		return fmt.Errorf("insert address: %w", err)
	}
	return nil
}

// GetByContactAndID nil, nil si no existe o es de otro contacto.
func (r *AddressRepo) GetByContactAndID(ctx context.Context, contactID, id string) (*entity.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE id = $1 AND contact_id = $2`
	a, err := scanAddress(r.q.QueryRow(ctx, query, id, contactID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get address: %w", err)
	}
	return a, nil
}

// ListByContact direcciones del contacto en orden estable.
func (r *AddressRepo) ListByContact(ctx context.Context, contactID string) ([]*entity.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE contact_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, contactID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()

	out := []*entity.Address{}
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Update persiste los cambios; NotFound si la fila no existe.
func (r *AddressRepo) Update(ctx context.Context, a *entity.Address) error {
	query := `
		UPDATE addresses SET street = $2, city = $3, province = $4, country = $5, postal_code = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, a.ID, a.Street, a.City, a.Province, a.Country, a.PostalCode, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}

// Delete borra por ID.
func (r *AddressRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	return nil
}

func scanAddress(row pgx.Row) (*entity.Address, error) {
	var a entity.Address
	if err := row.Scan(&a.ID, &a.ContactID, &a.Street, &a.City, &a.Province, &a.Country, &a.PostalCode, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
