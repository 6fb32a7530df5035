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

var _ repository.ContactRepository = (*ContactRepo)(nil)

const contactColumns = `id, user_id, first_name, last_name, email, phone, created_at, updated_at`

// ContactRepo implementación del puerto ContactRepository sobre PostgreSQL.
type ContactRepo struct {
	q Querier
}

// NewContactRepository construye el adaptador de persistencia para contactos.
func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

// Create inserta el contacto.
func (r *ContactRepo) Create(ctx context.Context, c *entity.Contact) error {
	query := `INSERT INTO contacts (` + contactColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.UserID, c.FirstName, c.LastName, c.Email, c.Phone, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// GetByUserAndID solo devuelve el contacto si pertenece a userID.
func (r *ContactRepo) GetByUserAndID(ctx context.Context, userID, id string) (*entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1 AND user_id = $2`
	c, err := scanContact(r.q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

// Update persiste los cambios; NotFound si la fila no existe.
func (r *ContactRepo) Update(ctx context.Context, c *entity.Contact) error {
	query := `
		UPDATE contacts SET first_name = $2, last_name = $3, email = $4, phone = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

// Delete las direcciones caen por ON DELETE CASCADE.
func (r *ContactRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

// Search devuelve la página pedida y el total de coincidencias.
func (r *ContactRepo) Search(ctx context.Context, f repository.ContactFilter, page repository.PageRequest) ([]*entity.Contact, int64, error) {
	w := contactWhere(f)

	var total int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count contacts: %w", err)
	}

	query := `SELECT ` + contactColumns + ` FROM contacts` + w.sql() + ` ORDER BY created_at, id` + w.pageClause(page)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search contacts: %w", err)
	}
	defer rows.Close()

	out := []*entity.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan contact: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("search contacts: %w", err)
	}
	return out, total, nil
}

func scanContact(row pgx.Row) (*entity.Contact, error) {
	var c entity.Contact
	if err := row.Scan(&c.ID, &c.UserID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
