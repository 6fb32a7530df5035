// Package memory implementa los puertos de persistencia en memoria del proceso.
// Se usa con STORAGE_DRIVER=memory (demos locales) y en los tests HTTP.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/contacts-api/internal/application/ports"
	"github.com/jhoicas/contacts-api/internal/domain/entity"
	"github.com/jhoicas/contacts-api/internal/domain/repository"
)

var errReadOnly = errors.New("memory: escritura en transacción de solo lectura")

// state tablas del almacén. Las entidades se guardan por valor para que nadie fuera
// de una transacción comprometida pueda mutarlas.
type state struct {
	users      map[string]entity.User
	contacts   map[string]entity.Contact
	addresses  map[string]entity.Address
	categories map[string]entity.Category
	products   map[string]entity.Product
}

func newState() *state {
	return &state{
		users:      map[string]entity.User{},
		contacts:   map[string]entity.Contact{},
		addresses:  map[string]entity.Address{},
		categories: map[string]entity.Category{},
		products:   map[string]entity.Product{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.contacts {
		c.contacts[k] = v
	}
	for k, v := range s.addresses {
		c.addresses[k] = v
	}
	for k, v := range s.categories {
		c.categories[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	return c
}

// Store almacén en memoria con transacciones serializables: Run trabaja sobre una copia
// bajo el lock de escritura y la publica solo si fn no devuelve error.
type Store struct {
	mu   sync.RWMutex
	data *state
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{data: newState()}
}

var _ ports.TxRunner = (*Store)(nil)

// Run ejecuta fn en una transacción de lectura/escritura.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	if err := fn(reposFor(work, false)); err != nil {
		return err
	}
	s.data = work
	return nil
}

// RunReadOnly ejecuta fn sobre el estado actual; cualquier escritura falla.
func (s *Store) RunReadOnly(ctx context.Context, fn func(repos repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(reposFor(s.data, true))
}

func reposFor(st *state, readOnly bool) repository.Repositories {
	tx := &txState{state: st, readOnly: readOnly}
	return repository.Repositories{
		Users:      &UserRepo{tx: tx},
		Contacts:   &ContactRepo{tx: tx},
		Addresses:  &AddressRepo{tx: tx},
		Categories: &CategoryRepo{tx: tx},
		Products:   &ProductRepo{tx: tx},
	}
}

type txState struct {
	*state
	readOnly bool
}

func (t *txState) writable() error {
	if t.readOnly {
		return errReadOnly
	}
	return nil
}
