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

// ContactUseCase CRUD y búsqueda de contactos, siempre acotados al usuario autenticado.
// Un contacto de otro usuario se trata como inexistente.
type ContactUseCase struct {
	tx ports.TxRunner
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(tx ports.TxRunner) *ContactUseCase {
	return &ContactUseCase{tx: tx}
}

// Create crea un contacto del usuario.
func (uc *ContactUseCase) Create(ctx context.Context, userID string, in dto.ContactRequest) (*dto.ContactResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	ts := now()
	contact := &entity.Contact{
		ID:        uuid.New().String(),
		UserID:    userID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		return repos.Contacts.Create(ctx, contact)
	})
	if err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// Get obtiene un contacto del usuario.
func (uc *ContactUseCase) Get(ctx context.Context, userID, id string) (*dto.ContactResponse, error) {
	var contact *entity.Contact
	err := uc.tx.RunReadOnly(ctx, func(repos repository.Repositories) error {
		var err error
		contact, err = loadContact(ctx, repos, userID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// Update reemplaza los campos editables; CreatedAt se conserva.
func (uc *ContactUseCase) Update(ctx context.Context, userID, id string, in dto.ContactRequest) (*dto.ContactResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var contact *entity.Contact
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		var err error
		if contact, err = loadContact(ctx, repos, userID, id); err != nil {
			return err
		}
		contact.FirstName = in.FirstName
		contact.LastName = in.LastName
		contact.Email = in.Email
		contact.Phone = in.Phone
		contact.UpdatedAt = now()
		return repos.Contacts.Update(ctx, contact)
	})
	if err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// Delete borra el contacto (y sus direcciones, por FK en cascada).
func (uc *ContactUseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.tx.Run(ctx, func(repos repository.Repositories) error {
		if _, err := loadContact(ctx, repos, userID, id); err != nil {
			return err
		}
		return repos.Contacts.Delete(ctx, id)
	})
}

// Search filtra los contactos del usuario y devuelve una página.
func (uc *ContactUseCase) Search(ctx context.Context, userID string, in dto.SearchContactRequest) (*dto.ContactListResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	filter := repository.ContactFilter{UserID: userID, Name: in.Name, Email: in.Email, Phone: in.Phone}
	var (
		contacts []*entity.Contact
		total    int64
	)
	err := uc.tx.RunReadOnly(ctx, func(repos repository.Repositories) error {
		var err error
		contacts, total, err = repos.Contacts.Search(ctx, filter, in.ToRepository())
		return err
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		items = append(items, *toContactResponse(c))
	}
	return &dto.ContactListResponse{Items: items, Paging: dto.NewPagingResponse(in.PageRequest, total)}, nil
}

func loadContact(ctx context.Context, repos repository.Repositories, userID, id string) (*entity.Contact, error) {
	contact, err := repos.Contacts.GetByUserAndID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrContactNotFound
	}
	return contact, nil
}

func toContactResponse(c *entity.Contact) *dto.ContactResponse {
	return &dto.ContactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
