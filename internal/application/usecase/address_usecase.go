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

// AddressUseCase direcciones de un contacto; la propiedad se verifica a través del contacto.
type AddressUseCase struct {
	tx ports.TxRunner
}

// NewAddressUseCase construye el caso de uso.
func NewAddressUseCase(tx ports.TxRunner) *AddressUseCase {
	return &AddressUseCase{tx: tx}
}

// Create agrega una dirección a un contacto del usuario.
func (uc *AddressUseCase) Create(ctx context.Context, userID, contactID string, in dto.AddressRequest) (*dto.AddressResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var address *entity.Address
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		if _, err := loadContact(ctx, repos, userID, contactID); err != nil {
			return err
		}
		ts := now()
		address = &entity.Address{
			ID:         uuid.New().String(),
			ContactID:  contactID,
			Street:     in.Street,
			City:       in.City,
			Province:   in.Province,
			Country:    in.Country,
			PostalCode: in.PostalCode,
			CreatedAt:  ts,
			UpdatedAt:  ts,
		}
		return repos.Addresses.Create(ctx, address)
	})
	if err != nil {
		return nil, err
	}
	return toAddressResponse(address), nil
}

// Get devuelve una dirección del contacto; contacto ajeno o inexistente es NotFound.
func (uc *AddressUseCase) Get(ctx context.Context, userID, contactID, addressID string) (*dto.AddressResponse, error) {
	var address *entity.Address
	err := uc.tx.RunReadOnly(ctx, func(repos repository.Repositories) error {
		var err error
		address, err = loadAddress(ctx, repos, userID, contactID, addressID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toAddressResponse(address), nil
}

// List todas las direcciones del contacto.
func (uc *AddressUseCase) List(ctx context.Context, userID, contactID string) ([]dto.AddressResponse, error) {
	var addresses []*entity.Address
	err := uc.tx.RunReadOnly(ctx, func(repos repository.Repositories) error {
		if _, err := loadContact(ctx, repos, userID, contactID); err != nil {
			return err
		}
		var err error
		addresses, err = repos.Addresses.ListByContact(ctx, contactID)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, *toAddressResponse(a))
	}
	return out, nil
}

// Update reemplaza los campos de la dirección; CreatedAt se conserva.
func (uc *AddressUseCase) Update(ctx context.Context, userID, contactID, addressID string, in dto.AddressRequest) (*dto.AddressResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var address *entity.Address
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		var err error
		if address, err = loadAddress(ctx, repos, userID, contactID, addressID); err != nil {
			return err
		}
		address.Street = in.Street
		address.City = in.City
		address.Province = in.Province
		address.Country = in.Country
		address.PostalCode = in.PostalCode
		address.UpdatedAt = now()
		return repos.Addresses.Update(ctx, address)
	})
	if err != nil {
		return nil, err
	}
	return toAddressResponse(address), nil
}

// Delete borra la dirección del contacto.
func (uc *AddressUseCase) Delete(ctx context.Context, userID, contactID, addressID string) error {
	return uc.tx.Run(ctx, func(repos repository.Repositories) error {
		if _, err := loadAddress(ctx, repos, userID, contactID, addressID); err != nil {
			return err
		}
		return repos.Addresses.Delete(ctx, addressID)
	})
}

// loadAddress contacto ajeno o inexistente: ErrContactNotFound; dirección ausente: ErrAddressNotFound.
func loadAddress(ctx context.Context, repos repository.Repositories, userID, contactID, addressID string) (*entity.Address, error) {
	if _, err := loadContact(ctx, repos, userID, contactID); err != nil {
		return nil, err
	}
	address, err := repos.Addresses.GetByContactAndID(ctx, contactID, addressID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, domain.ErrAddressNotFound
	}
	return address, nil
}

func toAddressResponse(a *entity.Address) *dto.AddressResponse {
	return &dto.AddressResponse{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
		PostalCode: a.PostalCode,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
