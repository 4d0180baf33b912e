package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// AddressTxRunner ejecuta fn dentro de una transacción con el repo de direcciones atado a ella.
type AddressTxRunner interface {
	RunAddresses(ctx context.Context, fn func(addresses repository.AddressRepository) error) error
}

// AddressUseCase libreta de direcciones del cliente. Como máximo una dirección por defecto.
type AddressUseCase struct {
	repo     repository.AddressRepository
	shipping repository.ShippingRepository
	tx       AddressTxRunner
	now      func() time.Time
}

// NewAddressUseCase construye el caso de uso. shipping se usa para asignar la zona de envío por ciudad.
func NewAddressUseCase(repo repository.AddressRepository, shipping repository.ShippingRepository, tx AddressTxRunner) *AddressUseCase {
	return &AddressUseCase{repo: repo, shipping: shipping, tx: tx, now: time.Now}
}

// List direcciones del cliente: la por defecto primero, luego las más recientes.
func (uc *AddressUseCase) List(ctx context.Context, customerID string) ([]dto.AddressResponse, error) {
	list, err := uc.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AddressResponse, 0, len(list))
	for i := range list {
		out = append(out, *dto.FromAddress(&list[i]))
	}
	return out, nil
}

// Get dirección del cliente; nil si no existe.
func (uc *AddressUseCase) Get(ctx context.Context, customerID, id string) (*dto.AddressResponse, error) {
	a, err := uc.repo.GetByID(ctx, customerID, id)
	if err != nil {
		return nil, err
	}
	return dto.FromAddress(a), nil
}

// GetDefault dirección por defecto; si ninguna está marcada, la primera. nil si no hay direcciones.
func (uc *AddressUseCase) GetDefault(ctx context.Context, customerID string) (*dto.AddressResponse, error) {
	list, err := uc.repo.ListByCustomer(ctx, customerID)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	for i := range list {
		if list[i].IsDefault {
			return dto.FromAddress(&list[i]), nil
		}
	}
	return dto.FromAddress(&list[0]), nil
}

// Create guarda una dirección. La primera dirección del cliente queda como por defecto.
func (uc *AddressUseCase) Create(ctx context.Context, customerID string, in dto.AddressRequest) (*dto.AddressResponse, error) {
	a, err := uc.fromRequest(ctx, in)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	a.ID = uuid.New().String()
	a.CustomerID = customerID
	a.IsDefault = in.IsDefault || len(existing) == 0
	a.CreatedAt, a.UpdatedAt = now, now

	if !a.IsDefault {
		if err := uc.repo.Create(ctx, a); err != nil {
			return nil, err
		}
		return dto.FromAddress(a), nil
	}
	err = uc.tx.RunAddresses(ctx, func(addresses repository.AddressRepository) error {
		if err := addresses.ClearDefault(ctx, customerID); err != nil {
			return err
		}
		return addresses.Create(ctx, a)
	})
	if err != nil {
		return nil, err
	}
	return dto.FromAddress(a), nil
}

// Update reemplaza los datos de la dirección. Marcarla por defecto desmarca las demás;
// desmarcar la dirección por defecto actual no está permitido desde aquí.
func (uc *AddressUseCase) Update(ctx context.Context, customerID, id string, in dto.AddressRequest) (*dto.AddressResponse, error) {
	current, err := uc.repo.GetByID(ctx, customerID, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	a, err := uc.fromRequest(ctx, in)
	if err != nil {
		return nil, err
	}
	a.ID = current.ID
	a.CustomerID = customerID
	a.CreatedAt = current.CreatedAt
	a.UpdatedAt = uc.now()
	a.IsDefault = in.IsDefault || current.IsDefault

	if !in.IsDefault || current.IsDefault {
		if err := uc.repo.Update(ctx, a); err != nil {
			return nil, err
		}
		return dto.FromAddress(a), nil
	}
	err = uc.tx.RunAddresses(ctx, func(addresses repository.AddressRepository) error {
		if err := addresses.ClearDefault(ctx, customerID); err != nil {
			return err
		}
		return addresses.Update(ctx, a)
	})
	if err != nil {
		return nil, err
	}
	return dto.FromAddress(a), nil
}

// Delete elimina la dirección.
func (uc *AddressUseCase) Delete(ctx context.Context, customerID, id string) error {
	return uc.repo.Delete(ctx, customerID, id)
}

// SetDefault marca la dirección como por defecto y desmarca las demás en una transacción.
func (uc *AddressUseCase) SetDefault(ctx context.Context, customerID, id string) (*dto.AddressResponse, error) {
	err := uc.tx.RunAddresses(ctx, func(addresses repository.AddressRepository) error {
		a, err := addresses.GetByID(ctx, customerID, id)
		if err != nil {
			return err
		}
		if a == nil {
			return domain.ErrNotFound
		}
		if err := addresses.ClearDefault(ctx, customerID); err != nil {
			return err
		}
		return addresses.SetDefault(ctx, customerID, id)
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(ctx, customerID, id)
}

func (uc *AddressUseCase) fromRequest(ctx context.Context, in dto.AddressRequest) (*entity.Address, error) {
	a := &entity.Address{
		Label:         strings.TrimSpace(in.Label),
		FullName:      strings.TrimSpace(in.FullName),
		Phone:         strings.TrimSpace(in.Phone),
		StreetAddress: strings.TrimSpace(in.StreetAddress),
		Barangay:      strings.TrimSpace(in.Barangay),
		City:          strings.TrimSpace(in.City),
		Province:      strings.TrimSpace(in.Province),
		Region:        strings.TrimSpace(in.Region),
		PostalCode:    strings.TrimSpace(in.PostalCode),
	}
	if a.FullName == "" || a.Phone == "" || a.StreetAddress == "" || a.City == "" {
		return nil, fmt.Errorf("%w: full_name, phone, street_address y city son obligatorios", domain.ErrInvalidInput)
	}
	zoneID, err := uc.shipping.ZoneIDForCity(ctx, a.City)
	if err != nil {
		return nil, err
	}
	a.ZoneID = zoneID
	return a, nil
}
