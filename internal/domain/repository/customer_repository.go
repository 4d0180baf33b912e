package repository

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// CustomerRepository puerto de persistencia de cuentas de cliente.
type CustomerRepository interface {
	Create(ctx context.Context, c *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	UpdateProfile(ctx context.Context, c *entity.Customer) error
}

// AddressRepository puerto de persistencia de direcciones guardadas.
type AddressRepository interface {
	// ListByCustomer devuelve primero la dirección por defecto y luego las más recientes.
	ListByCustomer(ctx context.Context, customerID string) ([]entity.Address, error)
	GetByID(ctx context.Context, customerID, id string) (*entity.Address, error)
	Create(ctx context.Context, a *entity.Address) error
	Update(ctx context.Context, a *entity.Address) error
	Delete(ctx context.Context, customerID, id string) error
	// ClearDefault quita la marca por defecto de todas las direcciones del cliente.
	ClearDefault(ctx context.Context, customerID string) error
	SetDefault(ctx context.Context, customerID, id string) error
}
