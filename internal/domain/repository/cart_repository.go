package repository

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// CartRepository puerto de persistencia del carrito. Upsert suma cantidades sobre
// la clave (cliente, producto, variante).
type CartRepository interface {
	ListByCustomer(ctx context.Context, customerID string) ([]entity.CartItem, error)
	GetByID(ctx context.Context, customerID, itemID string) (*entity.CartItem, error)
	Upsert(ctx context.Context, item *entity.CartItem) error
	UpdateQuantity(ctx context.Context, customerID, itemID string, qty int) error
	Delete(ctx context.Context, customerID, itemID string) error
	Clear(ctx context.Context, customerID string) error
}

// WishlistRepository puerto de persistencia de la lista de deseos.
type WishlistRepository interface {
	ListByCustomer(ctx context.Context, customerID string) ([]entity.WishlistItem, error)
	// Add no falla si el item ya existe.
	Add(ctx context.Context, item *entity.WishlistItem) error
	Remove(ctx context.Context, customerID, productID, variantID string) error
}
