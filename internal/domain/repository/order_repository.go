package repository

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// OrderRepository puerto de persistencia de pedidos.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	CreateItems(ctx context.Context, items []entity.OrderItem) error
	ListByCustomer(ctx context.Context, customerID string) ([]entity.Order, error)
	GetByID(ctx context.Context, customerID, orderID string) (*entity.Order, error)
	GetByNumber(ctx context.Context, customerID, number string) (*entity.Order, error)
	ListItems(ctx context.Context, orderID string) ([]entity.OrderItem, error)
	ListNotes(ctx context.Context, orderID string) ([]entity.OrderNote, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
	AddNote(ctx context.Context, note *entity.OrderNote) error
}
