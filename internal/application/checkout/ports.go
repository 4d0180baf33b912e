package checkout

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con los repos de pedidos y carrito atados a ella.
// Si fn devuelve error se hace rollback.
type TxRunner interface {
	RunCheckout(ctx context.Context, fn func(
		orders repository.OrderRepository,
		cart repository.CartRepository,
	) error) error
}

// CartLoader carga las líneas del carrito con producto y variante resueltos.
type CartLoader interface {
	Load(ctx context.Context, customerID string) ([]entity.CartItem, error)
}

// ReceiptGenerator genera el recibo PDF de un pedido con sus líneas cargadas.
type ReceiptGenerator interface {
	Receipt(order *entity.Order) ([]byte, error)
}
