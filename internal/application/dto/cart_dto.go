package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddToCartRequest entrada para agregar un producto al carrito.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest nueva cantidad; 0 o menos elimina la línea.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// SyncCartRequest items del carrito de invitado a fusionar después del login.
type SyncCartRequest struct {
	Items []AddToCartRequest `json:"items"`
}

// CartItemResponse línea del carrito con snapshot del producto.
type CartItemResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"product_id"`
	VariantID string           `json:"variant_id,omitempty"`
	Quantity  int              `json:"quantity"`
	UnitPrice decimal.Decimal  `json:"unit_price"`
	LineTotal decimal.Decimal  `json:"line_total"`
	AddedAt   time.Time        `json:"added_at"`
	Product   *ProductResponse `json:"product,omitempty"`
	Variant   *VariantResponse `json:"variant,omitempty"`
}

// CartResponse carrito con totales.
type CartResponse struct {
	Items     []CartItemResponse `json:"items"`
	Subtotal  decimal.Decimal    `json:"subtotal"`
	ItemCount int                `json:"item_count"`
}

// WishlistRequest producto (y variante opcional) de la lista de deseos.
type WishlistRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	VariantID string `json:"variant_id"`
}

// WishlistItemResponse item de la lista de deseos.
type WishlistItemResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"product_id"`
	VariantID string           `json:"variant_id,omitempty"`
	AddedAt   time.Time        `json:"added_at"`
	Product   *ProductResponse `json:"product,omitempty"`
}
