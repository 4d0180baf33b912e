package entity

import "time"

// CartItem línea del carrito de un cliente. Clave natural: (CustomerID, ProductID, VariantID).
type CartItem struct {
	ID         string
	CustomerID string
	ProductID  string
	VariantID  string // vacío si el producto no tiene variantes
	Quantity   int
	AddedAt    time.Time

	Product *Product
	Variant *Variant
}

// WishlistItem producto guardado en la lista de deseos de un cliente.
type WishlistItem struct {
	ID         string
	CustomerID string
	ProductID  string
	VariantID  string
	AddedAt    time.Time

	Product *Product
}
