package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// OrderAddressDTO dirección de envío del pedido.
type OrderAddressDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
}

// CreateOrderItem línea pedida; el precio se calcula en el servidor.
type CreateOrderItem struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id,omitempty"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest entrada del checkout. Sin Items se usa el carrito del cliente;
// con AddressID se usa una dirección guardada en lugar de ShippingAddress.
type CreateOrderRequest struct {
	ShippingAddress *OrderAddressDTO  `json:"shipping_address"`
	AddressID       string            `json:"address_id"`
	Items           []CreateOrderItem `json:"items"`
	PaymentMethod   string            `json:"payment_method"`
	CustomerNote    string            `json:"customer_note"`
}

// OrderItemResponse línea de pedido.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	VariantID   string          `json:"variant_id,omitempty"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Total       decimal.Decimal `json:"total"`
	Attributes  json.RawMessage `json:"attributes,omitempty"`
}

// OrderNoteResponse nota del pedido.
type OrderNoteResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	AddedBy   string    `json:"added_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID            string              `json:"id"`
	OrderNumber   string              `json:"order_number"`
	OrderDate     time.Time           `json:"order_date"`
	Status        string              `json:"status"`
	CustomerEmail string              `json:"customer_email"`
	CustomerNote  string              `json:"customer_note,omitempty"`
	Shipping      OrderAddressDTO     `json:"shipping"`
	Billing       OrderAddressDTO     `json:"billing"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	ShippingTotal decimal.Decimal     `json:"shipping_total"`
	Total         decimal.Decimal     `json:"total"`
	PaymentMethod string              `json:"payment_method"`
	Currency      string              `json:"currency"`
	Items         []OrderItemResponse `json:"items,omitempty"`
	Notes         []OrderNoteResponse `json:"notes,omitempty"`
}
