package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de Order.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderAddress dirección de envío/facturación copiada en el pedido.
type OrderAddress struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Address1  string
	Address2  string
	City      string
	State     string
	Postcode  string
	Country   string
}

// Order pedido de un cliente. La dirección de facturación es la de envío.
type Order struct {
	ID            string
	OrderNumber   string
	OrderDate     time.Time
	Status        string
	CustomerID    string
	CustomerEmail string
	CustomerNote  string
	Shipping      OrderAddress
	Billing       OrderAddress
	Subtotal      decimal.Decimal
	ShippingTotal decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	Currency      string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items []OrderItem
	Notes []OrderNote
}

// CanCancel solo los pedidos pendientes se pueden cancelar desde la tienda.
func (o *Order) CanCancel() bool {
	return o.Status == OrderStatusPending
}

// OrderItem línea de pedido con snapshot del nombre y precio al momento de la compra.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	VariantID   string
	ProductName string
	SKU         string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
	Total       decimal.Decimal
	Attributes  json.RawMessage
}

// OrderNote nota visible en el detalle del pedido.
type OrderNote struct {
	ID        string
	OrderID   string
	Content   string
	Type      string
	AddedBy   string
	CreatedAt time.Time
}
