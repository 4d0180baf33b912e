// Package checkout casos de uso de envío, creación y consulta de pedidos.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/checkout"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/pricing"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
	"github.com/jhoicas/storefront-api/pkg/logger"
)

const (
	defaultPaymentMethod = "cod"
	defaultCountry       = "PH"
	maxNumberAttempts    = 5
)

// OrderService casos de uso del checkout y del historial de pedidos.
type OrderService struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	addresses repository.AddressRepository
	products  repository.ProductRepository
	cart      CartLoader
	shipping  *ShippingService
	tx        TxRunner
	receipts  ReceiptGenerator
	numbers   *checkout.NumberGenerator
	log       *logger.Logger
	now       func() time.Time
}

// NewOrderService construye el caso de uso inyectando sus dependencias.
func NewOrderService(
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	addresses repository.AddressRepository,
	products repository.ProductRepository,
	cart CartLoader,
	shipping *ShippingService,
	tx TxRunner,
	receipts ReceiptGenerator,
	log *logger.Logger,
) *OrderService {
	if log == nil {
		log = logger.Nop()
	}
	return &OrderService{
		orders:    orders,
		customers: customers,
		addresses: addresses,
		products:  products,
		cart:      cart,
		shipping:  shipping,
		tx:        tx,
		receipts:  receipts,
		numbers:   checkout.NewNumberGenerator(),
		log:       log,
		now:       time.Now,
	}
}

// WithNumberGenerator reemplaza el generador de números de pedido (tests).
func (s *OrderService) WithNumberGenerator(g *checkout.NumberGenerator) *OrderService {
	s.numbers = g
	return s
}

// CreateOrder crea el pedido del cliente. Los precios se calculan en el servidor; sin Items se
// usa el carrito. Pedido, líneas y vaciado del carrito se confirman en una sola transacción.
//
// Retorna:
//   - domain.ErrInvalidInput si falta la dirección o una línea es inválida.
//   - domain.ErrEmptyCart    si no hay líneas que pedir.
//   - domain.ErrNotFound     si la dirección guardada o un producto no existen.
//   - domain.ErrOutOfStock   si una línea supera las existencias.
func (s *OrderService) CreateOrder(ctx context.Context, customerID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	// ── 1. Cliente y dirección ────────────────────────────────────────────────
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("checkout: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, domain.ErrUnauthorized
	}
	shipTo, err := s.shippingAddress(ctx, customer, in)
	if err != nil {
		return nil, err
	}

	// ── 2. Líneas con precio del servidor ─────────────────────────────────────
	var lines []entity.OrderItem
	if len(in.Items) > 0 {
		lines, err = s.linesFromRequest(ctx, in.Items)
	} else {
		lines, err = s.linesFromCart(ctx, customerID)
	}
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	// ── 3. Totales ────────────────────────────────────────────────────────────
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Total)
	}
	quote, err := s.shipping.Quote(ctx, shipTo.City, subtotal)
	if err != nil {
		return nil, fmt.Errorf("checkout: costo de envío: %w", err)
	}

	now := s.now()
	payment := strings.TrimSpace(in.PaymentMethod)
	if payment == "" {
		payment = defaultPaymentMethod
	}
	order := &entity.Order{
		OrderDate:     now,
		Status:        entity.OrderStatusPending,
		CustomerID:    customerID,
		CustomerEmail: customer.Email,
		CustomerNote:  strings.TrimSpace(in.CustomerNote),
		Shipping:      shipTo,
		Billing:       shipTo,
		Subtotal:      subtotal,
		ShippingTotal: quote.Cost,
		Total:         subtotal.Add(quote.Cost),
		PaymentMethod: payment,
		Currency:      s.shipping.Currency(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// ── 4. Persistir; el número se regenera si choca con uno existente ────────
	for attempt := 1; ; attempt++ {
		order.ID = uuid.New().String()
		order.OrderNumber = s.numbers.Next()
		for i := range lines {
			lines[i].ID = uuid.New().String()
			lines[i].OrderID = order.ID
		}
		err = s.tx.RunCheckout(ctx, func(orders repository.OrderRepository, cart repository.CartRepository) error {
			if err := orders.Create(ctx, order); err != nil {
				return err
			}
			if err := orders.CreateItems(ctx, lines); err != nil {
				return err
			}
			return cart.Clear(ctx, customerID)
		})
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicate) || attempt >= maxNumberAttempts {
			return nil, fmt.Errorf("checkout: crear pedido: %w", err)
		}
		s.log.Warn().Str("order_number", order.OrderNumber).Int("attempt", attempt).Msg("número de pedido repetido, reintentando")
	}

	s.log.Info().Str("order_id", order.ID).Str("order_number", order.OrderNumber).
		Str("customer_id", customerID).Str("total", order.Total.StringFixed(2)).Msg("pedido creado")
	order.Items = lines
	return dto.FromOrder(order), nil
}

// ListOrders pedidos del cliente, más recientes primero (sin líneas).
func (s *OrderService) ListOrders(ctx context.Context, customerID string) ([]dto.OrderResponse, error) {
	orders, err := s.orders.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *dto.FromOrder(&orders[i]))
	}
	return out, nil
}

// GetOrder pedido con líneas y notas; nil si no existe o es de otro cliente.
func (s *OrderService) GetOrder(ctx context.Context, customerID, orderID string) (*dto.OrderResponse, error) {
	o, err := s.orders.GetByID(ctx, customerID, orderID)
	if err != nil || o == nil {
		return nil, err
	}
	if err := s.withDetails(ctx, o); err != nil {
		return nil, err
	}
	return dto.FromOrder(o), nil
}

// GetOrderByNumber como GetOrder pero buscando por número ORD-...
func (s *OrderService) GetOrderByNumber(ctx context.Context, customerID, number string) (*dto.OrderResponse, error) {
	o, err := s.orders.GetByNumber(ctx, customerID, strings.ToUpper(strings.TrimSpace(number)))
	if err != nil || o == nil {
		return nil, err
	}
	if err := s.withDetails(ctx, o); err != nil {
		return nil, err
	}
	return dto.FromOrder(o), nil
}

// CancelOrder cancela un pedido pendiente y deja una nota en su historial.
func (s *OrderService) CancelOrder(ctx context.Context, customerID, orderID string) (*dto.OrderResponse, error) {
	o, err := s.orders.GetByID(ctx, customerID, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if !o.CanCancel() {
		return nil, domain.ErrOrderNotCancellable
	}
	err = s.tx.RunCheckout(ctx, func(orders repository.OrderRepository, _ repository.CartRepository) error {
		if err := orders.UpdateStatus(ctx, o.ID, entity.OrderStatusCancelled); err != nil {
			return err
		}
		return orders.AddNote(ctx, &entity.OrderNote{
			ID:        uuid.New().String(),
			OrderID:   o.ID,
			Content:   "Pedido cancelado por el cliente.",
			Type:      "system",
			AddedBy:   customerID,
			CreatedAt: s.now(),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("checkout: cancelar pedido: %w", err)
	}
	s.log.Info().Str("order_id", o.ID).Str("customer_id", customerID).Msg("pedido cancelado")
	return s.GetOrder(ctx, customerID, orderID)
}

// ReceiptPDF recibo del pedido en PDF y el nombre de archivo sugerido.
func (s *OrderService) ReceiptPDF(ctx context.Context, customerID, orderID string) ([]byte, string, error) {
	o, err := s.orders.GetByID(ctx, customerID, orderID)
	if err != nil {
		return nil, "", err
	}
	if o == nil {
		return nil, "", domain.ErrNotFound
	}
	if err := s.withDetails(ctx, o); err != nil {
		return nil, "", err
	}
	pdf, err := s.receipts.Receipt(o)
	if err != nil {
		return nil, "", fmt.Errorf("checkout: generar recibo: %w", err)
	}
	return pdf, "receipt-" + o.OrderNumber + ".pdf", nil
}

func (s *OrderService) withDetails(ctx context.Context, o *entity.Order) error {
	items, err := s.orders.ListItems(ctx, o.ID)
	if err != nil {
		return err
	}
	notes, err := s.orders.ListNotes(ctx, o.ID)
	if err != nil {
		return err
	}
	o.Items, o.Notes = items, notes
	return nil
}

func (s *OrderService) shippingAddress(ctx context.Context, customer *entity.Customer, in dto.CreateOrderRequest) (entity.OrderAddress, error) {
	if id := strings.TrimSpace(in.AddressID); id != "" {
		a, err := s.addresses.GetByID(ctx, customer.ID, id)
		if err != nil {
			return entity.OrderAddress{}, err
		}
		if a == nil {
			return entity.OrderAddress{}, domain.ErrNotFound
		}
		first, last := checkout.SplitName(a.FullName)
		return entity.OrderAddress{
			FirstName: first,
			LastName:  last,
			Phone:     a.Phone,
			Email:     customer.Email,
			Address1:  a.StreetAddress,
			Address2:  a.Barangay,
			City:      a.City,
			State:     a.Province,
			Postcode:  a.PostalCode,
			Country:   defaultCountry,
		}, nil
	}
	if in.ShippingAddress == nil {
		return entity.OrderAddress{}, fmt.Errorf("%w: dirección de envío requerida", domain.ErrInvalidInput)
	}
	addr := dto.ToOrderAddress(*in.ShippingAddress)
	addr.FirstName = strings.TrimSpace(addr.FirstName)
	addr.Address1 = strings.TrimSpace(addr.Address1)
	addr.City = strings.TrimSpace(addr.City)
	addr.Phone = strings.TrimSpace(addr.Phone)
	if addr.FirstName == "" || addr.Address1 == "" || addr.City == "" || addr.Phone == "" {
		return entity.OrderAddress{}, fmt.Errorf("%w: nombre, dirección, ciudad y teléfono son obligatorios", domain.ErrInvalidInput)
	}
	if addr.Email == "" {
		addr.Email = customer.Email
	}
	if addr.Country == "" {
		addr.Country = defaultCountry
	}
	return addr, nil
}

func (s *OrderService) linesFromRequest(ctx context.Context, items []dto.CreateOrderItem) ([]entity.OrderItem, error) {
	lines := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.ProductID) == "" || it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: cada línea requiere product_id y cantidad positiva", domain.ErrInvalidInput)
		}
		p, err := s.products.GetByID(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, it.ProductID)
		}
		var v *entity.Variant
		if it.VariantID != "" {
			if v, err = s.products.GetVariant(ctx, it.ProductID, it.VariantID); err != nil {
				return nil, err
			}
			if v == nil {
				return nil, fmt.Errorf("%w: variante %s", domain.ErrNotFound, it.VariantID)
			}
		}
		line, err := orderLine(p, v, it.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (s *OrderService) linesFromCart(ctx context.Context, customerID string) ([]entity.OrderItem, error) {
	items, err := s.cart.Load(ctx, customerID)
	if err != nil {
		return nil, err
	}
	lines := make([]entity.OrderItem, 0, len(items))
	for i := range items {
		it := &items[i]
		if it.Product == nil || (it.VariantID != "" && it.Variant == nil) {
			s.log.Warn().Str("customer_id", customerID).Str("product_id", it.ProductID).
				Msg("línea del carrito sin producto publicado, se omite del pedido")
			continue
		}
		line, err := orderLine(it.Product, it.Variant, it.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// orderLine snapshot de nombre, SKU y precio vigente para una línea del pedido.
func orderLine(p *entity.Product, v *entity.Variant, qty int) (entity.OrderItem, error) {
	status, stock := p.StockStatus, p.StockQuantity
	sku := p.SKU
	line := entity.OrderItem{ProductID: p.ID, ProductName: p.Name, Quantity: qty}
	if v != nil {
		status, stock = v.StockStatus, v.StockQuantity
		if v.SKU != "" {
			sku = v.SKU
		}
		line.VariantID = v.ID
		line.Attributes = v.Attributes
	}
	if !pricing.InStock(status, stock, qty) {
		return entity.OrderItem{}, fmt.Errorf("%w: %s", domain.ErrOutOfStock, p.Name)
	}
	line.SKU = sku
	line.UnitPrice = pricing.UnitPrice(p, v)
	line.Subtotal = pricing.LineTotal(line.UnitPrice, qty)
	line.Total = line.Subtotal
	return line, nil
}
