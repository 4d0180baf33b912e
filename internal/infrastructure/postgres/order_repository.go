package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `
	id::text, order_number, order_date, status, customer_id::text, customer_email, customer_note,
	shipping_first_name, shipping_last_name, shipping_phone, shipping_address_1, shipping_address_2,
	shipping_city, shipping_state, shipping_postcode, shipping_country,
	billing_first_name, billing_last_name, billing_phone, billing_email, billing_address_1, billing_address_2,
	billing_city, billing_state, billing_postcode, billing_country,
	order_subtotal, shipping_total, order_total, payment_method, order_currency, created_at, updated_at`

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera del pedido. Número repetido devuelve domain.ErrDuplicate.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumnsPlain + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
		        $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33)`
	s, b := o.Shipping, o.Billing
	_, err := r.q.Exec(ctx, query,
		o.ID, o.OrderNumber, o.OrderDate, o.Status, o.CustomerID, o.CustomerEmail, o.CustomerNote,
		s.FirstName, s.LastName, s.Phone, s.Address1, s.Address2, s.City, s.State, s.Postcode, s.Country,
		b.FirstName, b.LastName, b.Phone, b.Email, b.Address1, b.Address2, b.City, b.State, b.Postcode, b.Country,
		o.Subtotal, o.ShippingTotal, o.Total, o.PaymentMethod, o.Currency, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

const orderColumnsPlain = `
	id, order_number, order_date, status, customer_id, customer_email, customer_note,
	shipping_first_name, shipping_last_name, shipping_phone, shipping_address_1, shipping_address_2,
	shipping_city, shipping_state, shipping_postcode, shipping_country,
	billing_first_name, billing_last_name, billing_phone, billing_email, billing_address_1, billing_address_2,
	billing_city, billing_state, billing_postcode, billing_country,
	order_subtotal, shipping_total, order_total, payment_method, order_currency, created_at, updated_at`

// CreateItems inserta las líneas del pedido en un solo batch.
func (r *OrderRepo) CreateItems(ctx context.Context, items []entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, variant_id, product_name, sku, quantity, unit_price, subtotal, total, attributes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, COALESCE($11::jsonb, '{}'::jsonb))`
	for _, it := range items {
		var attrs *string
		if len(it.Attributes) > 0 {
			s := string(it.Attributes)
			attrs = &s
		}
		_, err := r.q.Exec(ctx, query,
			it.ID, it.OrderID, it.ProductID, nullIfEmpty(it.VariantID), it.ProductName, it.SKU,
			it.Quantity, it.UnitPrice, it.Subtotal, it.Total, attrs,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// ListByCustomer pedidos del cliente, los más recientes primero.
func (r *OrderRepo) ListByCustomer(ctx context.Context, customerID string) ([]entity.Order, error) {
	rows, err := r.q.Query(ctx, `SELECT `+orderColumns+` FROM orders WHERE customer_id::text = $1 ORDER BY order_date DESC, id`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var out []entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// GetByID pedido del cliente por ID. nil si no existe o es de otro cliente.
func (r *OrderRepo) GetByID(ctx context.Context, customerID, orderID string) (*entity.Order, error) {
	return r.getOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE id::text = $1 AND customer_id::text = $2`, orderID, customerID)
}

// GetByNumber pedido del cliente por número. nil si no existe.
func (r *OrderRepo) GetByNumber(ctx context.Context, customerID, number string) (*entity.Order, error) {
	return r.getOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_number = $1 AND customer_id::text = $2`, number, customerID)
}

func (r *OrderRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// ListItems líneas de un pedido.
func (r *OrderRepo) ListItems(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	query := `
		SELECT id::text, order_id::text, product_id::text, COALESCE(variant_id::text, ''), product_name, sku,
		       quantity, unit_price, subtotal, total, attributes
		FROM order_items WHERE order_id::text = $1 ORDER BY product_name, id`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var out []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.VariantID, &it.ProductName, &it.SKU,
			&it.Quantity, &it.UnitPrice, &it.Subtotal, &it.Total, &it.Attributes); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// ListNotes notas del pedido en orden cronológico.
func (r *OrderRepo) ListNotes(ctx context.Context, orderID string) ([]entity.OrderNote, error) {
	query := `
		SELECT id::text, order_id::text, note_content, note_type, added_by, created_at
		FROM order_notes WHERE order_id::text = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order notes: %w", err)
	}
	defer rows.Close()
	var out []entity.OrderNote
	for rows.Next() {
		var n entity.OrderNote
		if err := rows.Scan(&n.ID, &n.OrderID, &n.Content, &n.Type, &n.AddedBy, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order note: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// UpdateStatus cambia el estado del pedido.
func (r *OrderRepo) UpdateStatus(ctx context.Context, orderID, status string) error {
	tag, err := r.q.Exec(ctx, `UPDATE orders SET status = $2, updated_at = now() WHERE id::text = $1`, orderID, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddNote agrega una nota al pedido.
func (r *OrderRepo) AddNote(ctx context.Context, n *entity.OrderNote) error {
	query := `
		INSERT INTO order_notes (id, order_id, note_content, note_type, added_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.q.Exec(ctx, query, n.ID, n.OrderID, n.Content, n.Type, n.AddedBy, n.CreatedAt); err != nil {
		return fmt.Errorf("insert order note: %w", err)
	}
	return nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	s, b := &o.Shipping, &o.Billing
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.OrderDate, &o.Status, &o.CustomerID, &o.CustomerEmail, &o.CustomerNote,
		&s.FirstName, &s.LastName, &s.Phone, &s.Address1, &s.Address2, &s.City, &s.State, &s.Postcode, &s.Country,
		&b.FirstName, &b.LastName, &b.Phone, &b.Email, &b.Address1, &b.Address2, &b.City, &b.State, &b.Postcode, &b.Country,
		&o.Subtotal, &o.ShippingTotal, &o.Total, &o.PaymentMethod, &o.Currency, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Email = o.CustomerEmail
	return &o, nil
}
