package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación de CartRepository sobre PostgreSQL (usable con pool o tx).
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// ListByCustomer líneas del carrito, las más recientes primero.
func (r *CartRepo) ListByCustomer(ctx context.Context, customerID string) ([]entity.CartItem, error) {
	query := `
		SELECT id::text, customer_id::text, product_id::text, COALESCE(variant_id::text, ''), quantity, added_at
		FROM cart_items WHERE customer_id::text = $1 ORDER BY added_at DESC, id`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()
	var out []entity.CartItem
	for rows.Next() {
		var it entity.CartItem
		if err := rows.Scan(&it.ID, &it.CustomerID, &it.ProductID, &it.VariantID, &it.Quantity, &it.AddedAt); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// GetByID línea del carrito del cliente. nil si no existe.
func (r *CartRepo) GetByID(ctx context.Context, customerID, itemID string) (*entity.CartItem, error) {
	query := `
		SELECT id::text, customer_id::text, product_id::text, COALESCE(variant_id::text, ''), quantity, added_at
		FROM cart_items WHERE id::text = $1 AND customer_id::text = $2`
	var it entity.CartItem
	err := r.q.QueryRow(ctx, query, itemID, customerID).Scan(
		&it.ID, &it.CustomerID, &it.ProductID, &it.VariantID, &it.Quantity, &it.AddedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart item: %w", err)
	}
	return &it, nil
}

// Upsert suma item.Quantity a la línea existente (cliente, producto, variante) o la crea.
// Deja en item el ID y la cantidad resultante.
func (r *CartRepo) Upsert(ctx context.Context, item *entity.CartItem) error {
	for attempt := 0; attempt < 2; attempt++ {
		update := `
			UPDATE cart_items SET quantity = quantity + $4
			WHERE customer_id::text = $1 AND product_id::text = $2 AND variant_id IS NOT DISTINCT FROM $3::uuid
			RETURNING id::text, quantity`
		err := r.q.QueryRow(ctx, update, item.CustomerID, item.ProductID, nullIfEmpty(item.VariantID), item.Quantity).
			Scan(&item.ID, &item.Quantity)
		if err == nil {
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("update cart item: %w", err)
		}

		insert := `
			INSERT INTO cart_items (id, customer_id, product_id, variant_id, quantity, added_at)
			VALUES ($1, $2, $3, $4, $5, $6)`
		_, err = r.q.Exec(ctx, insert, item.ID, item.CustomerID, item.ProductID, nullIfEmpty(item.VariantID), item.Quantity, item.AddedAt)
		if err == nil {
			return nil
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert cart item: producto o variante inexistente: %w", err)
		}
		// Otra petición insertó la misma línea entre el UPDATE y el INSERT: reintentar el UPDATE.
		if !isUniqueViolation(err) {
			return fmt.Errorf("insert cart item: %w", err)
		}
	}
	return fmt.Errorf("upsert cart item: conflicto persistente")
}

// UpdateQuantity fija la cantidad de una línea.
func (r *CartRepo) UpdateQuantity(ctx context.Context, customerID, itemID string, qty int) error {
	_, err := r.q.Exec(ctx, `UPDATE cart_items SET quantity = $3 WHERE id::text = $1 AND customer_id::text = $2`, itemID, customerID, qty)
	if err != nil {
		return fmt.Errorf("update cart quantity: %w", err)
	}
	return nil
}

// Delete elimina una línea del carrito.
func (r *CartRepo) Delete(ctx context.Context, customerID, itemID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM cart_items WHERE id::text = $1 AND customer_id::text = $2`, itemID, customerID)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// Clear vacía el carrito del cliente.
func (r *CartRepo) Clear(ctx context.Context, customerID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM cart_items WHERE customer_id::text = $1`, customerID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
