package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var _ repository.WishlistRepository = (*WishlistRepo)(nil)

// WishlistRepo implementación de WishlistRepository sobre PostgreSQL.
type WishlistRepo struct {
	q Querier
}

// NewWishlistRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWishlistRepository(q Querier) *WishlistRepo {
	return &WishlistRepo{q: q}
}

// ListByCustomer items de la lista de deseos, los más recientes primero.
func (r *WishlistRepo) ListByCustomer(ctx context.Context, customerID string) ([]entity.WishlistItem, error) {
	query := `
		SELECT id::text, customer_id::text, product_id::text, COALESCE(variant_id::text, ''), added_at
		FROM wishlist_items WHERE customer_id::text = $1 ORDER BY added_at DESC, id`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	defer rows.Close()
	var out []entity.WishlistItem
	for rows.Next() {
		var it entity.WishlistItem
		if err := rows.Scan(&it.ID, &it.CustomerID, &it.ProductID, &it.VariantID, &it.AddedAt); err != nil {
			return nil, fmt.Errorf("scan wishlist item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// Add agrega el item; si ya existe no hace nada.
func (r *WishlistRepo) Add(ctx context.Context, item *entity.WishlistItem) error {
	query := `
		INSERT INTO wishlist_items (id, customer_id, product_id, variant_id, added_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, item.ID, item.CustomerID, item.ProductID, nullIfEmpty(item.VariantID), item.AddedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("insert wishlist item: %w", err)
	}
	return nil
}

// Remove quita el producto (y variante) de la lista.
func (r *WishlistRepo) Remove(ctx context.Context, customerID, productID, variantID string) error {
	query := `
		DELETE FROM wishlist_items
		WHERE customer_id::text = $1 AND product_id::text = $2 AND variant_id IS NOT DISTINCT FROM $3::uuid`
	if _, err := r.q.Exec(ctx, query, customerID, productID, nullIfEmpty(variantID)); err != nil {
		return fmt.Errorf("delete wishlist item: %w", err)
	}
	return nil
}
