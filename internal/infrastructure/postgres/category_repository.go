package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `
	c.id::text, c.name, c.slug, c.description, c.image, COALESCE(c.parent_id::text, ''),
	(SELECT COUNT(*) FROM product_categories pc
	   JOIN products p ON p.id = pc.product_id
	  WHERE pc.category_id = c.id AND p.status = 'published')`

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// ListAll devuelve todas las categorías ordenadas por nombre.
func (r *CategoryRepo) ListAll(ctx context.Context) ([]entity.Category, error) {
	return r.list(ctx, `SELECT `+categoryColumns+` FROM categories c ORDER BY c.name, c.id`)
}

// ListTopLevel categorías sin padre.
func (r *CategoryRepo) ListTopLevel(ctx context.Context) ([]entity.Category, error) {
	return r.list(ctx, `SELECT `+categoryColumns+` FROM categories c WHERE c.parent_id IS NULL ORDER BY c.name, c.id`)
}

// ListChildren hijos directos de parentID.
func (r *CategoryRepo) ListChildren(ctx context.Context, parentID string) ([]entity.Category, error) {
	return r.list(ctx, `SELECT `+categoryColumns+` FROM categories c WHERE c.parent_id::text = $1 ORDER BY c.name, c.id`, parentID)
}

// GetBySlug obtiene una categoría por slug (sin distinguir mayúsculas). nil si no existe.
func (r *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories c WHERE lower(c.slug) = lower($1) ORDER BY c.id LIMIT 1`
	c, err := scanCategory(r.q.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by slug: %w", err)
	}
	return c, nil
}

func (r *CategoryRepo) list(ctx context.Context, query string, args ...any) ([]entity.Category, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var out []entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Image, &c.ParentID, &c.ProductCount); err != nil {
		return nil, err
	}
	return &c, nil
}
