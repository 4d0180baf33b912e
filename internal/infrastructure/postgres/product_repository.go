package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `
	p.id::text, p.name, p.slug, p.sku, p.description, p.short_description,
	p.price, p.regular_price, p.sale_price, p.stock_quantity, p.stock_status,
	p.image_url, p.gallery_urls, p.is_featured, p.type, p.status,
	p.weight, p.length, p.width, p.height, p.size_chart,
	(SELECT MIN(COALESCE(v.sale_price, v.price)) FROM variants v WHERE v.product_id = p.id),
	(SELECT MAX(COALESCE(v.sale_price, v.price)) FROM variants v WHERE v.product_id = p.id),
	p.created_at, p.updated_at`

const variantColumns = `
	v.id::text, v.product_id::text, v.sku, v.price, v.regular_price, v.sale_price,
	v.compare_at_price, v.stock_quantity, v.stock_status, v.attributes, v.images`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// List productos publicados que cumplen el filtro, paginados con Limit/Offset.
func (r *ProductRepo) List(ctx context.Context, f entity.ProductFilter) ([]entity.Product, error) {
	where, args := productWhere(f)
	query := `SELECT ` + productColumns + ` FROM products p ` + where + ` ` + productOrder(f.SortBy)
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return r.list(ctx, query, args...)
}

// Count total de productos que cumplen el filtro (ignora Limit/Offset).
func (r *ProductRepo) Count(ctx context.Context, f entity.ProductFilter) (int, error) {
	where, args := productWhere(f)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products p `+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// Featured productos destacados más recientes.
func (r *ProductRepo) Featured(ctx context.Context, limit int) ([]entity.Product, error) {
	featured := true
	return r.List(ctx, entity.ProductFilter{IsFeatured: &featured, Limit: limit})
}

// GetBySlug obtiene un producto publicado por slug. nil si no existe.
func (r *ProductRepo) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p WHERE p.slug = $1 AND p.status = 'published'`
	p, err := scanProduct(r.q.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by slug: %w", err)
	}
	return p, nil
}

// GetByID obtiene un producto publicado por ID. nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p WHERE p.id::text = $1 AND p.status = 'published'`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetVariant obtiene una variante de productID. nil si no existe o es de otro producto.
func (r *ProductRepo) GetVariant(ctx context.Context, productID, variantID string) (*entity.Variant, error) {
	query := `SELECT ` + variantColumns + ` FROM variants v WHERE v.id::text = $1 AND v.product_id::text = $2`
	v, err := scanVariant(r.q.QueryRow(ctx, query, variantID, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variant: %w", err)
	}
	return v, nil
}

// ListVariants variantes de un producto.
func (r *ProductRepo) ListVariants(ctx context.Context, productID string) ([]entity.Variant, error) {
	rows, err := r.q.Query(ctx, `SELECT `+variantColumns+` FROM variants v WHERE v.product_id::text = $1 ORDER BY v.sku, v.id`, productID)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()
	var out []entity.Variant
	for rows.Next() {
		v, err := scanVariant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}

// ListCategories categorías asignadas a un producto.
func (r *ProductRepo) ListCategories(ctx context.Context, productID string) ([]entity.Category, error) {
	query := `
		SELECT c.id::text, c.name, c.slug, c.description, c.image, COALESCE(c.parent_id::text, ''), 0
		FROM product_categories pc JOIN categories c ON c.id = pc.category_id
		WHERE pc.product_id::text = $1 ORDER BY c.name`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product categories: %w", err)
	}
	defer rows.Close()
	var out []entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product category: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *ProductRepo) list(ctx context.Context, query string, args ...any) ([]entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var out []entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.SKU, &p.Description, &p.ShortDescription,
		&p.Price, &p.RegularPrice, &p.SalePrice, &p.StockQuantity, &p.StockStatus,
		&p.ImageURL, &p.GalleryURLs, &p.IsFeatured, &p.Type, &p.Status,
		&p.Weight, &p.Length, &p.Width, &p.Height, &p.SizeChart,
		&p.VariantMinPrice, &p.VariantMaxPrice,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanVariant(row pgx.Row) (*entity.Variant, error) {
	var v entity.Variant
	err := row.Scan(
		&v.ID, &v.ProductID, &v.SKU, &v.Price, &v.RegularPrice, &v.SalePrice,
		&v.CompareAtPrice, &v.StockQuantity, &v.StockStatus, &v.Attributes, &v.Images,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
