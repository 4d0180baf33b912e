package repository

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// ProductRepository puerto de lectura del catálogo de productos publicados.
type ProductRepository interface {
	List(ctx context.Context, f entity.ProductFilter) ([]entity.Product, error)
	Count(ctx context.Context, f entity.ProductFilter) (int, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetVariant(ctx context.Context, productID, variantID string) (*entity.Variant, error)
	ListVariants(ctx context.Context, productID string) ([]entity.Variant, error)
	ListCategories(ctx context.Context, productID string) ([]entity.Category, error)
	Featured(ctx context.Context, limit int) ([]entity.Product, error)
}
