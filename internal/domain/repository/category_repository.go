package repository

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// CategoryRepository puerto de lectura de categorías (las filas se administran fuera de la tienda).
type CategoryRepository interface {
	// ListAll devuelve todas las filas ordenadas por nombre, con ProductCount de productos publicados.
	ListAll(ctx context.Context) ([]entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	ListTopLevel(ctx context.Context) ([]entity.Category, error)
	ListChildren(ctx context.Context, parentID string) ([]entity.Category, error)
}

// CategorySource fuente de filas para el CLI de desarrollo (API REST o snapshot SQLite).
type CategorySource interface {
	FetchCategories(ctx context.Context) ([]entity.Category, error)
}
