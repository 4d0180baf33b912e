// Package catalog casos de uso de navegación de la tienda: categorías, resolución de slugs
// de marketing y listado de productos.
package catalog

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain/catalog"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
	"github.com/jhoicas/storefront-api/pkg/logger"
)

// CategoryService casos de uso de categorías.
type CategoryService struct {
	repo     repository.CategoryRepository
	resolver *catalog.Resolver
	log      *logger.Logger
}

// NewCategoryService construye el caso de uso. resolver nil usa la tabla de sinónimos por defecto.
func NewCategoryService(repo repository.CategoryRepository, resolver *catalog.Resolver, log *logger.Logger) *CategoryService {
	if resolver == nil {
		resolver = catalog.NewResolver(nil)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CategoryService{repo: repo, resolver: resolver, log: log}
}

// List todas las categorías ordenadas por nombre, con conteo de productos.
func (s *CategoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromCategories(rows), nil
}

// ListTopLevel categorías raíz.
func (s *CategoryService) ListTopLevel(ctx context.Context) ([]dto.CategoryResponse, error) {
	rows, err := s.repo.ListTopLevel(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromCategories(rows), nil
}

// ListChildren subcategorías directas de parentID.
func (s *CategoryService) ListChildren(ctx context.Context, parentID string) ([]dto.CategoryResponse, error) {
	rows, err := s.repo.ListChildren(ctx, parentID)
	if err != nil {
		return nil, err
	}
	return dto.FromCategories(rows), nil
}

// GetBySlug categoría por slug; nil si no existe.
func (s *CategoryService) GetBySlug(ctx context.Context, categorySlug string) (*dto.CategoryResponse, error) {
	c, err := s.repo.GetBySlug(ctx, catalog.NormalizeSlug(categorySlug))
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	out := dto.FromCategory(*c)
	return &out, nil
}

// Resolve traduce ?category=&subcategory= a ids de categoría. Las filas se leen en cada llamada.
func (s *CategoryService) Resolve(ctx context.Context, category, subcategory string) (*dto.ResolveCategoryResponse, error) {
	res, rows, err := s.resolveRows(ctx, category, subcategory)
	if err != nil {
		return nil, err
	}
	idx := catalog.NewIndex(rows)
	out := &dto.ResolveCategoryResponse{
		Category:    catalog.NormalizeSlug(category),
		Subcategory: catalog.NormalizeSlug(subcategory),
		Strategy:    string(res.Strategy),
		CategoryIDs: append([]string{}, res.IDs...),
		Categories:  []dto.CategoryResponse{},
	}
	for _, id := range res.IDs {
		if c := idx.ByID(id); c != nil {
			out.Categories = append(out.Categories, dto.FromCategory(*c))
		}
	}
	return out, nil
}

// resolve es el único punto de entrada al resolver para el listado de productos y el endpoint
// de resolución; las entradas se pasan sin limpiar y el resolver aplica NormalizeSlug.
func (s *CategoryService) resolve(ctx context.Context, category, subcategory string) (catalog.Resolution, error) {
	res, _, err := s.resolveRows(ctx, category, subcategory)
	return res, err
}

func (s *CategoryService) resolveRows(ctx context.Context, category, subcategory string) (catalog.Resolution, []entity.Category, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return catalog.Resolution{}, nil, err
	}
	res := s.resolver.ResolveDetailed(category, subcategory, rows)
	if len(res.IDs) == 0 {
		s.log.Debug().Str("category", category).Str("subcategory", subcategory).
			Msg("categoría sin coincidencias: listado sin filtro de categoría")
	}
	return res, rows, nil
}
