package catalog

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
	"github.com/jhoicas/storefront-api/pkg/logger"
)

const (
	defaultPageSize      = 12
	maxPageSize          = 100
	defaultFeaturedLimit = 8
	defaultSearchLimit   = 20
)

// ProductService casos de uso del catálogo de productos publicados.
type ProductService struct {
	products   repository.ProductRepository
	categories *CategoryService
	images     dto.ImageURLFunc
	pageSize   int
	log        *logger.Logger
}

// NewProductService construye el caso de uso. images resuelve las rutas de imagen (nil = sin cambios).
func NewProductService(products repository.ProductRepository, categories *CategoryService, images dto.ImageURLFunc, pageSize int, log *logger.Logger) *ProductService {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ProductService{products: products, categories: categories, images: images, pageSize: pageSize, log: log}
}

// List listado paginado. category/subcategory pasan por el resolver; sin coincidencias no se filtra por categoría.
// Los productos y el total se consultan en paralelo.
func (s *ProductService) List(ctx context.Context, in dto.ProductListRequest) (*dto.ProductListResponse, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	size := in.PageSize
	if size <= 0 {
		size = s.pageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	filter := entity.ProductFilter{
		CategoryIDs: in.CategoryIDs,
		Search:      strings.TrimSpace(in.Search),
		MinPrice:    in.MinPrice,
		MaxPrice:    in.MaxPrice,
		StockStatus: in.StockStatus,
		IsFeatured:  in.Featured,
		SortBy:      in.Sort,
		Limit:       size,
		Offset:      (page - 1) * size,
	}

	var strategy string
	if in.Category != "" {
		res, err := s.categories.resolve(ctx, in.Category, in.Subcategory)
		if err != nil {
			return nil, err
		}
		strategy = string(res.Strategy)
		filter.CategoryIDs = append(append([]string(nil), filter.CategoryIDs...), res.IDs...)
	}

	var (
		items []entity.Product
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.products.List(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.products.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &dto.ProductListResponse{
		Items:            s.toResponses(items),
		Page:             dto.NewPageResponse(page, size, total),
		CategoryStrategy: strategy,
	}
	return out, nil
}

// Featured productos destacados (8 por defecto).
func (s *ProductService) Featured(ctx context.Context, limit int) ([]dto.ProductResponse, error) {
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}
	items, err := s.products.Featured(ctx, limit)
	if err != nil {
		return nil, err
	}
	return s.toResponses(items), nil
}

// Search búsqueda por nombre/descripción (20 por defecto). Consulta vacía devuelve lista vacía.
func (s *ProductService) Search(ctx context.Context, q string, limit int) ([]dto.ProductResponse, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []dto.ProductResponse{}, nil
	}
	if limit <= 0 || limit > maxPageSize {
		limit = defaultSearchLimit
	}
	items, err := s.products.List(ctx, entity.ProductFilter{Search: q, SortBy: entity.SortByName, Limit: limit})
	if err != nil {
		return nil, err
	}
	return s.toResponses(items), nil
}

// GetBySlug detalle con categorías y variantes; nil si no existe.
func (s *ProductService) GetBySlug(ctx context.Context, productSlug string) (*dto.ProductResponse, error) {
	p, err := s.products.GetBySlug(ctx, productSlug)
	if err != nil || p == nil {
		return nil, err
	}
	return s.withDetails(ctx, p)
}

// GetByID detalle por ID; nil si no existe.
func (s *ProductService) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	return s.withDetails(ctx, p)
}

func (s *ProductService) withDetails(ctx context.Context, p *entity.Product) (*dto.ProductResponse, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		p.Categories, err = s.products.ListCategories(gctx, p.ID)
		return err
	})
	g.Go(func() error {
		var err error
		p.Variants, err = s.products.ListVariants(gctx, p.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dto.FromProduct(p, s.images), nil
}

func (s *ProductService) toResponses(items []entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(items))
	for i := range items {
		out = append(out, *dto.FromProduct(&items[i], s.images))
	}
	return out
}
