package cart

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// WishlistService casos de uso de la lista de deseos.
type WishlistService struct {
	items    repository.WishlistRepository
	products repository.ProductRepository
	images   dto.ImageURLFunc
	now      func() time.Time
}

// NewWishlistService construye el caso de uso.
func NewWishlistService(items repository.WishlistRepository, products repository.ProductRepository, images dto.ImageURLFunc) *WishlistService {
	return &WishlistService{items: items, products: products, images: images, now: time.Now}
}

// Get items de la lista con el producto cargado; omite productos ya no publicados.
func (s *WishlistService) Get(ctx context.Context, customerID string) ([]dto.WishlistItemResponse, error) {
	items, err := s.items.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WishlistItemResponse, 0, len(items))
	for _, it := range items {
		p, err := s.products.GetByID(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}
		out = append(out, dto.WishlistItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			VariantID: it.VariantID,
			AddedAt:   it.AddedAt,
			Product:   dto.FromProduct(p, s.images),
		})
	}
	return out, nil
}

// Add agrega el producto; si ya está no hace nada.
func (s *WishlistService) Add(ctx context.Context, customerID string, in dto.WishlistRequest) error {
	productID := strings.TrimSpace(in.ProductID)
	if productID == "" {
		return fmt.Errorf("%w: product_id requerido", domain.ErrInvalidInput)
	}
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return s.items.Add(ctx, &entity.WishlistItem{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		ProductID:  productID,
		VariantID:  in.VariantID,
		AddedAt:    s.now(),
	})
}

// Remove quita el producto de la lista.
func (s *WishlistService) Remove(ctx context.Context, customerID string, in dto.WishlistRequest) error {
	if strings.TrimSpace(in.ProductID) == "" {
		return fmt.Errorf("%w: product_id requerido", domain.ErrInvalidInput)
	}
	return s.items.Remove(ctx, customerID, in.ProductID, in.VariantID)
}
