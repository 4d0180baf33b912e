// Package cart casos de uso del carrito y la lista de deseos del cliente autenticado.
package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/pricing"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
	"github.com/jhoicas/storefront-api/pkg/logger"
)

// CartService casos de uso del carrito.
type CartService struct {
	items    repository.CartRepository
	products repository.ProductRepository
	images   dto.ImageURLFunc
	log      *logger.Logger
	now      func() time.Time
}

// NewCartService construye el caso de uso.
func NewCartService(items repository.CartRepository, products repository.ProductRepository, images dto.ImageURLFunc, log *logger.Logger) *CartService {
	if log == nil {
		log = logger.Nop()
	}
	return &CartService{items: items, products: products, images: images, log: log, now: time.Now}
}

// Get carrito del cliente con precios vigentes y totales.
func (s *CartService) Get(ctx context.Context, customerID string) (*dto.CartResponse, error) {
	items, err := s.Load(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(items), nil
}

// Load líneas del carrito con producto y variante cargados. Usado también por el checkout.
func (s *CartService) Load(ctx context.Context, customerID string) ([]entity.CartItem, error) {
	items, err := s.items.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	products := make(map[string]*entity.Product)
	for i := range items {
		it := &items[i]
		p, ok := products[it.ProductID]
		if !ok {
			if p, err = s.products.GetByID(ctx, it.ProductID); err != nil {
				return nil, err
			}
			products[it.ProductID] = p
		}
		it.Product = p
		if it.VariantID != "" && p != nil {
			if it.Variant, err = s.products.GetVariant(ctx, it.ProductID, it.VariantID); err != nil {
				return nil, err
			}
		}
	}
	return items, nil
}

// Add agrega qty unidades (1 por defecto); si la línea existe suma la cantidad.
func (s *CartService) Add(ctx context.Context, customerID string, in dto.AddToCartRequest) (*dto.CartResponse, error) {
	if err := s.add(ctx, customerID, in); err != nil {
		return nil, err
	}
	return s.Get(ctx, customerID)
}

// UpdateQuantity fija la cantidad de una línea; qty <= 0 la elimina.
func (s *CartService) UpdateQuantity(ctx context.Context, customerID, itemID string, qty int) (*dto.CartResponse, error) {
	item, err := s.items.GetByID(ctx, customerID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if qty <= 0 {
		err = s.items.Delete(ctx, customerID, itemID)
	} else {
		err = s.items.UpdateQuantity(ctx, customerID, itemID, qty)
	}
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, customerID)
}

// Remove elimina una línea.
func (s *CartService) Remove(ctx context.Context, customerID, itemID string) (*dto.CartResponse, error) {
	item, err := s.items.GetByID(ctx, customerID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if err := s.items.Delete(ctx, customerID, itemID); err != nil {
		return nil, err
	}
	return s.Get(ctx, customerID)
}

// Clear vacía el carrito.
func (s *CartService) Clear(ctx context.Context, customerID string) error {
	return s.items.Clear(ctx, customerID)
}

// Sync fusiona el carrito de invitado tras el login. Los items inválidos se omiten.
func (s *CartService) Sync(ctx context.Context, customerID string, in dto.SyncCartRequest) (*dto.CartResponse, error) {
	for _, it := range in.Items {
		err := s.add(ctx, customerID, it)
		if err == nil {
			continue
		}
		if isSkippable(err) {
			s.log.Warn().Err(err).Str("customer_id", customerID).Str("product_id", it.ProductID).
				Msg("item del carrito de invitado omitido")
			continue
		}
		return nil, err
	}
	return s.Get(ctx, customerID)
}

func (s *CartService) add(ctx context.Context, customerID string, in dto.AddToCartRequest) error {
	productID := strings.TrimSpace(in.ProductID)
	if productID == "" {
		return fmt.Errorf("%w: product_id requerido", domain.ErrInvalidInput)
	}
	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	status, stock := p.StockStatus, p.StockQuantity
	if in.VariantID != "" {
		v, err := s.products.GetVariant(ctx, productID, in.VariantID)
		if err != nil {
			return err
		}
		if v == nil {
			return domain.ErrNotFound
		}
		status, stock = v.StockStatus, v.StockQuantity
	}
	if !pricing.InStock(status, stock, qty) {
		return domain.ErrOutOfStock
	}
	return s.items.Upsert(ctx, &entity.CartItem{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		ProductID:  productID,
		VariantID:  in.VariantID,
		Quantity:   qty,
		AddedAt:    s.now(),
	})
}

func (s *CartService) toResponse(items []entity.CartItem) *dto.CartResponse {
	totals := pricing.TotalsOf(items)
	out := &dto.CartResponse{
		Items:     make([]dto.CartItemResponse, 0, len(items)),
		Subtotal:  totals.Subtotal,
		ItemCount: totals.ItemCount,
	}
	for i := range items {
		it := &items[i]
		unit := pricing.UnitPrice(it.Product, it.Variant)
		out.Items = append(out.Items, dto.CartItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			VariantID: it.VariantID,
			Quantity:  it.Quantity,
			UnitPrice: unit,
			LineTotal: pricing.LineTotal(unit, it.Quantity),
			AddedAt:   it.AddedAt,
			Product:   dto.FromProduct(it.Product, s.images),
			Variant:   dto.FromVariant(it.Variant, s.images),
		})
	}
	return out
}

func isSkippable(err error) bool {
	return errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrOutOfStock) || errors.Is(err, domain.ErrInvalidInput)
}
