package cart_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/application/cart"
	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type memCart struct {
	items []entity.CartItem
}

func (m *memCart) ListByCustomer(ctx context.Context, customerID string) ([]entity.CartItem, error) {
	var out []entity.CartItem
	for _, it := range m.items {
		if it.CustomerID == customerID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memCart) GetByID(ctx context.Context, customerID, itemID string) (*entity.CartItem, error) {
	for i := range m.items {
		if m.items[i].ID == itemID && m.items[i].CustomerID == customerID {
			it := m.items[i]
			return &it, nil
		}
	}
	return nil, nil
}

func (m *memCart) Upsert(ctx context.Context, item *entity.CartItem) error {
	for i := range m.items {
		it := &m.items[i]
		if it.CustomerID == item.CustomerID && it.ProductID == item.ProductID && it.VariantID == item.VariantID {
			it.Quantity += item.Quantity
			item.ID, item.Quantity = it.ID, it.Quantity
			return nil
		}
	}
	m.items = append(m.items, *item)
	return nil
}

func (m *memCart) UpdateQuantity(ctx context.Context, customerID, itemID string, qty int) error {
	for i := range m.items {
		if m.items[i].ID == itemID {
			m.items[i].Quantity = qty
		}
	}
	return nil
}

func (m *memCart) Delete(ctx context.Context, customerID, itemID string) error {
	for i := range m.items {
		if m.items[i].ID == itemID && m.items[i].CustomerID == customerID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memCart) Clear(ctx context.Context, customerID string) error {
	var keep []entity.CartItem
	for _, it := range m.items {
		if it.CustomerID != customerID {
			keep = append(keep, it)
		}
	}
	m.items = keep
	return nil
}

type memWishlist struct {
	items []entity.WishlistItem
}

func (m *memWishlist) ListByCustomer(ctx context.Context, customerID string) ([]entity.WishlistItem, error) {
	return m.items, nil
}

func (m *memWishlist) Add(ctx context.Context, item *entity.WishlistItem) error {
	for _, it := range m.items {
		if it.ProductID == item.ProductID && it.VariantID == item.VariantID {
			return nil
		}
	}
	m.items = append(m.items, *item)
	return nil
}

func (m *memWishlist) Remove(ctx context.Context, customerID, productID, variantID string) error {
	for i, it := range m.items {
		if it.ProductID == productID && it.VariantID == variantID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type memProducts struct {
	products map[string]entity.Product
	variants map[string]entity.Variant
}

func (m *memProducts) List(ctx context.Context, f entity.ProductFilter) ([]entity.Product, error) {
	return nil, nil
}
func (m *memProducts) Count(ctx context.Context, f entity.ProductFilter) (int, error) { return 0, nil }
func (m *memProducts) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return nil, nil
}
func (m *memProducts) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}
func (m *memProducts) GetVariant(ctx context.Context, productID, variantID string) (*entity.Variant, error) {
	v, ok := m.variants[variantID]
	if !ok || v.ProductID != productID {
		return nil, nil
	}
	return &v, nil
}
func (m *memProducts) ListVariants(ctx context.Context, productID string) ([]entity.Variant, error) {
	return nil, nil
}
func (m *memProducts) ListCategories(ctx context.Context, productID string) ([]entity.Category, error) {
	return nil, nil
}
func (m *memProducts) Featured(ctx context.Context, limit int) ([]entity.Product, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const customer = "cust-1"

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(n int) *int { return &n }

func catalogFixture() *memProducts {
	return &memProducts{
		products: map[string]entity.Product{
			"jeans": {ID: "jeans", Name: "Jeans", Price: dec("999"), SalePrice: dec("799"), StockStatus: entity.StockInStock},
			"shirt": {ID: "shirt", Name: "Shirt", Price: dec("450"), StockStatus: entity.StockInStock},
			"sold":  {ID: "sold", Name: "Agotado", Price: dec("100"), StockStatus: entity.StockOutOfStock},
		},
		variants: map[string]entity.Variant{
			"shirt-xl": {ID: "shirt-xl", ProductID: "shirt", Price: dec("500"), StockQuantity: intPtr(2), StockStatus: entity.StockInStock},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Carrito
// ──────────────────────────────────────────────────────────────────────────────

func TestCart_Add_SumaCantidadesYCalculaTotales(t *testing.T) {
	svc := cart.NewCartService(&memCart{}, catalogFixture(), nil, nil)
	ctx := context.Background()

	_, err := svc.Add(ctx, customer, dto.AddToCartRequest{ProductID: "jeans"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, customer, dto.AddToCartRequest{ProductID: "jeans", Quantity: 2})
	require.NoError(t, err)
	got, err := svc.Add(ctx, customer, dto.AddToCartRequest{ProductID: "shirt", VariantID: "shirt-xl"})
	require.NoError(t, err)

	require.Len(t, got.Items, 2)
	assert.Equal(t, 3, got.Items[0].Quantity, "la misma línea acumula cantidades")
	assert.Equal(t, "799", got.Items[0].UnitPrice.String(), "precio de oferta")
	assert.Equal(t, "500", got.Items[1].UnitPrice.String(), "precio de la variante")
	assert.Equal(t, "2897.00", got.Subtotal.StringFixed(2))
	assert.Equal(t, 4, got.ItemCount)
}

func TestCart_Add_Errores(t *testing.T) {
	svc := cart.NewCartService(&memCart{}, catalogFixture(), nil, nil)
	ctx := context.Background()

	_, err := svc.Add(ctx, customer, dto.AddToCartRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Add(ctx, customer, dto.AddToCartRequest{ProductID: "nada"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Add(ctx, customer, dto.AddToCartRequest{ProductID: "shirt", VariantID: "nada"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Add(ctx, customer, dto.AddToCartRequest{ProductID: "sold"})
	assert.ErrorIs(t, err, domain.ErrOutOfStock)

	_, err = svc.Add(ctx, customer, dto.AddToCartRequest{ProductID: "shirt", VariantID: "shirt-xl", Quantity: 3})
	assert.ErrorIs(t, err, domain.ErrOutOfStock, "la variante solo tiene 2 unidades")
}

func TestCart_UpdateQuantity_CeroElimina(t *testing.T) {
	repo := &memCart{}
	svc := cart.NewCartService(repo, catalogFixture(), nil, nil)
	ctx := context.Background()

	got, err := svc.Add(ctx, customer, dto.AddToCartRequest{ProductID: "jeans"})
	require.NoError(t, err)
	itemID := got.Items[0].ID

	got, err = svc.UpdateQuantity(ctx, customer, itemID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, got.ItemCount)

	got, err = svc.UpdateQuantity(ctx, customer, itemID, 0)
	require.NoError(t, err)
	assert.Empty(t, got.Items)
	assert.True(t, got.Subtotal.IsZero())

	_, err = svc.UpdateQuantity(ctx, customer, itemID, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCart_RemoveYClear(t *testing.T) {
	repo := &memCart{}
	svc := cart.NewCartService(repo, catalogFixture(), nil, nil)
	ctx := context.Background()

	got, err := svc.Add(ctx, customer, dto.AddToCartRequest{ProductID: "jeans"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, customer, dto.AddToCartRequest{ProductID: "shirt"})
	require.NoError(t, err)

	got, err = svc.Remove(ctx, customer, got.Items[0].ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)

	_, err = svc.Remove(ctx, customer, "otro")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, svc.Clear(ctx, customer))
	got, err = svc.Get(ctx, customer)
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func TestCart_Sync_OmiteItemsInvalidos(t *testing.T) {
	svc := cart.NewCartService(&memCart{}, catalogFixture(), nil, nil)

	got, err := svc.Sync(context.Background(), customer, dto.SyncCartRequest{Items: []dto.AddToCartRequest{
		{ProductID: "jeans", Quantity: 2},
		{ProductID: "nada"},
		{ProductID: "sold"},
		{ProductID: "shirt"},
	}})
	require.NoError(t, err)
	assert.Len(t, got.Items, 2)
	assert.Equal(t, 3, got.ItemCount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lista de deseos
// ──────────────────────────────────────────────────────────────────────────────

func TestWishlist_AddIdempotenteYRemove(t *testing.T) {
	repo := &memWishlist{}
	svc := cart.NewWishlistService(repo, catalogFixture(), nil)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, customer, dto.WishlistRequest{ProductID: "jeans"}))
	require.NoError(t, svc.Add(ctx, customer, dto.WishlistRequest{ProductID: "jeans"}))

	got, err := svc.Get(ctx, customer)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jeans", got[0].Product.Name)

	assert.ErrorIs(t, svc.Add(ctx, customer, dto.WishlistRequest{ProductID: "nada"}), domain.ErrNotFound)
	assert.ErrorIs(t, svc.Add(ctx, customer, dto.WishlistRequest{}), domain.ErrInvalidInput)

	require.NoError(t, svc.Remove(ctx, customer, dto.WishlistRequest{ProductID: "jeans"}))
	got, err = svc.Get(ctx, customer)
	require.NoError(t, err)
	assert.Empty(t, got)
}
