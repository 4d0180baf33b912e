package checkout_test

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var errDB = errors.New("db caída")

// ── Pedidos ──

type fakeOrders struct {
	mu         sync.Mutex
	orders     []entity.Order
	items      map[string][]entity.OrderItem
	notes      map[string][]entity.OrderNote
	duplicates int // cuántos Create seguidos devuelven ErrDuplicate
	creates    int
}

func newFakeOrders() *fakeOrders {
	return &fakeOrders{items: map[string][]entity.OrderItem{}, notes: map[string][]entity.OrderNote{}}
}

func (f *fakeOrders) Create(ctx context.Context, o *entity.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	if f.duplicates > 0 {
		f.duplicates--
		return domain.ErrDuplicate
	}
	f.orders = append(f.orders, *o)
	return nil
}

func (f *fakeOrders) CreateItems(ctx context.Context, items []entity.OrderItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range items {
		f.items[it.OrderID] = append(f.items[it.OrderID], it)
	}
	return nil
}

func (f *fakeOrders) ListByCustomer(ctx context.Context, customerID string) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrders) GetByID(ctx context.Context, customerID, orderID string) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.ID == orderID && o.CustomerID == customerID {
			return &o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrders) GetByNumber(ctx context.Context, customerID, number string) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.OrderNumber == number && o.CustomerID == customerID {
			return &o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrders) ListItems(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	return f.items[orderID], nil
}

func (f *fakeOrders) ListNotes(ctx context.Context, orderID string) ([]entity.OrderNote, error) {
	return f.notes[orderID], nil
}

func (f *fakeOrders) UpdateStatus(ctx context.Context, orderID, status string) error {
	for i := range f.orders {
		if f.orders[i].ID == orderID {
			f.orders[i].Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeOrders) AddNote(ctx context.Context, n *entity.OrderNote) error {
	f.notes[n.OrderID] = append(f.notes[n.OrderID], *n)
	return nil
}

// ── Carrito ──

type fakeCart struct {
	items   []entity.CartItem
	cleared bool
}

func (f *fakeCart) Load(ctx context.Context, customerID string) ([]entity.CartItem, error) {
	return f.items, nil
}

func (f *fakeCart) ListByCustomer(ctx context.Context, customerID string) ([]entity.CartItem, error) {
	return f.items, nil
}
func (f *fakeCart) GetByID(ctx context.Context, customerID, itemID string) (*entity.CartItem, error) {
	return nil, nil
}
func (f *fakeCart) Upsert(ctx context.Context, item *entity.CartItem) error { return nil }
func (f *fakeCart) UpdateQuantity(ctx context.Context, customerID, itemID string, qty int) error {
	return nil
}
func (f *fakeCart) Delete(ctx context.Context, customerID, itemID string) error { return nil }
func (f *fakeCart) Clear(ctx context.Context, customerID string) error {
	f.items = nil
	f.cleared = true
	return nil
}

// ── Transacción ──

type fakeTx struct {
	orders *fakeOrders
	cart   *fakeCart
	runs   int
}

func (f *fakeTx) RunCheckout(ctx context.Context, fn func(repository.OrderRepository, repository.CartRepository) error) error {
	f.runs++
	return fn(f.orders, f.cart)
}

// ── Clientes y direcciones ──

type fakeCustomers struct {
	byID map[string]entity.Customer
}

func (f *fakeCustomers) Create(ctx context.Context, c *entity.Customer) error { return nil }
func (f *fakeCustomers) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}
func (f *fakeCustomers) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return nil, nil
}
func (f *fakeCustomers) UpdateProfile(ctx context.Context, c *entity.Customer) error { return nil }

type fakeAddresses struct {
	list []entity.Address
}

func (f *fakeAddresses) ListByCustomer(ctx context.Context, customerID string) ([]entity.Address, error) {
	return f.list, nil
}
func (f *fakeAddresses) GetByID(ctx context.Context, customerID, id string) (*entity.Address, error) {
	for _, a := range f.list {
		if a.ID == id && a.CustomerID == customerID {
			return &a, nil
		}
	}
	return nil, nil
}
func (f *fakeAddresses) Create(ctx context.Context, a *entity.Address) error         { return nil }
func (f *fakeAddresses) Update(ctx context.Context, a *entity.Address) error         { return nil }
func (f *fakeAddresses) Delete(ctx context.Context, customerID, id string) error     { return nil }
func (f *fakeAddresses) ClearDefault(ctx context.Context, customerID string) error   { return nil }
func (f *fakeAddresses) SetDefault(ctx context.Context, customerID, id string) error { return nil }

// ── Productos ──

type fakeProducts struct {
	products map[string]entity.Product
	variants map[string]entity.Variant
}

func (f *fakeProducts) List(ctx context.Context, _ entity.ProductFilter) ([]entity.Product, error) {
	return nil, nil
}
func (f *fakeProducts) Count(ctx context.Context, _ entity.ProductFilter) (int, error) { return 0, nil }
func (f *fakeProducts) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProducts) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}
func (f *fakeProducts) GetVariant(ctx context.Context, productID, variantID string) (*entity.Variant, error) {
	v, ok := f.variants[variantID]
	if !ok || v.ProductID != productID {
		return nil, nil
	}
	return &v, nil
}
func (f *fakeProducts) ListVariants(ctx context.Context, productID string) ([]entity.Variant, error) {
	return nil, nil
}
func (f *fakeProducts) ListCategories(ctx context.Context, productID string) ([]entity.Category, error) {
	return nil, nil
}
func (f *fakeProducts) Featured(ctx context.Context, limit int) ([]entity.Product, error) {
	return nil, nil
}

// ── Envío ──

type fakeShipping struct {
	cityZone map[string]string
	zones    map[string]entity.ShippingZone
	rates    map[string][]entity.ShippingRate
	err      error
}

func (f *fakeShipping) ZoneIDForCity(ctx context.Context, city string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.cityZone[strings.ToLower(city)], nil
}
func (f *fakeShipping) GetZone(ctx context.Context, id string) (*entity.ShippingZone, error) {
	z, ok := f.zones[id]
	if !ok {
		return nil, nil
	}
	return &z, nil
}
func (f *fakeShipping) ListZones(ctx context.Context) ([]entity.ShippingZone, error) {
	var out []entity.ShippingZone
	for _, z := range f.zones {
		if z.Enabled {
			out = append(out, z)
		}
	}
	return out, nil
}
func (f *fakeShipping) ListRatesByZone(ctx context.Context, zoneID string) ([]entity.ShippingRate, error) {
	return f.rates[zoneID], nil
}

// ── Recibos ──

type fakeReceipts struct {
	last *entity.Order
}

func (f *fakeReceipts) Receipt(o *entity.Order) ([]byte, error) {
	f.last = o
	return []byte("%PDF-1.4 " + o.OrderNumber), nil
}

// ── Fixtures ──

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(n int) *int { return &n }

func shippingFixture() *fakeShipping {
	return &fakeShipping{
		cityZone: map[string]string{"makati": "z-mm", "cebu city": "z-vis", "baguio": "z-off"},
		zones: map[string]entity.ShippingZone{
			"z-mm":  {ID: "z-mm", Name: "Metro Manila", Type: "metro", Enabled: true},
			"z-vis": {ID: "z-vis", Name: "Visayas", Type: "province", Enabled: true},
			"z-off": {ID: "z-off", Name: "Cerrada", Type: "province", Enabled: false},
		},
		rates: map[string][]entity.ShippingRate{
			"z-mm":  {{ID: "r-mm", ZoneID: "z-mm", Rate: decimal.NewFromInt(150), FreeShippingThreshold: dec("3000")}},
			"z-vis": {{ID: "r-vis", ZoneID: "z-vis", Rate: decimal.NewFromInt(300)}},
		},
	}
}

func productsFixture() *fakeProducts {
	return &fakeProducts{
		products: map[string]entity.Product{
			"jeans": {ID: "jeans", Name: "Slim Jeans", SKU: "J-1", Price: dec("999"), SalePrice: dec("799"), StockStatus: entity.StockInStock},
			"brief": {ID: "brief", Name: "Brief", SKU: "B-1", Price: dec("250"), StockStatus: entity.StockInStock},
			"sold":  {ID: "sold", Name: "Agotado", Price: dec("100"), StockStatus: entity.StockOutOfStock},
		},
		variants: map[string]entity.Variant{
			"brief-l": {ID: "brief-l", ProductID: "brief", SKU: "B-1-L", Price: dec("275"), StockQuantity: intPtr(5), StockStatus: entity.StockInStock},
		},
	}
}
