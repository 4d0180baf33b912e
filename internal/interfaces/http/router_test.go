package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/storefront-api/internal/application/auth"
	"github.com/jhoicas/storefront-api/internal/application/cart"
	"github.com/jhoicas/storefront-api/internal/application/catalog"
	"github.com/jhoicas/storefront-api/internal/application/checkout"
	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/application/usecase"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	apphttp "github.com/jhoicas/storefront-api/internal/interfaces/http"
	"github.com/jhoicas/storefront-api/pkg/logger"
)

// ── Fakes ────────────────────────────────────────────────────────────────────

type fakeCategories struct{ rows []entity.Category }

func (f *fakeCategories) ListAll(ctx context.Context) ([]entity.Category, error) { return f.rows, nil }

func (f *fakeCategories) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	for i := range f.rows {
		if f.rows[i].Slug == slug {
			return &f.rows[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCategories) ListTopLevel(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	for _, r := range f.rows {
		if r.ParentID == "" {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeCategories) ListChildren(ctx context.Context, parentID string) ([]entity.Category, error) {
	var out []entity.Category
	for _, r := range f.rows {
		if r.ParentID == parentID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeProducts struct {
	mu         sync.Mutex
	items      []entity.Product
	lastFilter entity.ProductFilter
}

func (f *fakeProducts) List(ctx context.Context, flt entity.ProductFilter) ([]entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = flt
	return f.items, nil
}

func (f *fakeProducts) Count(ctx context.Context, flt entity.ProductFilter) (int, error) {
	return len(f.items), nil
}

func (f *fakeProducts) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	for i := range f.items {
		if f.items[i].Slug == slug {
			p := f.items[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			p := f.items[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) GetVariant(ctx context.Context, productID, variantID string) (*entity.Variant, error) {
	return nil, nil
}

func (f *fakeProducts) ListVariants(ctx context.Context, productID string) ([]entity.Variant, error) {
	return nil, nil
}

func (f *fakeProducts) ListCategories(ctx context.Context, productID string) ([]entity.Category, error) {
	return nil, nil
}

func (f *fakeProducts) Featured(ctx context.Context, limit int) ([]entity.Product, error) {
	return f.items, nil
}

func (f *fakeProducts) filter() entity.ProductFilter {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastFilter
}

type fakeCustomers struct {
	mu   sync.Mutex
	byID map[string]*entity.Customer
}

func (f *fakeCustomers) Create(ctx context.Context, c *entity.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *fakeCustomers) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.byID[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCustomers) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.byID {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomers) UpdateProfile(ctx context.Context, c *entity.Customer) error {
	return f.Create(ctx, c)
}

type fakeShipping struct{}

func (fakeShipping) ZoneIDForCity(ctx context.Context, city string) (string, error) { return "", nil }
func (fakeShipping) GetZone(ctx context.Context, id string) (*entity.ShippingZone, error) {
	return nil, nil
}
func (fakeShipping) ListZones(ctx context.Context) ([]entity.ShippingZone, error) { return nil, nil }
func (fakeShipping) ListRatesByZone(ctx context.Context, zoneID string) ([]entity.ShippingRate, error) {
	return nil, nil
}

type fakeContacts struct{ saved []entity.ContactMessage }

func (f *fakeContacts) Create(ctx context.Context, m *entity.ContactMessage) error {
	f.saved = append(f.saved, *m)
	return nil
}

// ── Harness ──────────────────────────────────────────────────────────────────

type testServer struct {
	app      *fiber.App
	products *fakeProducts
	contacts *fakeContacts
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := logger.Nop()
	categories := &fakeCategories{rows: []entity.Category{
		{ID: "c-men", Name: "Men", Slug: "men"},
		{ID: "c-ladies", Name: "Ladies", Slug: "ladies"},
		{ID: "c-men-denims", Name: "For Men's", Slug: "men-denims", ParentID: "c-men"},
		{ID: "c-ladies-denims", Name: "For Ladies", Slug: "ladies-denims", ParentID: "c-ladies"},
	}}
	price := decimal.NewFromInt(799)
	products := &fakeProducts{items: []entity.Product{
		{ID: "p-1", Name: "Slim Jeans", Slug: "slim-jeans", Price: &price, StockStatus: "instock"},
	}}
	customers := &fakeCustomers{byID: map[string]*entity.Customer{}}
	contacts := &fakeContacts{}

	categorySvc := catalog.NewCategoryService(categories, nil, log)
	productSvc := catalog.NewProductService(products, categorySvc, nil, 12, log)
	shippingSvc := checkout.NewShippingService(fakeShipping{}, decimal.NewFromInt(450), "PHP", log)
	cartSvc := cart.NewCartService(nil, products, nil, log)
	authUC := auth.NewAuthUseCase(customers, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	}).WithBcryptCost(bcrypt.MinCost)

	metrics := apphttp.NewMetrics()
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Use(app, log, metrics, "*")
	apphttp.Router(app, apphttp.RouterDeps{
		Categories: categorySvc,
		Products:   productSvc,
		Cart:       cartSvc,
		Wishlist:   cart.NewWishlistService(nil, products, nil),
		Orders:     checkout.NewOrderService(nil, customers, nil, products, cartSvc, shippingSvc, nil, nil, log),
		Shipping:   shippingSvc,
		AuthUC:     authUC,
		ProfileUC:  usecase.NewProfileUseCase(customers),
		AddressUC:  usecase.NewAddressUseCase(nil, fakeShipping{}, nil),
		ContactUC:  usecase.NewContactUseCase(contacts),
		Metrics:    metrics,
		JWTSecret:  testJWTSecret,
	})
	return &testServer{app: app, products: products, contacts: contacts}
}

func (s *testServer) do(t *testing.T, method, target, body, token string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

// ── Categorías ───────────────────────────────────────────────────────────────

func TestCategories_ResolveSubcategoria(t *testing.T) {
	s := newTestServer(t)
	resp, raw := s.do(t, http.MethodGet, "/api/categories/resolve?category=men&subcategory=denims", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ResolveCategoryResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, []string{"c-men-denims"}, out.CategoryIDs)
	assert.Equal(t, "subcategory", out.Strategy)
	require.Len(t, out.Categories, 1)
	assert.Equal(t, "For Men's", out.Categories[0].Name)
}

func TestCategories_ResolveSinCoincidencias(t *testing.T) {
	s := newTestServer(t)
	resp, raw := s.do(t, http.MethodGet, "/api/categories/resolve?category=pets", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ResolveCategoryResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Empty(t, out.CategoryIDs)
	assert.Equal(t, "none", out.Strategy)
}

func TestCategories_ResolveSinCategory_Retorna400(t *testing.T) {
	s := newTestServer(t)
	resp, _ := s.do(t, http.MethodGet, "/api/categories/resolve", "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCategories_TopYChildren(t *testing.T) {
	s := newTestServer(t)
	resp, raw := s.do(t, http.MethodGet, "/api/categories/top", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var top []dto.CategoryResponse
	require.NoError(t, json.Unmarshal(raw, &top))
	assert.Len(t, top, 2)

	resp, raw = s.do(t, http.MethodGet, "/api/categories/c-men/children", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var children []dto.CategoryResponse
	require.NoError(t, json.Unmarshal(raw, &children))
	require.Len(t, children, 1)
	assert.Equal(t, "c-men-denims", children[0].ID)
}

func TestCategories_SlugInexistente_Retorna404(t *testing.T) {
	s := newTestServer(t)
	resp, raw := s.do(t, http.MethodGet, "/api/categories/no-existe", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(raw), "NOT_FOUND")
}

// ── Productos ────────────────────────────────────────────────────────────────

func TestProducts_ListFiltraPorCategoriaResuelta(t *testing.T) {
	s := newTestServer(t)
	resp, raw := s.do(t, http.MethodGet, "/api/products?category=ladies&subcategory=denims&min_price=100&featured=true", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ProductListResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "subcategory", out.CategoryStrategy)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, 1, out.Page.Total)

	f := s.products.filter()
	assert.Equal(t, []string{"c-ladies-denims"}, f.CategoryIDs)
	require.NotNil(t, f.MinPrice)
	assert.True(t, f.MinPrice.Equal(decimal.NewFromInt(100)))
	require.NotNil(t, f.IsFeatured)
	assert.True(t, *f.IsFeatured)
}

func TestProducts_PrecioInvalido_Retorna400(t *testing.T) {
	s := newTestServer(t)
	resp, raw := s.do(t, http.MethodGet, "/api/products?max_price=caro", "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "INVALID_QUERY")
}

func TestProducts_DetallePorSlugYPorID(t *testing.T) {
	s := newTestServer(t)
	resp, raw := s.do(t, http.MethodGet, "/api/products/slim-jeans", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var p dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &p))
	assert.Equal(t, "p-1", p.ID)

	resp, _ = s.do(t, http.MethodGet, "/api/products/id/p-1", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = s.do(t, http.MethodGet, "/api/products/id/p-x", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ── Auth y rutas protegidas ──────────────────────────────────────────────────

func TestAuth_RegistroLoginYMe(t *testing.T) {
	s := newTestServer(t)
	resp, raw := s.do(t, http.MethodPost, "/api/auth/register",
		`{"email":"Ana@Example.com","password":"secreto1","full_name":"Ana Cruz"}`, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var reg dto.LoginResponse
	require.NoError(t, json.Unmarshal(raw, &reg))
	assert.Equal(t, "ana@example.com", reg.Customer.Email)
	require.NotEmpty(t, reg.Token)

	resp, _ = s.do(t, http.MethodPost, "/api/auth/register",
		`{"email":"ana@example.com","password":"secreto1"}`, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, raw = s.do(t, http.MethodPost, "/api/auth/login",
		`{"email":"ana@example.com","password":"secreto1"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login dto.LoginResponse
	require.NoError(t, json.Unmarshal(raw, &login))

	resp, raw = s.do(t, http.MethodGet, "/api/auth/me", "", login.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me dto.CustomerResponse
	require.NoError(t, json.Unmarshal(raw, &me))
	assert.Equal(t, "Ana Cruz", me.FullName)
}

func TestAuth_LoginPasswordIncorrecto_Retorna401(t *testing.T) {
	s := newTestServer(t)
	resp, _ := s.do(t, http.MethodPost, "/api/auth/register", `{"email":"ana@example.com","password":"secreto1"}`, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = s.do(t, http.MethodPost, "/api/auth/login", `{"email":"ana@example.com","password":"otro-pass"}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_RegistroEmailInvalido_Retorna400(t *testing.T) {
	s := newTestServer(t)
	resp, raw := s.do(t, http.MethodPost, "/api/auth/register", `{"email":"ana","password":"secreto1"}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "VALIDATION")
}

func TestRutasProtegidas_SinToken_Retornan401(t *testing.T) {
	s := newTestServer(t)
	for _, target := range []string{"/api/cart", "/api/wishlist", "/api/orders", "/api/account/profile", "/api/account/addresses"} {
		resp, _ := s.do(t, http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, target)
	}
}

func TestCart_AgregarProductoInexistente_Retorna404(t *testing.T) {
	s := newTestServer(t)
	_, raw := s.do(t, http.MethodPost, "/api/auth/register", `{"email":"ana@example.com","password":"secreto1"}`, "")
	var reg dto.LoginResponse
	require.NoError(t, json.Unmarshal(raw, &reg))

	resp, raw := s.do(t, http.MethodPost, "/api/cart/items", `{"product_id":"p-x","quantity":1}`, reg.Token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(raw), "NOT_FOUND")
}

// ── Envío y contacto ─────────────────────────────────────────────────────────

func TestShipping_QuoteCiudadDesconocida_UsaTarifaPorDefecto(t *testing.T) {
	s := newTestServer(t)
	resp, raw := s.do(t, http.MethodGet, "/api/shipping/quote?city=Atlantis&subtotal=1000", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var q dto.ShippingQuoteResponse
	require.NoError(t, json.Unmarshal(raw, &q))
	assert.True(t, q.DefaultRate)
	assert.True(t, q.Cost.Equal(decimal.NewFromInt(450)))
	assert.Equal(t, "PHP", q.Currency)
}

func TestShipping_SinCiudad_Retorna400(t *testing.T) {
	s := newTestServer(t)
	resp, _ := s.do(t, http.MethodGet, "/api/shipping/rate", "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestShipping_DetectCiudadDesconocida_Retorna404(t *testing.T) {
	s := newTestServer(t)
	resp, _ := s.do(t, http.MethodGet, "/api/shipping/detect?city=Atlantis", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestContact_EnviarFormulario(t *testing.T) {
	s := newTestServer(t)
	resp, _ := s.do(t, http.MethodPost, "/api/contact",
		`{"name":"Ana","email":"ana@example.com","subject":"Talla","message":"¿Tienen talla 32?"}`, "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, s.contacts.saved, 1)
	assert.Equal(t, "Talla", s.contacts.saved[0].Subject)

	resp, _ = s.do(t, http.MethodPost, "/api/contact", `{"name":"Ana","email":"ana","subject":"x","message":"y"}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ── Operación ────────────────────────────────────────────────────────────────

func TestMetrics_ExponeContadorDePeticiones(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/api/categories", "", "")

	resp, raw := s.do(t, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "storefront_http_requests_total")
}

func TestRequestID_CabeceraEnRespuesta(t *testing.T) {
	s := newTestServer(t)
	resp, _ := s.do(t, http.MethodGet, "/api/categories", "", "")
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}
