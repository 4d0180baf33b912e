package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/storefront-api/internal/application/auth"
	"github.com/jhoicas/storefront-api/internal/application/cart"
	"github.com/jhoicas/storefront-api/internal/application/catalog"
	"github.com/jhoicas/storefront-api/internal/application/checkout"
	"github.com/jhoicas/storefront-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Categories *catalog.CategoryService
	Products   *catalog.ProductService
	Cart       *cart.CartService
	Wishlist   *cart.WishlistService
	Orders     *checkout.OrderService
	Shipping   *checkout.ShippingService
	AuthUC     *auth.AuthUseCase
	ProfileUC  *usecase.ProfileUseCase
	AddressUC  *usecase.AddressUseCase
	ContactUC  *usecase.ContactUseCase
	Metrics    *Metrics
	JWTSecret  string
}

// Router registra las rutas de la API. Las rutas fijas van antes que las de parámetro.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}

	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	// Categories (público)
	categoryHandler := NewCategoryHandler(deps.Categories)
	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/top", categoryHandler.TopLevel)
	categories.Get("/resolve", categoryHandler.Resolve)
	categories.Get("/:id/children", categoryHandler.Children)
	categories.Get("/:slug", categoryHandler.GetBySlug)

	// Products (público)
	productHandler := NewProductHandler(deps.Products)
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/featured", productHandler.Featured)
	products.Get("/search", productHandler.Search)
	products.Get("/id/:id", productHandler.GetByID)
	products.Get("/:slug", productHandler.GetBySlug)

	// Shipping (público)
	shippingHandler := NewShippingHandler(deps.Shipping)
	shipping := api.Group("/shipping")
	shipping.Get("/rate", shippingHandler.Rate)
	shipping.Get("/quote", shippingHandler.Quote)
	shipping.Get("/detect", shippingHandler.Detect)
	shipping.Get("/zones", shippingHandler.Zones)
	shipping.Get("/zones/:id/rates", shippingHandler.ZoneRates)

	// Contact (público)
	contactHandler := NewContactHandler(deps.ContactUC)
	api.Post("/contact", contactHandler.Submit)

	// Cart (protegido)
	cartHandler := NewCartHandler(deps.Cart)
	cartGroup := api.Group("/cart", requireAuth)
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Delete("/", cartHandler.Clear)
	cartGroup.Post("/items", cartHandler.Add)
	cartGroup.Put("/items/:id", cartHandler.UpdateQuantity)
	cartGroup.Delete("/items/:id", cartHandler.Remove)
	cartGroup.Post("/sync", cartHandler.Sync)

	// Wishlist (protegido)
	wishlistHandler := NewWishlistHandler(deps.Wishlist)
	wishlist := api.Group("/wishlist", requireAuth)
	wishlist.Get("/", wishlistHandler.Get)
	wishlist.Post("/", wishlistHandler.Add)
	wishlist.Delete("/:productId", wishlistHandler.Remove)

	// Orders (protegido)
	orderHandler := NewOrderHandler(deps.Orders)
	orders := api.Group("/orders", requireAuth)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/number/:number", orderHandler.GetByNumber)
	orders.Get("/:id", orderHandler.Get)
	orders.Post("/:id/cancel", orderHandler.Cancel)
	orders.Get("/:id/receipt", orderHandler.Receipt)

	// Account (protegido)
	accountHandler := NewAccountHandler(deps.ProfileUC, deps.AddressUC)
	account := api.Group("/account", requireAuth)
	account.Get("/profile", accountHandler.GetProfile)
	account.Put("/profile", accountHandler.UpdateProfile)
	account.Get("/addresses", accountHandler.ListAddresses)
	account.Post("/addresses", accountHandler.CreateAddress)
	account.Get("/addresses/default", accountHandler.DefaultAddress)
	account.Get("/addresses/:id", accountHandler.GetAddress)
	account.Put("/addresses/:id", accountHandler.UpdateAddress)
	account.Delete("/addresses/:id", accountHandler.DeleteAddress)
	account.Put("/addresses/:id/default", accountHandler.SetDefaultAddress)
}
