// @title           Storefront API
// @version         1.0
// @description     API de la tienda: catálogo, carrito, checkout y cuenta de clientes.
// @BasePath        /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/storefront-api/docs"
	"github.com/jhoicas/storefront-api/internal/application/auth"
	"github.com/jhoicas/storefront-api/internal/application/cart"
	"github.com/jhoicas/storefront-api/internal/application/catalog"
	"github.com/jhoicas/storefront-api/internal/application/checkout"
	"github.com/jhoicas/storefront-api/internal/application/usecase"
	domcatalog "github.com/jhoicas/storefront-api/internal/domain/catalog"
	infrapdf "github.com/jhoicas/storefront-api/internal/infrastructure/pdf"
	"github.com/jhoicas/storefront-api/internal/infrastructure/postgres"
	"github.com/jhoicas/storefront-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/storefront-api/internal/interfaces/http"
	"github.com/jhoicas/storefront-api/pkg/config"
	"github.com/jhoicas/storefront-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log.Component("postgres"))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	images, err := storage.New(ctx, cfg.Storage, log.Component("storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de imágenes")
	}

	synonyms := domcatalog.DefaultSynonyms()
	if cfg.Catalog.SynonymsPath != "" {
		synonyms, err = domcatalog.LoadSynonymsFile(cfg.Catalog.SynonymsPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Catalog.SynonymsPath).Msg("tabla de sinónimos")
		}
		log.Info().Str("path", cfg.Catalog.SynonymsPath).Msg("tabla de sinónimos cargada")
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	addressRepo := postgres.NewAddressRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	wishlistRepo := postgres.NewWishlistRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	shippingRepo := postgres.NewShippingRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	categorySvc := catalog.NewCategoryService(categoryRepo, domcatalog.NewResolver(synonyms), log.Component("catalog"))
	productSvc := catalog.NewProductService(productRepo, categorySvc, images.ImageURL, cfg.Catalog.PageSize, log.Component("catalog"))
	cartSvc := cart.NewCartService(cartRepo, productRepo, images.ImageURL, log.Component("cart"))
	wishlistSvc := cart.NewWishlistService(wishlistRepo, productRepo, images.ImageURL)
	shippingSvc := checkout.NewShippingService(shippingRepo, cfg.Shipping.DefaultRate, cfg.Shipping.Currency, log.Component("shipping"))

	// Recibo PDF del pedido
	receipts := infrapdf.NewReceiptGenerator(infrapdf.StoreInfo{Name: cfg.App.Name})
	orderSvc := checkout.NewOrderService(
		orderRepo, customerRepo, addressRepo, productRepo,
		cartSvc, shippingSvc, txRunner, receipts, log.Component("checkout"),
	)

	authUC := auth.NewAuthUseCase(customerRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	profileUC := usecase.NewProfileUseCase(customerRepo)
	addressUC := usecase.NewAddressUseCase(addressRepo, shippingRepo, txRunner)
	contactUC := usecase.NewContactUseCase(contactRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	metrics := httpRouter.NewMetrics()
	httpRouter.Use(app, log, metrics, cfg.HTTP.CORSOrigins)

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Categories: categorySvc,
		Products:   productSvc,
		Cart:       cartSvc,
		Wishlist:   wishlistSvc,
		Orders:     orderSvc,
		Shipping:   shippingSvc,
		AuthUC:     authUC,
		ProfileUC:  profileUC,
		AddressUC:  addressUC,
		ContactUC:  contactUC,
		Metrics:    metrics,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
