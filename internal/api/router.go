package api

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/inventory-console/inventory-api/docs"
	"github.com/inventory-console/inventory-api/internal/api/handler"
	"github.com/inventory-console/inventory-api/internal/api/middleware"
	"github.com/inventory-console/inventory-api/internal/core/domain"
	"github.com/inventory-console/inventory-api/internal/core/ports"
	"github.com/inventory-console/inventory-api/internal/core/service"
	"github.com/inventory-console/inventory-api/internal/infrastructure/db/document"
	"github.com/inventory-console/inventory-api/internal/infrastructure/export"
	"github.com/inventory-console/inventory-api/internal/infrastructure/storage"
	"github.com/inventory-console/inventory-api/internal/pkg/config"
)

// httpMetrics registers the request collectors once per process.
var httpMetrics = sync.OnceValue(func() echo.MiddlewareFunc {
	return echoprometheus.NewMiddleware("inventory")
})

// NewRouter builds and returns the Echo instance with all routes registered.
// store holds the whole application state and must already be bootstrapped.
func NewRouter(cfg *config.Config, store ports.DocumentStore, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(log))
	e.Use(echomiddleware.BodyLimit(cfg.Upload.MaxSize))
	e.Use(httpMetrics())

	// --- Dependencies ---
	assets, err := storage.NewLocalAssets(cfg.Upload.Dir, cfg.Upload.URLPrefix)
	if err != nil {
		return nil, fmt.Errorf("upload storage: %w", err)
	}

	credentials := document.NewCredentialStore(store)
	catalog := document.NewCatalogStore(store)
	guard := service.NewTokenGuard(cfg.Auth.JWTSecret)

	authService := service.NewAuthService(credentials, service.AuthConfig{
		JWTSecret:     cfg.Auth.JWTSecret,
		TokenTTL:      cfg.Auth.TokenTTL,
		SeedPasswords: cfg.Auth.SeedPasswords,
	}, log)
	catalogService := service.NewCatalogService(catalog, assets, guard, log)
	orderService := service.NewOrderService(catalog, log)
	exportService := service.NewExportService(catalog, export.NewExcelExporter(), log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	exportHandler := handler.NewExportHandler(exportService)

	requireAuth := middleware.Auth(guard, log)
	adminOnly := middleware.RequireRole(guard, domain.RoleAdmin, log)

	// --- API routes ---
	g := e.Group(strings.TrimSuffix(cfg.APIPrefix, "/"))

	g.POST("/login", authHandler.Login)

	g.GET("/products", productHandler.List)
	g.POST("/products", productHandler.Create, requireAuth, adminOnly)
	g.PUT("/products/:id", productHandler.Update, requireAuth, adminOnly)
	g.DELETE("/products/:id", productHandler.Delete, requireAuth, adminOnly)

	g.POST("/orders", orderHandler.Create)
	g.POST("/export-excel", exportHandler.Export, requireAuth)

	// --- Uploaded images ---
	e.Static(strings.TrimSuffix(cfg.Upload.URLPrefix, "/"), cfg.Upload.Dir)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(map[string]handler.Pinger{
		"store": store,
	})
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
