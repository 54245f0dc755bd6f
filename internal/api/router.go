package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/greenloop/waste-mgmt/internal/api/handler"
	"github.com/greenloop/waste-mgmt/internal/api/middleware"
	"github.com/greenloop/waste-mgmt/internal/core/domain"
	"github.com/greenloop/waste-mgmt/internal/core/service"
	"github.com/greenloop/waste-mgmt/internal/infrastructure/authclient"
	mongodb "github.com/greenloop/waste-mgmt/internal/infrastructure/db/mongo"
	redisdb "github.com/greenloop/waste-mgmt/internal/infrastructure/db/redis"
	healthhandlers "github.com/greenloop/waste-mgmt/internal/infrastructure/http/handlers"
	"github.com/greenloop/waste-mgmt/internal/pkg/config"
)

func newEcho(name string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware(name))

	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// NewAuthRouter builds the Echo instance for the authentication service
// with all routes registered.
func NewAuthRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := newEcho("authsvc", log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	vendorRepo := mongodb.NewVendorRepository(db)
	hasher := service.NewBcryptHasher(0)
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL())
	authService := service.NewAuthService(userRepo, vendorRepo, hasher, tokens, log)

	userHandler := handler.NewUserHandler(authService)
	vendorHandler := handler.NewVendorHandler(authService)
	authMiddleware := middleware.Auth(tokens)

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Auth Service Running"})
	})

	// --- User routes ---
	e.POST("/user/signup", userHandler.Signup)
	e.POST("/user/login", userHandler.Login)
	e.GET("/user/me", userHandler.Me, authMiddleware)
	e.GET("/user/users", userHandler.List, authMiddleware, middleware.RBAC(domain.RoleSupport, domain.RoleSupportUser))
	e.PUT("/user/edit", userHandler.Edit, authMiddleware)

	// --- Vendor routes ---
	e.POST("/vendor/signup", vendorHandler.Signup)
	e.POST("/vendor/login", vendorHandler.Login)
	e.GET("/vendor/me", vendorHandler.Me, authMiddleware)
	e.PUT("/vendor/edit", vendorHandler.Edit, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, nil)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}

// NewOrderRouter builds the Echo instance for the order service. The
// order service never verifies tokens itself: every protected route
// goes through the RemoteAuth relay to the auth service.
func NewOrderRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := newEcho("ordersvc", log)

	// --- Dependencies ---
	orderRepo := mongodb.NewOrderRepository(db)
	orderService := service.NewOrderService(orderRepo, log)
	orderHandler := handler.NewOrderHandler(orderService)

	resolver := authclient.New(cfg.Auth.BaseURL, cfg.Auth.Timeout)
	var cache middleware.IdentityCache
	if rdb != nil {
		cache = redisdb.NewVerdictCache(rdb, cfg.Auth.VerdictCacheTTL)
	}
	remoteAuth := middleware.RemoteAuth(resolver, cache, log)

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Order Service Running"})
	})

	e.GET("/items", orderHandler.Catalog)
	e.POST("/order", orderHandler.Create, remoteAuth)
	e.GET("/orders", orderHandler.List, remoteAuth)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}
