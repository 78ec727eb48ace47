package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	cartAPI "github.com/ridloal/storefront-bff/internal/cart/api"
	cartDomain "github.com/ridloal/storefront-bff/internal/cart/domain"
	cartService "github.com/ridloal/storefront-bff/internal/cart/service"
	catalogAPI "github.com/ridloal/storefront-bff/internal/catalog/api"
	catalogRepo "github.com/ridloal/storefront-bff/internal/catalog/repository"
	catalogService "github.com/ridloal/storefront-bff/internal/catalog/service"
	headerAPI "github.com/ridloal/storefront-bff/internal/header/api"
	headerService "github.com/ridloal/storefront-bff/internal/header/service"
	"github.com/ridloal/storefront-bff/internal/notification"
	"github.com/ridloal/storefront-bff/internal/platform/config"
	"github.com/ridloal/storefront-bff/internal/platform/database"
	"github.com/ridloal/storefront-bff/internal/platform/logger"
	"github.com/ridloal/storefront-bff/internal/platform/middleware"
	"github.com/ridloal/storefront-bff/internal/session"
)

func main() {
	// .env opsional, untuk development lokal
	_ = godotenv.Load()

	logger.Init("storefront-bff")

	// Load Config
	dbCfg := config.LoadCatalogDBConfig()
	redisCfg := config.LoadRedisConfig()
	cartCfg := config.LoadCartServiceConfig()
	authCfg := config.LoadAuthConfig()
	serverCfg := config.LoadServerConfig("8086")
	catalogRefreshSpec := config.GetEnv("CATALOG_REFRESH_SPEC", "@every 5m")

	logger.Info("Starting Storefront BFF...")

	// Setup Database (catalog, read-only)
	db, err := database.Connect(dbCfg.DSN)
	if err != nil {
		logger.Error("Failed to connect to catalog database", err)
		return
	}
	defer db.Close()

	// Setup Redis (session store)
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})
	defer rdb.Close()
	sessionStore := session.NewRedisStore(rdb, redisCfg.SessionTTL)

	// Setup Dependencies
	productRepository := catalogRepo.NewPostgresProductRepository(db)
	catalogSvc := catalogService.NewCatalogService(productRepository)
	if err := catalogSvc.StartRefreshJob(catalogRefreshSpec); err != nil {
		logger.Error("Failed to start catalog refresh job", err)
		return
	}
	defer catalogSvc.StopRefreshJob()

	cartClient := cartService.NewHTTPCartClient(cartCfg.BaseURL)
	assembler := cartService.NewAssembler(cartDomain.QuantityPassThrough, nil)
	// Notifikasi snackbar sedang dimatikan di storefront, pakai no-op.
	cartSvc := cartService.NewCartService(cartClient, catalogSvc, assembler, notification.NoopNotifier{})
	headerSvc := headerService.NewHeaderService(sessionStore, authCfg.JWTSecret)

	cartHandler := cartAPI.NewCartHandler(cartSvc, sessionStore)
	headerHandler := headerAPI.NewHeaderHandler(headerSvc)
	productHandler := catalogAPI.NewProductHandler(catalogSvc)

	// Setup Gin Router
	router := gin.Default()
	router.RedirectTrailingSlash = false
	router.Use(middleware.RequestID())

	apiV1 := router.Group("/api/v1")
	cartHandler.RegisterRoutes(apiV1)
	headerHandler.RegisterRoutes(apiV1)
	productHandler.RegisterRoutes(apiV1)

	logger.Info("Storefront BFF running on port " + serverCfg.Port)
	logger.Info("Storefront BFF connecting to Cart Service at " + cartCfg.BaseURL)
	if err := router.Run(serverCfg.Port); err != nil {
		logger.Error("Failed to run Storefront BFF server", err)
	}
}
