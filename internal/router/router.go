package router

import (
	"time"

	"supermarketapi/internal/config"
	"supermarketapi/internal/handler"
	"supermarketapi/internal/middleware"
	"supermarketapi/internal/repository"
	"supermarketapi/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	supermarketRepo := repository.NewSupermarketRepository(db)
	linkRepo := repository.NewSupermarketProductRepository(db)
	priceRepo := repository.NewPriceRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	// Role checks live inside the services; every operation takes a Principal.
	authSvc := service.NewAuthService(userRepo, cfg)
	productSvc := service.NewProductService(productRepo, linkRepo)
	supermarketSvc := service.NewSupermarketService(supermarketRepo, rdb)
	catalogSvc := service.NewCatalogService(supermarketRepo, productRepo, linkRepo, priceRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	supermarketsH := handler.NewSupermarketsHandler(supermarketSvc)
	catalogH := handler.NewSupermarketProductsHandler(catalogSvc)
	priceCheckH := handler.NewPriceCheckHandler(productRepo, linkRepo, priceRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Price check — no auth required
	r.GET("/v1/supermarkets/:supermarket_id/price/:barcode", priceCheckH.GetByBarcode)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		supermarkets := v1.Group("/supermarkets")
		{
			supermarkets.POST("", supermarketsH.Create)
			supermarkets.GET("", supermarketsH.List)
			supermarkets.GET("/:supermarket_id", supermarketsH.Get)
			supermarkets.PUT("/:supermarket_id", supermarketsH.Update)
			supermarkets.PATCH("/:supermarket_id", supermarketsH.Update)
			supermarkets.DELETE("/:supermarket_id", supermarketsH.Delete)

			// One request that registers a product, lists it and opens its
			// price ledger, atomically
			supermarkets.POST("/:supermarket_id/create_and_add", catalogH.CreateAndAdd)

			// Catalog: which products a supermarket sells, and at what price
			catalog := supermarkets.Group("/:supermarket_id/products")
			{
				catalog.GET("", catalogH.List)
				catalog.POST("", catalogH.Link)
				catalog.GET("/:id", catalogH.Get)
				catalog.DELETE("/:id", catalogH.Delete)
				catalog.GET("/:id/prices", catalogH.PriceHistory)
			}
		}

		products := v1.Group("/products")
		{
			products.POST("", productsH.Create)
			products.GET("", productsH.List)
			products.GET("/barcode/:barcode", productsH.GetByBarcode)
			products.GET("/:id", productsH.Get)
			products.DELETE("/:id", productsH.Delete)
		}

		users := v1.Group("/users")
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
