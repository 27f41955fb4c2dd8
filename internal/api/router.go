package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/shopease/storefront-api/docs"
	"github.com/shopease/storefront-api/internal/api/handler"
	"github.com/shopease/storefront-api/internal/api/middleware"
	"github.com/shopease/storefront-api/internal/api/routes"
	"github.com/shopease/storefront-api/internal/core/domain"
	"github.com/shopease/storefront-api/internal/core/service"
	"github.com/shopease/storefront-api/internal/infrastructure/config"
	mongorepo "github.com/shopease/storefront-api/internal/infrastructure/db/mongo"
	redisstore "github.com/shopease/storefront-api/internal/infrastructure/db/redis"
	"github.com/shopease/storefront-api/internal/infrastructure/queue"
	"github.com/shopease/storefront-api/pkg/logger"
)

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the payment event dispatcher, which the caller must Start.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config) (*echo.Echo, *queue.Dispatcher) {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("shopease"))

	// --- Stores and repositories ---
	userRepo := mongorepo.NewUserRepository(db)
	productRepo := mongorepo.NewProductRepository(db)
	orderRepo := mongorepo.NewOrderRepository(db)
	reviewRepo := mongorepo.NewReviewRepository(db)
	promoRepo := mongorepo.NewPromotionRepository(db)

	sessionStore := redisstore.NewSessionStore(rdb, cfg.SessionTTL, log)
	cartStore := redisstore.NewCartStore(rdb, log)
	wishlistStore := redisstore.NewWishlistStore(rdb)
	dedup := redisstore.NewDedupChecker(rdb)

	// --- Services ---
	sessionService := service.NewSessionService(sessionStore, log)
	authService := service.NewAuthService(userRepo, sessionService, cfg.JWTSecret, cfg.SessionTTL, log)
	productService := service.NewProductService(productRepo, log)
	cartService := service.NewCartService(cartStore, wishlistStore, productRepo, log)
	orderService := service.NewOrderService(orderRepo, cartStore, productRepo, promoRepo, log)
	reviewService := service.NewReviewService(reviewRepo, productRepo)
	promoService := service.NewPromotionService(promoRepo)
	paymentService := service.NewPaymentEventService(orderRepo, dedup, log)

	dispatcher := queue.NewDispatcher(0, paymentService, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	promoHandler := handler.NewPromotionHandler(promoService)
	adminUserHandler := handler.NewAdminUserHandler(authService)
	paymentHandler := handler.NewPaymentEventHandler(dispatcher)
	shellHandler := handler.NewShellHandler()
	healthHandler := handler.NewHealthHandler(db, rdb)

	// --- Middleware instances ---
	session := middleware.Session(cfg.JWTSecret, sessionService)
	auth := middleware.Auth(cfg.JWTSecret, sessionService)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Public API ---
	v1 := e.Group("/v1")
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/products", productHandler.List)
	v1.GET("/products/:id", productHandler.Get)
	v1.GET("/products/:id/reviews", reviewHandler.ListByProduct)
	v1.GET("/categories", productHandler.Categories)
	v1.GET("/promotions", promoHandler.ListActive)

	// --- Authenticated API (any role) ---
	authed := v1.Group("", auth)
	authed.POST("/auth/logout", authHandler.Logout)
	authed.GET("/me", authHandler.Me)
	authed.PUT("/me/profile", authHandler.UpdateProfile)

	// --- Customer API ---
	customer := v1.Group("/customer", auth, middleware.RBAC(domain.RoleCustomer))
	customer.GET("/cart", cartHandler.Get)
	customer.PUT("/cart/items", cartHandler.SetItem)
	customer.DELETE("/cart", cartHandler.Clear)
	customer.GET("/wishlist", cartHandler.Wishlist)
	customer.POST("/wishlist", cartHandler.AddWish)
	customer.DELETE("/wishlist/:product_id", cartHandler.RemoveWish)
	customer.POST("/orders", orderHandler.Checkout)
	customer.GET("/orders", orderHandler.List)
	customer.GET("/orders/:order_number", orderHandler.Get)
	customer.POST("/products/:id/reviews", reviewHandler.Create)

	// --- Seller API ---
	seller := v1.Group("/seller", auth, middleware.RBAC(domain.RoleSeller, domain.RoleAdmin))
	seller.GET("/products", productHandler.ListMine)
	seller.POST("/products", productHandler.Create)
	seller.PUT("/products/:id", productHandler.Update)
	seller.DELETE("/products/:id", productHandler.Delete)
	seller.GET("/orders", orderHandler.List)
	seller.GET("/orders/:order_number", orderHandler.Get)
	seller.PUT("/orders/:order_number/status", orderHandler.UpdateStatus)

	// --- Admin API ---
	admin := v1.Group("/admin", auth, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/users", adminUserHandler.List)
	admin.DELETE("/users/:id", adminUserHandler.Delete)
	admin.PUT("/users/:id/role", adminUserHandler.ChangeRole)
	admin.GET("/orders", orderHandler.List)
	admin.GET("/orders/:order_number", orderHandler.Get)
	admin.PUT("/orders/:order_number/status", orderHandler.UpdateStatus)
	admin.GET("/promotions", promoHandler.List)
	admin.POST("/promotions", promoHandler.Create)
	admin.DELETE("/promotions/:id", promoHandler.Delete)

	// --- Payment gateway callbacks ---
	payments := v1.Group("/payments", auth, middleware.RBAC(domain.RoleAdmin))
	payments.POST("/events", paymentHandler.Receive)
	payments.POST("/events/batch", paymentHandler.ReceiveBatch)

	// --- Navigable shell ---
	// The session middleware resolves any identity without rejecting, and the
	// gate decides between rendering and redirecting.
	table := routes.Storefront()
	shell := e.Group("", session, middleware.Gate(table))
	shell.GET("/", shellHandler.Home)
	shell.GET("/login", shellHandler.Login)
	shell.GET("/register", shellHandler.Register)
	shell.GET("/products", shellHandler.Products)
	shell.GET("/admin", shellHandler.AdminDashboard)
	shell.GET("/admin/dashboard", shellHandler.AdminDashboard)
	shell.GET("/seller", shellHandler.SellerDashboard)
	shell.GET("/seller/dashboard", shellHandler.SellerDashboard)
	shell.GET("/customer", shellHandler.CustomerDashboard)
	shell.GET("/customer/dashboard", shellHandler.CustomerDashboard)

	// Unknown pages land on the storefront home.
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, table.LandingPath)
	})

	return e, dispatcher
}
