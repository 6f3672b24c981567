// Package router assembles the gateway's gin engine.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/ngenohkevin/zid-admin/internal/handlers"
	"github.com/ngenohkevin/zid-admin/internal/middleware"
	"github.com/ngenohkevin/zid-admin/internal/services"
	"github.com/ngenohkevin/zid-admin/internal/telemetry"
	"github.com/ngenohkevin/zid-admin/internal/zid"
)

// Dependencies are the collaborators the routes are built from. Optional
// features are switched off by leaving their field nil.
type Dependencies struct {
	API            zid.API
	ProductService services.ProductServiceInterface

	AuthService  services.AuthServiceInterface
	AuditService services.AuditServiceInterface
	RateLimiter  *middleware.RateLimiter
	APILimit     middleware.RateLimit
	Metrics      *telemetry.Metrics

	HealthChecks map[string]handlers.HealthChecker
	CORSOrigins  []string
	Version      string
}

func New(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(deps.CORSOrigins...))
	r.Use(middleware.SecurityHeaders())

	r.NoRoute(middleware.NotFound())
	r.NoMethod(middleware.MethodNotAllowed())

	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
		r.GET("/metrics", deps.Metrics.Handler())
	}

	rateLimiter := deps.RateLimiter
	if rateLimiter == nil {
		rateLimiter = middleware.NewRateLimiter(nil, nil)
	}

	healthHandler := handlers.NewHealthHandler(deps.Version, deps.HealthChecks)
	orderHandler := handlers.NewOrderHandler(deps.API)
	productHandler := handlers.NewProductHandler(deps.API, deps.ProductService)
	customerHandler := handlers.NewCustomerHandler(deps.API)
	catalogHandler := handlers.NewCatalogHandler(deps.API)
	webhookHandler := handlers.NewWebhookHandler(deps.API)

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")
	api.Use(middleware.NoStore())
	api.GET("/ping", healthHandler.Ping)

	var authMiddleware *middleware.AuthMiddleware
	if deps.AuthService != nil {
		authMiddleware = middleware.NewAuthMiddleware(deps.AuthService)
		authHandler := handlers.NewAuthHandler(deps.AuthService)

		api.POST("/auth/login", rateLimiter.AuthLimit(), authHandler.Login)
		session := api.Group("/auth", authMiddleware.RequireAuth())
		{
			session.POST("/logout", authHandler.Logout)
			session.GET("/me", authHandler.Me)
		}
	}

	protected := api.Group("")
	if authMiddleware != nil {
		protected.Use(authMiddleware.RequireAuth())
		protected.Use(authMiddleware.RequireMethodAccess())
	}
	protected.Use(rateLimiter.APILimit(deps.APILimit))
	if deps.AuditService != nil {
		protected.Use(middleware.Audit(deps.AuditService))
	}

	orders := protected.Group("/orders")
	{
		orders.GET("", orderHandler.ListOrders)
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PUT("/:id", orderHandler.UpdateOrder)
	}

	products := protected.Group("/products")
	{
		products.GET("", productHandler.ListProducts)
		products.POST("", productHandler.CreateProduct)
		products.POST("/bulk-delete", productHandler.BulkDeleteProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.PUT("/:id", productHandler.UpdateProduct)
		products.DELETE("/:id", productHandler.DeleteProduct)
		products.POST("/:id/duplicate", productHandler.DuplicateProduct)
		products.GET("/:id/stock", productHandler.GetProductStock)
		products.PUT("/:id/stock", productHandler.UpdateProductStock)
	}

	customers := protected.Group("/customers")
	{
		customers.GET("", customerHandler.ListCustomers)
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("/stats", customerHandler.GetCustomerStats)
		customers.POST("/import", customerHandler.ImportCustomers)
		customers.POST("/send-email", customerHandler.SendEmail)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.PUT("/:id", customerHandler.UpdateCustomer)
		customers.DELETE("/:id", customerHandler.DeleteCustomer)
	}

	categories := protected.Group("/categories")
	{
		categories.GET("", catalogHandler.ListCategories)
		categories.POST("", catalogHandler.CreateCategory)
		categories.GET("/:id", catalogHandler.GetCategory)
	}
	protected.GET("/locations", catalogHandler.ListLocations)

	webhooks := protected.Group("/webhooks")
	{
		webhooks.GET("", webhookHandler.ListWebhooks)
		webhooks.POST("", webhookHandler.CreateWebhook)
		webhooks.DELETE("/:id", webhookHandler.DeleteWebhook)
		webhooks.POST("/:id/test", webhookHandler.TestWebhook)
	}

	if deps.AuditService != nil {
		auditHandler := handlers.NewAuditHandler(deps.AuditService)
		if authMiddleware != nil {
			protected.GET("/audit", authMiddleware.RequireAdmin(), auditHandler.ListAuditEntries)
		} else {
			protected.GET("/audit", auditHandler.ListAuditEntries)
		}
	}

	return r
}
