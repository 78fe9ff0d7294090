package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/roofworks/exterior-cleaners-api/internal/config"
	"github.com/roofworks/exterior-cleaners-api/internal/presentation/http/handler"
	"github.com/roofworks/exterior-cleaners-api/internal/presentation/http/middleware"
	"github.com/roofworks/exterior-cleaners-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Pricing   *handler.PricingHandler
	Report    *handler.ReportHandler
	Customer  *handler.CustomerHandler
	Job       *handler.JobHandler
	Quote     *handler.QuoteHandler
	Order     *handler.OrderHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Public pricing and report endpoints
	router.GET("/pricing", h.Pricing.ListTiers)
	router.POST("/pricing", h.Pricing.ResolvePrice)
	router.GET("/report/:customer_id/:job_id", h.Report.Download)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.GET("/profile", h.Auth.Profile)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Overview)

	// Customers
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.GET("/:id/reports", h.Report.ListByCustomer)
	}

	// Jobs
	jobs := protected.Group("/jobs")
	{
		jobs.GET("", h.Job.List)
		jobs.POST("", h.Job.Create)
		jobs.GET("/:id", h.Job.Get)
	}

	// Quotes
	quotes := protected.Group("/quotes")
	{
		quotes.GET("", h.Quote.List)
		quotes.POST("", h.Quote.Create)
	}

	// Orders
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.POST("", h.Order.Create)
	}
}
