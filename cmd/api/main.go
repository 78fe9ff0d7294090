package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/roofworks/exterior-cleaners-api/internal/application/service"
	"github.com/roofworks/exterior-cleaners-api/internal/config"
	"github.com/roofworks/exterior-cleaners-api/internal/infrastructure/cache"
	"github.com/roofworks/exterior-cleaners-api/internal/infrastructure/database"
	"github.com/roofworks/exterior-cleaners-api/internal/infrastructure/repository"
	"github.com/roofworks/exterior-cleaners-api/internal/presentation/http/handler"
	"github.com/roofworks/exterior-cleaners-api/internal/presentation/http/routes"
	"github.com/roofworks/exterior-cleaners-api/pkg/document"
	"github.com/roofworks/exterior-cleaners-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize optional Redis tier cache
	var tierCache *cache.TierCache
	if cfg.Redis.Addr != "" {
		tierCache, err = cache.NewTierCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TierTTL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis, tier caching disabled: %v", err)
			tierCache = nil
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	jobRepo := repository.NewJobRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reportRepo := repository.NewReportRepository(db)
	tierRepo := repository.NewPricingTierRepository(db)

	// Initialize the PDF renderer
	renderer := document.NewPDFRenderer()

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	pricingService := service.NewPricingService(tierRepo, tierCache)
	reportService := service.NewReportService(customerRepo, jobRepo, reportRepo, renderer)
	customerService := service.NewCustomerService(customerRepo)
	jobService := service.NewJobService(jobRepo)
	quoteService := service.NewQuoteService(quoteRepo)
	orderService := service.NewOrderService(orderRepo)
	dashboardService := service.NewDashboardService(quoteRepo, orderRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Pricing:   handler.NewPricingHandler(pricingService),
		Report:    handler.NewReportHandler(reportService),
		Customer:  handler.NewCustomerHandler(customerService),
		Job:       handler.NewJobHandler(jobService),
		Quote:     handler.NewQuoteHandler(quoteService),
		Order:     handler.NewOrderHandler(orderService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
