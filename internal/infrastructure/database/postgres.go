package database

import (
	"fmt"
	"log"

	"github.com/roofworks/exterior-cleaners-api/internal/config"
	"github.com/roofworks/exterior-cleaners-api/internal/domain/entity"
	"github.com/roofworks/exterior-cleaners-api/pkg/utils"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Staff users
		&entity.User{},

		// Customer-facing records
		&entity.Customer{},
		&entity.Job{},
		&entity.Quote{},
		&entity.Order{},
		&entity.Report{},

		// Reference data
		&entity.PricingTier{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the pricing tier catalog and, when configured, an
// admin user. Tiers are reference data and are never created through the
// user-facing flow.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var tierCount int64
	if err := db.Model(&entity.PricingTier{}).Count(&tierCount).Error; err != nil {
		return fmt.Errorf("failed to count pricing tiers: %w", err)
	}

	if tierCount == 0 {
		tiers := []entity.PricingTier{
			{
				Name:           "Basic",
				Description:    "Small roofs, quick single-visit cleans",
				Price:          150,
				MaxRoofArea:    60,
				MaxJobDuration: 2,
			},
			{
				Name:           "Standard",
				Description:    "Typical residential roofs up to a half-day job",
				Price:          250,
				MaxRoofArea:    100,
				MaxJobDuration: 4,
			},
			{
				Name:           "Premium",
				Description:    "Large or heavily soiled roofs, full-day jobs",
				Price:          400,
				MaxRoofArea:    200,
				MaxJobDuration: 8,
			},
		}
		for i := range tiers {
			if err := db.Create(&tiers[i]).Error; err != nil {
				log.Printf("Warning: failed to create pricing tier %s: %v", tiers[i].Name, err)
			}
		}
	}

	// Create admin user if configured via environment variables
	adminUsername := viper.GetString("ADMIN_USERNAME")
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")

	if adminUsername != "" && adminEmail != "" && adminPassword != "" {
		var existing entity.User
		if err := db.Where("username = ?", adminUsername).First(&existing).Error; err != nil {
			hashedPassword, err := utils.HashPassword(adminPassword)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				admin := entity.User{
					Username: adminUsername,
					Email:    adminEmail,
					Password: hashedPassword,
				}
				if err := db.Create(&admin).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminUsername)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminUsername)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
