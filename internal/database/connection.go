// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ashraf-Atef1/full-stack-task/internal/config"
	"github.com/Ashraf-Atef1/full-stack-task/internal/models"
)

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Apartment{},
		&models.ApartmentTranslation{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// Translation lookup indexes
		"CREATE INDEX IF NOT EXISTS idx_apartment_translations_apartment_id ON apartment_translations(apartment_id)",
		"CREATE INDEX IF NOT EXISTS idx_apartment_translations_locale ON apartment_translations(locale)",
		"CREATE INDEX IF NOT EXISTS idx_apartment_translations_apartment_locale ON apartment_translations(apartment_id, locale)",

		// Slug uniqueness backs the conflict classification in the service
		// layer; partial so that slug-less rows never collide.
		"CREATE UNIQUE INDEX IF NOT EXISTS uq_apartment_translations_slug ON apartment_translations(slug) WHERE slug IS NOT NULL",

		// Listing query indexes
		"CREATE INDEX IF NOT EXISTS idx_apartments_price ON apartments(price)",
		"CREATE INDEX IF NOT EXISTS idx_apartments_area_sqm ON apartments(area_sqm)",
		"CREATE INDEX IF NOT EXISTS idx_apartments_created_at ON apartments(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_apartments_delivery ON apartments(delivery_status, is_delivered)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %s: %w", index, err)
		}
	}

	return nil
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
