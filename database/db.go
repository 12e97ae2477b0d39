package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ak1058/Ai-Recipe-Maker/config"
	"github.com/ak1058/Ai-Recipe-Maker/logger"
	"github.com/ak1058/Ai-Recipe-Maker/models"
)

// Init opens the postgres connection and runs migrations.
func Init(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	logger.Info("Migrations completed")

	return db, nil
}

// Migrate creates or updates the four tables the app owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.InventoryItem{},
		&models.SavedRecipe{},
		&models.RecipeVideo{},
	)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("Could not obtain underlying connection for close")
		return
	}
	_ = sqlDB.Close()
}
