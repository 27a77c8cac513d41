package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Techies-Collab-and-Upskill-Live-Project/bizease-web-backend/models"
)

// Config carries the postgres connection settings.
type Config struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     string
	SSLMode  string
	TimeZone string
}

// Connect opens the postgres connection and migrates the schema. The check
// constraints declared on the models (non-negative stock, positive quantity
// and price) land here and act as the final backstop for concurrent writes.
func Connect(cfg Config, log *zap.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode, cfg.TimeZone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Account{},
		&models.InventoryItem{},
		&models.Order{},
		&models.OrderedItem{},
	); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	log.Info("connected to postgres",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Name))
	return db, nil
}
