package database

import (
	"fmt"

	"kalahaat/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the configured SQL backend and migrates the schema.
// Supported drivers: "sqlite" (file path or :memory: DSN) and "postgres".
// The in-memory repositories remain the default storage; these backends
// are optional alternates behind the same repository interfaces.
func Open(driver, dsn string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	switch driver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	case "postgres":
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	if err := db.AutoMigrate(
		&models.Product{},
		&models.Artisan{},
		&models.TeamMember{},
		&models.Order{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}
