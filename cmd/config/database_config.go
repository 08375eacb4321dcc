package config

import (
	"cookbook/internal/utils"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the configured database. The default is an embedded sqlite
// file under the per-user data directory; DB_DRIVER=postgres switches to a
// server-backed store with the usual host/port/credential settings.
func ConnectDB() (*gorm.DB, error) {
	var dialector gorm.Dialector

	driver := utils.GetConfig("DB_DRIVER")
	switch driver {
	case "", "sqlite":
		path := utils.GetConfig("DB_PATH")
		if path == "" {
			dataDir := utils.DataDir()
			if err := os.MkdirAll(dataDir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
			}
			path = filepath.Join(dataDir, "cookbook.db")
		}
		dialector = sqlite.Open(path)

	case "postgres", "postgresql":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
		)
		dialector = postgres.Open(dsn)

	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Single user session; a tiny pool is plenty.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)

	return db, nil
}
