package db

import (
	"fmt"
	"os"
	"path/filepath"

	"family-site-go/internal/config"
	"family-site-go/pkg/logger"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

const sqlitePragmas = "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

// NewSQLite opens the database file at path, creating parent directories as
// needed.
func NewSQLite(path string, log logger.Logger) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	log.Info("db: opening sqlite", "path", path)

	gormDB, err := gorm.Open(sqlite.Open(path+sqlitePragmas), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}

	// SQLite allows a single writer.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}

	log.Info("db: connected", "driver", config.DriverSQLite)
	return gormDB, nil
}
