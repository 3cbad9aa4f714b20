package db

import (
	"context"
	"embed"
	"fmt"

	"family-site-go/internal/config"
	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate applies the embedded migrations for driver.
func Migrate(ctx context.Context, gormDB *gorm.DB, driver string) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	dialect, dir, err := migrationTarget(driver)
	if err != nil {
		return err
	}

	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.UpContext(ctx, sqlDB, dir); err != nil {
		return fmt.Errorf("migrate %s: %w", driver, err)
	}

	return nil
}

func migrationTarget(driver string) (string, string, error) {
	switch driver {
	case config.DriverPostgres:
		return "postgres", "migrations/postgres", nil
	case config.DriverSQLite, "":
		return "sqlite3", "migrations/sqlite", nil
	default:
		return "", "", fmt.Errorf("db: no migrations for driver %q", driver)
	}
}
