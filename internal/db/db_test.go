package db

import (
	"context"
	"path/filepath"
	"testing"

	"family-site-go/internal/config"
	"family-site-go/pkg/logger"
)

func TestSQLiteMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "family.db")
	gormDB, err := Open(config.DBConfig{Driver: config.DriverSQLite, SQLitePath: path}, logger.Discard())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = Close(gormDB) })

	if err := Migrate(context.Background(), gormDB, config.DriverSQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// Applying twice is a no-op.
	if err := Migrate(context.Background(), gormDB, config.DriverSQLite); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	for _, table := range []string{"recipes", "family_items"} {
		if !gormDB.Migrator().HasTable(table) {
			t.Fatalf("expected table %s", table)
		}
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(config.DBConfig{Driver: "mysql"}, logger.Discard()); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
