//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/phrazzld/crudsuite/internal/config"
	"github.com/phrazzld/crudsuite/internal/platform/postgres"
	"gorm.io/gorm"
)

// Environment variables checked, in order, for the test database URL.
var databaseURLEnvVars = []string{"DATABASE_URL", "CRUDSUITE_DATABASE_URL"}

var migrateOnce sync.Once
var migrateErr error

// GetTestDatabaseURL returns the first configured database URL, or "".
func GetTestDatabaseURL() string {
	for _, name := range databaseURLEnvVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// GetTestDBWithT opens the test database, applies the migrations once per
// test binary and registers cleanup. The test is skipped when no database
// URL is configured.
func GetTestDBWithT(t *testing.T) (*sql.DB, *gorm.DB) {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	sqlDB, err := postgres.OpenSQL(ctx, config.DatabaseConfig{
		URL:                    dbURL,
		MaxOpenConns:           5,
		MaxIdleConns:           2,
		ConnMaxLifetimeMinutes: 5,
	}, logger)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := sqlDB.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	migrateOnce.Do(func() {
		migrateErr = postgres.Migrate(ctx, sqlDB, "up", logger)
	})
	if migrateErr != nil {
		t.Fatalf("failed to migrate test database: %v", migrateErr)
	}

	gdb, err := postgres.NewGorm(sqlDB, logger)
	if err != nil {
		t.Fatalf("failed to initialize gorm: %v", err)
	}
	return sqlDB, gdb
}
