package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/crudsuite/internal/config"
	"github.com/phrazzld/crudsuite/internal/platform/postgres"
)

// runMigrations executes one goose command against the configured database.
// Every log line of the run carries the same correlation id.
func runMigrations(ctx context.Context, cfg *config.Config, command string, logger *slog.Logger) error {
	if cfg.Database.Driver != "postgres" {
		return errors.New("migrations require the postgres database driver")
	}

	log := logger.With(
		slog.String("correlation_id", uuid.NewString()),
		slog.String("migration_command", command))
	log.Info("running migrations")

	db, err := postgres.OpenSQL(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Error("failed to close database connection", "error", cerr)
		}
	}()

	if err := postgres.Migrate(ctx, db, command, log); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	log.Info("migrations completed")
	return nil
}
