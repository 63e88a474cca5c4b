// Package main is the entry point of the crudsuite server. It serves the
// trivia, coffee and casting APIs, each on its own port, or runs a database
// migration command and exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/phrazzld/crudsuite/internal/config"
	"github.com/phrazzld/crudsuite/internal/platform/logger"
	"github.com/phrazzld/crudsuite/internal/platform/postgres"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command and exit ("+strings.Join(postgres.MigrationCommands, "|")+")")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *migrateCmd); err != nil {
		slog.Error("crudsuite terminated", "error", err)
		os.Exit(1)
	}
}

// run loads configuration and either executes migrateCmd or serves the
// enabled APIs until ctx is cancelled.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)
	log.Info("configuration loaded",
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver,
		"auth_algorithm", cfg.Auth.Algorithm,
		"redis_enabled", cfg.Redis.URL != "")

	if migrateCmd != "" {
		return runMigrations(ctx, cfg, migrateCmd, log)
	}

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	return app.Run(ctx)
}
