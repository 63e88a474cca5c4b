package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/crudsuite/internal/config"
	"github.com/phrazzld/crudsuite/internal/platform/memstore"
	"github.com/phrazzld/crudsuite/internal/platform/postgres"
	"github.com/phrazzld/crudsuite/internal/store"
)

// stores is the set of store implementations for the configured driver.
type stores struct {
	categories store.CategoryStore
	questions  store.QuestionStore
	drinks     store.DrinkStore
	movies     store.MovieStore
	actors     store.ActorStore

	// sqlDB is nil for the memory driver.
	sqlDB *sql.DB
}

// openStores connects the configured backend and returns its stores. With
// the postgres driver and auto_migrate set, pending migrations are applied
// first.
func openStores(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*stores, error) {
	switch cfg.Driver {
	case "memory":
		logger.Warn("using in-memory storage; data is lost on restart")
		db := memstore.New()
		return &stores{
			categories: memstore.NewCategoryStore(db),
			questions:  memstore.NewQuestionStore(db),
			drinks:     memstore.NewDrinkStore(db),
			movies:     memstore.NewMovieStore(db),
			actors:     memstore.NewActorStore(db),
		}, nil

	case "postgres":
		sqlDB, err := postgres.OpenSQL(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		if cfg.AutoMigrate {
			if err := postgres.Migrate(ctx, sqlDB, "up", logger); err != nil {
				_ = sqlDB.Close()
				return nil, err
			}
		}
		gormDB, err := postgres.NewGorm(sqlDB, logger)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		return &stores{
			categories: postgres.NewPostgresCategoryStore(gormDB, logger),
			questions:  postgres.NewPostgresQuestionStore(gormDB, logger),
			drinks:     postgres.NewPostgresDrinkStore(gormDB, logger),
			movies:     postgres.NewPostgresMovieStore(gormDB, logger),
			actors:     postgres.NewPostgresActorStore(gormDB, logger),
			sqlDB:      sqlDB,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func (s *stores) close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}
