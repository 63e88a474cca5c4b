package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/crudsuite/internal/api"
	"github.com/phrazzld/crudsuite/internal/api/middleware"
	"github.com/phrazzld/crudsuite/internal/config"
	"github.com/phrazzld/crudsuite/internal/platform/cache"
	"github.com/phrazzld/crudsuite/internal/service"
	"github.com/phrazzld/crudsuite/internal/service/auth"
	"github.com/redis/go-redis/v9"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	stores *stores
	redis  *redis.Client

	triviaService  service.TriviaService
	drinkService   service.DrinkService
	castingService service.CastingService

	verifier       auth.Verifier
	authMiddleware *middleware.AuthMiddleware
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{config: cfg, logger: logger}

	var err error
	app.stores, err = openStores(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	categories := app.stores.categories
	if cfg.Redis.URL != "" {
		app.redis, err = cache.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			app.cleanup()
			return nil, err
		}
		ttl := time.Duration(cfg.Redis.CategoryTTLSeconds) * time.Second
		categories = cache.NewCategoryCache(categories, app.redis, ttl, logger)
		logger.Info("category cache enabled", "ttl", ttl)
	}

	app.triviaService, err = service.NewTriviaService(categories, app.stores.questions, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create trivia service: %w", err)
	}
	app.drinkService, err = service.NewDrinkService(app.stores.drinks, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create drink service: %w", err)
	}
	app.castingService, err = service.NewCastingService(app.stores.movies, app.stores.actors, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create casting service: %w", err)
	}

	if cfg.AuthRequired() {
		app.verifier, err = auth.NewVerifier(cfg.Auth, nil)
		if err != nil {
			app.cleanup()
			return nil, fmt.Errorf("failed to create token verifier: %w", err)
		}
		app.authMiddleware = middleware.NewAuthMiddleware(app.verifier)
		logger.Info("token verification configured", "algorithm", cfg.Auth.Algorithm)
	}

	logger.Info("application initialized")
	return app, nil
}

// httpServers returns one server per enabled API.
func (app *application) httpServers() []*http.Server {
	opts := api.RouterOptions{Logger: app.logger, AllowedOrigins: app.config.Server.AllowedOrigins}
	var servers []*http.Server

	if app.config.Trivia.Enabled {
		handler := api.NewTriviaRouter(api.NewTriviaHandler(app.triviaService, app.logger), opts)
		servers = append(servers, newHTTPServer(app.config.Trivia.Port, handler))
	}
	if app.config.Coffee.Enabled {
		handler := api.NewCoffeeRouter(api.NewDrinkHandler(app.drinkService, app.logger), app.authMiddleware, opts)
		servers = append(servers, newHTTPServer(app.config.Coffee.Port, handler))
	}
	if app.config.Casting.Enabled {
		handler := api.NewCastingRouter(
			api.NewCastingHandler(app.castingService, app.logger),
			api.NewAuthHandler(app.config.Auth),
			app.authMiddleware,
			opts,
		)
		servers = append(servers, newHTTPServer(app.config.Casting.Port, handler))
	}
	return servers
}

// Run serves every enabled API until ctx is cancelled.
func (app *application) Run(ctx context.Context) error {
	servers := app.httpServers()
	if len(servers) == 0 {
		return fmt.Errorf("no service is enabled")
	}
	timeout := time.Duration(app.config.Server.ShutdownTimeoutSeconds) * time.Second
	return serve(ctx, servers, timeout, app.logger)
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if closer, ok := app.verifier.(interface{ Close() }); ok {
		closer.Close()
	}
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("error closing redis client", "error", err)
		}
	}
	if err := app.stores.close(); err != nil {
		app.logger.Error("error closing database connection", "error", err)
	}
	app.logger.Info("application shutdown completed")
}
