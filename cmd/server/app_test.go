package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/phrazzld/crudsuite/internal/config"
	"github.com/phrazzld/crudsuite/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func memoryConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			LogLevel:               "info",
			ShutdownTimeoutSeconds: 1,
			AllowedOrigins:         []string{"*"},
		},
		Trivia:   config.ServiceConfig{Enabled: true, Port: 5000},
		Coffee:   config.ServiceConfig{Enabled: true, Port: 5001},
		Casting:  config.ServiceConfig{Enabled: true, Port: 8080},
		Database: config.DatabaseConfig{Driver: "memory"},
		Auth: config.AuthConfig{
			Domain:             testutils.TestDomain,
			Audience:           testutils.TestAudience,
			Algorithm:          "HS256",
			HMACSecret:         testutils.TestHMACSecret,
			JWKSRefreshMinutes: 60,
		},
		Redis: config.RedisConfig{CategoryTTLSeconds: 60},
	}
}

func TestNewApplication(t *testing.T) {
	t.Run("memory driver serves every API", func(t *testing.T) {
		app, err := newApplication(context.Background(), memoryConfig(), discardLogger())
		require.NoError(t, err)
		defer app.cleanup()

		servers := app.httpServers()
		require.Len(t, servers, 3)
		assert.Equal(t, ":5000", servers[0].Addr)
		assert.Equal(t, ":5001", servers[1].Addr)
		assert.Equal(t, ":8080", servers[2].Addr)

		for _, srv := range servers {
			rec := testutils.DoRequest(t, srv.Handler, http.MethodGet, "/health", nil, "")
			assert.Equal(t, http.StatusOK, rec.Code, srv.Addr)
		}

		rec := testutils.DoRequest(t, servers[0].Handler, http.MethodGet, "/categories", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = testutils.DoRequest(t, servers[1].Handler, http.MethodGet, "/drinks-detail", nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = testutils.DoRequest(t, servers[2].Handler, http.MethodGet, "/actors", nil,
			testutils.BearerToken(t, "view:actor"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("disabled services are not served", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.Coffee.Enabled = false
		cfg.Casting.Enabled = false

		app, err := newApplication(context.Background(), cfg, discardLogger())
		require.NoError(t, err)
		defer app.cleanup()

		assert.Nil(t, app.authMiddleware)
		servers := app.httpServers()
		require.Len(t, servers, 1)
		assert.Equal(t, ":5000", servers[0].Addr)
	})

	t.Run("run fails without an enabled service", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.Trivia.Enabled = false
		cfg.Coffee.Enabled = false
		cfg.Casting.Enabled = false

		app, err := newApplication(context.Background(), cfg, discardLogger())
		require.NoError(t, err)
		defer app.cleanup()

		assert.Error(t, app.Run(context.Background()))
	})

	t.Run("RS256 without issuer domain", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.Auth.Algorithm = "RS256"
		cfg.Auth.Domain = ""

		_, err := newApplication(context.Background(), cfg, discardLogger())
		assert.Error(t, err)
	})
}
