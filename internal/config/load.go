package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load,
// e.g. CRUDSUITE_DATABASE_URL for database.url.
const EnvPrefix = "CRUDSUITE"

// setDefaults registers a default for every key. Viper only unmarshals
// environment variables for keys it knows about, so each key needs one.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("trivia.enabled", true)
	v.SetDefault("trivia.port", 5000)
	v.SetDefault("coffee.enabled", true)
	v.SetDefault("coffee.port", 5001)
	v.SetDefault("casting.enabled", true)
	v.SetDefault("casting.port", 8080)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.url", "")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime_minutes", 5)
	v.SetDefault("database.auto_migrate", false)

	v.SetDefault("auth.domain", "")
	v.SetDefault("auth.audience", "")
	v.SetDefault("auth.client_id", "")
	v.SetDefault("auth.callback_url", "")
	v.SetDefault("auth.algorithm", "RS256")
	v.SetDefault("auth.hmac_secret", "")
	v.SetDefault("auth.jwks_refresh_minutes", 60)

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.category_ttl_seconds", 300)
}

// Load configuration from environment variables and optionally a config.yaml
// in the working directory. Environment variables take precedence over values
// from the config file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks struct-tag constraints and the rules that span sections.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if cfg.AuthRequired() && cfg.Auth.Algorithm == "RS256" &&
		(cfg.Auth.Domain == "" || cfg.Auth.Audience == "") {
		return fmt.Errorf("configuration validation failed: auth.domain and auth.audience are required for RS256 tokens")
	}

	ports := map[int]string{}
	for name, svc := range map[string]ServiceConfig{
		"trivia":  cfg.Trivia,
		"coffee":  cfg.Coffee,
		"casting": cfg.Casting,
	} {
		if !svc.Enabled {
			continue
		}
		if other, taken := ports[svc.Port]; taken {
			return fmt.Errorf("configuration validation failed: %s and %s share port %d", name, other, svc.Port)
		}
		ports[svc.Port] = name
	}

	return nil
}
