package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Trivia   ServiceConfig  `mapstructure:"trivia" validate:"required"`
	Coffee   ServiceConfig  `mapstructure:"coffee" validate:"required"`
	Casting  ServiceConfig  `mapstructure:"casting" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

// ServerConfig contains settings shared by every HTTP service.
type ServerConfig struct {
	LogLevel               string   `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
	AllowedOrigins         []string `mapstructure:"allowed_origins"`
}

// ServiceConfig controls one of the three HTTP services.
type ServiceConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port" validate:"required,gt=0,lt=65536"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Driver selects the storage backend: "postgres" or "memory".
	Driver                 string `mapstructure:"driver" validate:"required,oneof=postgres memory"`
	URL                    string `mapstructure:"url" validate:"required_if=Driver postgres,omitempty,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=0"`
	AutoMigrate            bool   `mapstructure:"auto_migrate"`
}

// AuthConfig describes the external token issuer whose bearer tokens guard
// the coffee and casting services.
type AuthConfig struct {
	// Domain is the issuer's host; tokens must carry iss "https://<Domain>/".
	Domain      string `mapstructure:"domain" validate:"omitempty,hostname"`
	Audience    string `mapstructure:"audience"`
	ClientID    string `mapstructure:"client_id"`
	CallbackURL string `mapstructure:"callback_url" validate:"omitempty,url"`
	// Algorithm is RS256 for issuer-signed tokens, HS256 for local development.
	Algorithm          string `mapstructure:"algorithm" validate:"required,oneof=RS256 HS256"`
	HMACSecret         string `mapstructure:"hmac_secret" validate:"required_if=Algorithm HS256,omitempty,min=32"`
	JWKSRefreshMinutes int    `mapstructure:"jwks_refresh_minutes" validate:"gt=0"`
}

// RedisConfig enables the category cache when URL is set.
type RedisConfig struct {
	URL                string `mapstructure:"url" validate:"omitempty,url"`
	CategoryTTLSeconds int    `mapstructure:"category_ttl_seconds" validate:"gt=0"`
}

// AuthRequired reports whether any enabled service needs bearer tokens.
func (c *Config) AuthRequired() bool {
	return c.Coffee.Enabled || c.Casting.Enabled
}
