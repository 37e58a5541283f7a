package config

import "time"

// Environment names accepted in server.environment.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Database drivers accepted in database.driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	CORS     CORSConfig     `mapstructure:"cors" validate:"required"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	Environment     string        `mapstructure:"environment" validate:"required,oneof=development test production"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
// URL is used by the postgres driver, Path by the sqlite driver.
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver" validate:"required,oneof=postgres sqlite"`
	URL             string        `mapstructure:"url"`
	Path            string        `mapstructure:"path"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"gte=1"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gte=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                   string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes        int           `mapstructure:"token_lifetime_minutes" validate:"gt=0"`
	RefreshTokenLifetimeMinutes int           `mapstructure:"refresh_token_lifetime_minutes" validate:"gtfield=TokenLifetimeMinutes"`
	ResetTokenLifetimeMinutes   int           `mapstructure:"reset_token_lifetime_minutes" validate:"gt=0"`
	ClockSkew                   time.Duration `mapstructure:"clock_skew" validate:"gte=0"`
	BcryptCost                  int           `mapstructure:"bcrypt_cost" validate:"gte=10,lte=14"`
	// DevRoutesEnabled opens the admin, batch, swagger and test routes to
	// anonymous callers. Load forces it off in production.
	DevRoutesEnabled bool `mapstructure:"dev_routes_enabled"`
}

// CORSConfig describes the single front-end origin allowed to call the API.
type CORSConfig struct {
	AllowedOrigin string `mapstructure:"allowed_origin" validate:"required,url"`
}

// MetricsConfig controls the Prometheus listener that also serves /health.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"gte=0,lt=65536"`
	Path    string `mapstructure:"path" validate:"omitempty,startswith=/"`
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}
