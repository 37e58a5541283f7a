package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. RECIPE_AUTH_JWT_SECRET.
const EnvPrefix = "RECIPE"

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from the file. An empty
// path searches ./config.yaml and ./configs/config.yaml; a missing file is not
// an error. Returns a populated Config or an error if loading or validation fails.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.IsProduction() {
		cfg.Auth.DevRoutesEnabled = false
	}

	return &cfg, nil
}

// Validate checks struct tags and the rules that span several fields.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.URL == "" {
			return errors.New("config validation failed: database.url is required for the postgres driver")
		}
	case DriverSQLite:
		if c.Database.Path == "" {
			return errors.New("config validation failed: database.path is required for the sqlite driver")
		}
	}

	if c.Metrics.Enabled && c.Metrics.Port == 0 {
		return errors.New("config validation failed: metrics.port is required when metrics are enabled")
	}
	if c.Metrics.Enabled && c.Metrics.Port == c.Server.Port {
		return errors.New("config validation failed: metrics.port must differ from server.port")
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.environment", EnvDevelopment)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.url", "")
	v.SetDefault("database.path", "./data/recipe.db")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("auth.refresh_token_lifetime_minutes", 60*24*14)
	v.SetDefault("auth.reset_token_lifetime_minutes", 15)
	v.SetDefault("auth.clock_skew", 2*time.Minute)
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("auth.dev_routes_enabled", false)

	v.SetDefault("cors.allowed_origin", "http://localhost:3000")

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.port", 9091)
	v.SetDefault("metrics.path", "/metrics")
}
