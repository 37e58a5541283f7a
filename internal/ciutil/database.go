package ciutil

import (
	"fmt"
	"log/slog"
	"net/url"
)

// GetTestDatabaseURL returns the PostgreSQL URL for integration tests, or ""
// when none is configured. A URL without query options that points at a local
// host gets sslmode=disable, which is what CI service containers expect.
func GetTestDatabaseURL(logger *slog.Logger) string {
	dbURL := GetEnvWithFallbacks([]string{EnvTestDatabaseURL, EnvDatabaseURL}, "", logger)
	if dbURL == "" {
		return ""
	}

	normalized, err := normalizeDatabaseURL(dbURL)
	if err != nil {
		if logger != nil {
			logger.Warn("leaving unparsable database URL unchanged",
				slog.String("error", err.Error()),
				slog.String("url", MaskSensitiveValue(dbURL)))
		}
		return dbURL
	}
	return normalized
}

func normalizeDatabaseURL(dbURL string) (string, error) {
	u, err := url.Parse(dbURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse database URL: %w", err)
	}
	switch u.Scheme {
	case "postgres", "postgresql":
	default:
		return "", fmt.Errorf("unsupported database URL scheme %q", u.Scheme)
	}

	if u.RawQuery == "" {
		switch u.Hostname() {
		case "", "localhost", "127.0.0.1", "::1":
			u.RawQuery = "sslmode=disable"
		}
	}
	return u.String(), nil
}
