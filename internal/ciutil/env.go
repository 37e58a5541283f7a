package ciutil

import (
	"log/slog"
	"os"

	"github.com/phrazzld/recipe-api/internal/redact"
)

// Environment variables consulted by this package.
const (
	EnvCI            = "CI"
	EnvGitHubActions = "GITHUB_ACTIONS"
	EnvGitLabCI      = "GITLAB_CI"

	// EnvTestDatabaseURL is the preferred name for the test database URL.
	EnvTestDatabaseURL = "RECIPE_TEST_DATABASE_URL"
	// EnvDatabaseURL is accepted for compatibility with hosted CI services.
	EnvDatabaseURL = "DATABASE_URL"
)

// IsCI reports whether the process runs under a CI provider.
func IsCI() bool {
	return os.Getenv(EnvCI) != "" ||
		os.Getenv(EnvGitHubActions) != "" ||
		os.Getenv(EnvGitLabCI) != ""
}

// GetEnvWithFallbacks returns the value of the first non-empty variable in
// names, or defaultValue. Using anything but the first name logs a warning.
func GetEnvWithFallbacks(names []string, defaultValue string, logger *slog.Logger) string {
	for i, name := range names {
		val := os.Getenv(name)
		if val == "" {
			continue
		}
		if i > 0 && logger != nil {
			logger.Warn("using fallback environment variable",
				slog.String("used_var", name),
				slog.String("preferred_var", names[0]),
				slog.String("value", MaskSensitiveValue(val)))
		}
		return val
	}
	return defaultValue
}

// MaskSensitiveValue hides credentials, tokens and hashes in values that are
// about to be logged.
func MaskSensitiveValue(value string) string {
	return redact.String(value)
}
