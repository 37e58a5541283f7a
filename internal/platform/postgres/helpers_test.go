package postgres_test

import (
	"io/fs"

	"github.com/phrazzld/recipe-api/internal/platform/postgres"
)

func fsReadDir(d postgres.Dialect) ([]string, error) {
	entries, err := fs.ReadDir(d.Migrations(), ".")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
