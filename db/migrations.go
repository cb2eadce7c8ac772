// Package db holds the SQL schema, embedded so the binary and the tests
// apply the same migrations.
package db

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrations embed.FS

// UpMigrations returns the contents of every *.up.sql file in name order.
func UpMigrations() ([]string, error) {
	names, err := fs.Glob(migrations, "migrations/*.up.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	scripts := make([]string, 0, len(names))
	for _, name := range names {
		b, err := migrations.ReadFile(name)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, strings.TrimSpace(string(b)))
	}
	return scripts, nil
}
