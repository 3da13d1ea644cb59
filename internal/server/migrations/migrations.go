// Package migrations embeds the goose schema migrations for both storage
// dialects and applies them at startup.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"embed"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedded embed.FS

// Run applies all pending migrations for the given driver ("postgres" or
// "sqlite") using the migration set embedded for that dialect.
func Run(ctx context.Context, db *sql.DB, driver string) error {
	var dialect string
	switch driver {
	case "postgres":
		dialect = "postgres"
	case "sqlite":
		dialect = "sqlite3"
	default:
		return fmt.Errorf("unknown database driver: %s", driver)
	}

	sub, err := fs.Sub(embedded, driver)
	if err != nil {
		return fmt.Errorf("migrations for %s: %w", driver, err)
	}

	goose.SetBaseFS(sub)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}
