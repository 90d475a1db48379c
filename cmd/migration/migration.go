// Package migration applies the SQL schema migrations shipped under
// internal/migration against the clinic's Postgres database.
package migration

import (
	"database/sql"
	"os"
	"path/filepath"

	migrate "github.com/rubenv/sql-migrate"
)

// Run applies every pending migration in order and returns how many were
// applied. Already-applied migrations are skipped, so running it on every
// boot is safe.
func Run(db *sql.DB) (int, error) {
	wd, err := os.Getwd()
	if err != nil {
		return 0, err
	}

	source := &migrate.FileMigrationSource{
		Dir: filepath.Join(wd, "internal", "migration"),
	}

	return migrate.Exec(db, "postgres", source, migrate.Up)
}
