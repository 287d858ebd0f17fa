package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate brings the schema and seed data up to date.
func Migrate(db *sql.DB, driver string) error {
	instance, err := migrationDriver(db, driver)
	if err != nil {
		return err
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("creating iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, instance)
	if err != nil {
		return fmt.Errorf("creating migrate instance: %w", err)
	}

	// m is left open: closing it closes db as well.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("running migrations: %w", err)
	}

	return nil
}

func migrationDriver(db *sql.DB, driver string) (database.Driver, error) {
	switch driver {
	case DriverPostgres:
		d, err := migratepgx.WithInstance(db, &migratepgx.Config{})
		if err != nil {
			return nil, fmt.Errorf("creating pgx migration driver: %w", err)
		}

		return d, nil
	case DriverSQLite:
		d, err := sqlite.WithInstance(db, &sqlite.Config{})
		if err != nil {
			return nil, fmt.Errorf("creating sqlite migration driver: %w", err)
		}

		return d, nil
	}

	return nil, fmt.Errorf("unknown database driver: %s", driver)
}
