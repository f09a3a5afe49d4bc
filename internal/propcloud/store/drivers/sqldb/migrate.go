package sqldb

import (
	"errors"
	"io/fs"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/store/drivers/sqldb/migrations"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// ApplyMigrations applies any pending migrations for the store's driver
// from the files embedded in the binary.
func (s *Store) ApplyMigrations() error {
	// 1. Pick the migration driver and file set for the dialect
	var (
		driver database.Driver
		files  fs.FS
		err    error
	)
	switch s.driver {
	case DriverPostgres:
		driver, err = postgres.WithInstance(s.db.DB, &postgres.Config{})
		files = migrations.Postgres
	default:
		driver, err = migratesqlite.WithInstance(s.db.DB, &migratesqlite.Config{})
		files = migrations.SQLite
	}
	if err != nil {
		return err
	}

	// 2. Create the iofs source rooted at the dialect directory
	source, err := iofs.New(files, s.driver)
	if err != nil {
		return err
	}

	// 3. Create the migrate instance to run migrations
	instance, err := migrate.NewWithInstance("iofs", source, s.driver, driver)
	if err != nil {
		return err
	}

	// 4. Apply all up migrations
	err = instance.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
