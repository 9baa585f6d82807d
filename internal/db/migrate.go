package db

import (
	"errors"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"budget-scheduler/db/migrations"
)

// Migrate applies all up migrations embedded in the migrations package to
// the database at addr, up to migrations.Version.
func Migrate(addr string) error {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return err
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// WithSearchPath returns addr with search_path set to schema so migrations
// and the migrate bookkeeping table land in that schema.
func WithSearchPath(addr url.URL, schema string) string {
	if schema == "" {
		return addr.String()
	}
	q := addr.Query()
	q.Set("search_path", schema)
	addr.RawQuery = q.Encode()
	return addr.String()
}
