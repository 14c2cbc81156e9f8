package db

import (
	"errors"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"billboard-ops/db/migrations"
)

// Migrate brings the schema at addr to migrations.Version using the SQL
// files embedded in the migrations package. A database left dirty by a
// failed run is reported instead of being migrated further.
func Migrate(addr string, logger *slog.Logger) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return err
	}
	defer mg.Close()

	from, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		from = 0
	case err != nil:
		return err
	}
	if dirty {
		return errors.New("database is in dirty state")
	}

	err = mg.Migrate(migrations.Version)
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("schema up to date", slog.Uint64("version", uint64(from)))
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("schema migrated",
		slog.Uint64("from", uint64(from)),
		slog.Uint64("to", uint64(migrations.Version)))
	return nil
}
