package database

// Adapted from https://github.com/tardisx/embed_tern.

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/tern/v2/migrate"
)

const versionTable = "db_version"

type Migrator struct {
	migrator *migrate.Migrator
}

//go:embed migrations/*.sql
var migrationFiles embed.FS

func NewMigrator(ctx context.Context, conn *pgx.Conn) (Migrator, error) {
	migrator, err := migrate.NewMigratorEx(
		ctx, conn, versionTable,
		&migrate.MigratorOptions{
			DisableTx: false,
		})
	if err != nil {
		return Migrator{}, err
	}

	migrationRoot, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return Migrator{}, err
	}

	err = migrator.LoadMigrations(migrationRoot)
	if err != nil {
		return Migrator{}, err
	}

	return Migrator{
		migrator: migrator,
	}, nil
}

// Info returns the current migration version, the embedded maximum migration,
// and a textual representation of the migration state.
func (m Migrator) Info(ctx context.Context) (int32, int32, string, error) {
	version, err := m.migrator.GetCurrentVersion(ctx)
	if err != nil {
		return 0, 0, "", err
	}
	info := ""

	var last int32
	for _, thisMigration := range m.migrator.Migrations {
		last = thisMigration.Sequence

		indicator := "  "
		if version == thisMigration.Sequence {
			indicator = "->"
		}
		info = info + fmt.Sprintf(
			"    %2s %3d %s\n",
			indicator,
			thisMigration.Sequence, thisMigration.Name)
	}

	return version, last, info, nil
}

// Migrate migrates the DB to the most recent version of the schema.
func (m Migrator) Migrate(ctx context.Context) error {
	return m.migrator.Migrate(ctx)
}
