package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"

	"github.com/deppfellow/item-service/internal/config"
)

// PostgreSQL migrations, versioned by tern in the schema_version table.
//
//go:embed migrations/*.sql
var migrations embed.FS

// SQLite schema, executed idempotently on every start.
//
//go:embed schema/sqlite.sql
var sqliteSchema string

// Migrate creates the items table if it is absent.
//
// PostgreSQL runs the embedded tern migrations over a dedicated
// connection; SQLite executes the embedded DDL on the open handle.
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config, db *Database) error {
	if db.Driver == config.DriverSQLite {
		if _, err := db.SQL.ExecContext(ctx, sqliteSchema); err != nil {
			return fmt.Errorf("applying sqlite schema: %w", err)
		}
		logger.Info().Msg("database schema ensured")
		return nil
	}

	conn, err := pgx.Connect(ctx, PostgresDSN(cfg.Database))
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, "schema_version")
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return err
	}

	if from == int32(len(m.Migrations)) {
		logger.Info().Msgf("database schema up to date, version %d", len(m.Migrations))
	} else {
		logger.Info().Msgf("migrated database schema, from %d to %d", from, len(m.Migrations))
	}
	return nil
}
