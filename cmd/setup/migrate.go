package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"github.com/erpcore/go-fin-ledger/internal/common/xlog"
	"github.com/erpcore/go-fin-ledger/internal/config"
	"github.com/erpcore/go-fin-ledger/migrations"
)

const (
	MigrateUp   = "up"
	MigrateDown = "down"
)

// Migrate applies (up) or rolls back one step (down) of the embedded schema
// migrations on the write database.
func Migrate(ctx context.Context, direction string) (err error) {
	cfg, err := config.Load(
		config.WithConfigFileName("config"),
		config.WithConfigFileSearchPaths("/config", ".", "./config"),
		config.WithDotEnv(".env"),
	)
	if err != nil {
		return err
	}
	if err = xlog.Init(cfg.App.Name, xlog.WithEnv(cfg.App.Env), xlog.WithOutput(cfg.App.LogOption)); err != nil {
		return err
	}

	db, err := sql.Open("postgres", DSN(cfg.Postgres.Write))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{
		DatabaseName: cfg.Postgres.Write.DbName,
		SchemaName:   cfg.Postgres.Write.DbSchema,
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, cfg.Postgres.Write.DbName, driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	switch direction {
	case MigrateUp:
		err = m.Up()
	case MigrateDown:
		err = m.Steps(-1)
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		xlog.Info(ctx, "no new database migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to migrate %s: %w", direction, err)
	}

	version, dirty, _ := m.Version()
	xlog.Info(ctx, "database migrated", xlog.String("direction", direction), xlog.Int("version", int(version)), xlog.Bool("dirty", dirty))
	return nil
}
