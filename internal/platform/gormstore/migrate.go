package gormstore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/phrazzld/blog-api/internal/platform/logger"
)

//go:embed migrations
var migrationsFS embed.FS

// Migration commands accepted by RunMigrationCommand.
const (
	MigrateUp      = "up"
	MigrateDown    = "down"
	MigrateStatus  = "status"
	MigrateVersion = "version"
)

// Migrate applies every pending migration for driver.
func Migrate(ctx context.Context, db *gorm.DB, driver string, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access database pool: %w", err)
	}

	dialect, err := gooseDialect(driver)
	if err != nil {
		return err
	}
	dir, err := migrationDir(driver)
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(dialect, sqlDB, dir)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, r := range results {
		log.Info("applied migration",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration))
	}
	if len(results) == 0 {
		log.Debug("database schema is up to date")
	}
	return nil
}

// RunMigrationCommand executes a goose command (up, down, status, version)
// against sqlDB, logging through log.
func RunMigrationCommand(ctx context.Context, sqlDB *sql.DB, driver, command string, log *slog.Logger) error {
	switch command {
	case MigrateUp, MigrateDown, MigrateStatus, MigrateVersion:
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}

	if log == nil {
		log = slog.Default()
	}

	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(logger.NewGooseLogger(log))

	dialect, err := gooseDialect(driver)
	if err != nil {
		return err
	}
	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	log.Info("running migration command",
		slog.String("command", command),
		slog.String("driver", driver))

	if err := goose.RunContext(ctx, command, sqlDB, "migrations/"+driver); err != nil {
		return fmt.Errorf("migration command %q failed: %w", command, err)
	}
	return nil
}

func gooseDialect(driver string) (goose.Dialect, error) {
	switch driver {
	case DriverPostgres:
		return goose.DialectPostgres, nil
	case DriverMySQL:
		return goose.DialectMySQL, nil
	case DriverSQLite:
		return goose.DialectSQLite3, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

func migrationDir(driver string) (fs.FS, error) {
	dir, err := fs.Sub(migrationsFS, "migrations/"+driver)
	if err != nil {
		return nil, fmt.Errorf("no migrations for driver %q: %w", driver, err)
	}
	return dir, nil
}
