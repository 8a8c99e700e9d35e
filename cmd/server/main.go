// Package main implements the entry point for the blog API server, which
// serves users, posts, comments and categories over HTTP and exposes token
// introspection over gRPC.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/platform/gormstore"
	"github.com/phrazzld/blog-api/internal/platform/logger"
)

// options holds the command line flags.
type options struct {
	migrate string
	seed    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.migrate, "migrate", "",
		"run a migration command (up, down, status, version) and exit")
	flag.BoolVar(&opts.seed, "seed", false, "create the demo user and post before serving")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// run wires the application together and blocks until ctx is canceled or
// a listener fails.
func run(ctx context.Context, opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"grpc_port", cfg.Server.GRPCPort,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver)

	db, err := gormstore.Open(ctx, cfg.Database, log)
	if err != nil {
		return err
	}

	if opts.migrate != "" {
		defer func() {
			if err := gormstore.Close(db); err != nil {
				log.Error("failed to close database", "error", err)
			}
		}()
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to access database pool: %w", err)
		}
		return gormstore.RunMigrationCommand(ctx, sqlDB, cfg.Database.Driver, opts.migrate, log)
	}

	if cfg.Database.AutoMigrate {
		if err := gormstore.Migrate(ctx, db, cfg.Database.Driver, log); err != nil {
			_ = gormstore.Close(db)
			return err
		}
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		_ = gormstore.Close(db)
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	if opts.seed {
		if err := app.seed(ctx); err != nil {
			return err
		}
	}

	return app.serve(ctx)
}
