package main

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/platform/gormstore"
	"github.com/phrazzld/blog-api/internal/service"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
)

// application holds every long-lived dependency of the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *gorm.DB

	userStore     store.UserStore
	postStore     store.PostStore
	commentStore  store.CommentStore
	categoryStore store.CategoryStore

	jwtService auth.JWTService
	hasher     auth.PasswordHasher

	userService service.UserService
	postService service.PostService
}

// newApplication builds stores and services on top of an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *gorm.DB) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	hasher, err := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}

	app := &application{
		config:        cfg,
		logger:        logger,
		db:            db,
		userStore:     gormstore.NewGormUserStore(db, logger),
		postStore:     gormstore.NewGormPostStore(db, logger),
		commentStore:  gormstore.NewGormCommentStore(db, logger),
		categoryStore: gormstore.NewGormCategoryStore(db, logger),
		jwtService:    jwtService,
		hasher:        hasher,
	}

	app.userService = service.NewUserService(app.userStore, hasher, cfg.Auth.EnforceOwnership, logger)
	app.postService = service.NewPostService(
		app.postStore,
		app.commentStore,
		app.categoryStore,
		cfg.Auth.EnforceOwnership,
		logger,
	)

	logger.Info("application initialized",
		"enforce_ownership", cfg.Auth.EnforceOwnership,
		"token_lifetime", jwtService.TokenLifetime().String())
	return app, nil
}

// seed loads the demo user and post.
func (app *application) seed(ctx context.Context) error {
	if _, err := service.SeedDemoData(ctx, app.userService, app.postService, app.logger); err != nil {
		return fmt.Errorf("failed to seed demo data: %w", err)
	}
	return nil
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := gormstore.Close(app.db); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
	app.logger.Info("application shutdown completed")
}
