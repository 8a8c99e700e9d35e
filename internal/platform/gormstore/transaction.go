package gormstore

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/redact"
	"github.com/phrazzld/blog-api/internal/store"
)

// TxFn is a function that executes within a database transaction.
type TxFn func(tx *gorm.DB) error

// RunInTransaction executes fn within a transaction. The transaction is
// committed if fn returns nil and rolled back if it returns an error or
// panics.
func RunInTransaction(ctx context.Context, db *gorm.DB, fn TxFn) error {
	log := logger.FromContext(ctx)

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		log.Error("failed to begin transaction",
			slog.String("error", redact.Error(tx.Error)))
		return fmt.Errorf("%w: begin: %v", store.ErrTransactionFailed, tx.Error)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback().Error; rbErr != nil {
				log.Error("failed to roll back transaction after panic",
					slog.String("error", redact.Error(rbErr)),
					slog.Any("panic", p))
			} else {
				log.Error("rolled back transaction after panic", slog.Any("panic", p))
			}
			// ALLOW-PANIC: propagating caught panic from transaction
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			log.Error("failed to roll back transaction",
				slog.String("rollback_error", redact.Error(rbErr)),
				slog.String("original_error", redact.Error(err)))
			return fmt.Errorf("error rolling back transaction: %v (original error: %w)", rbErr, err)
		}
		log.Debug("rolled back transaction due to error",
			slog.String("error", redact.Error(err)))
		return err
	}

	if err := tx.Commit().Error; err != nil {
		log.Error("failed to commit transaction",
			slog.String("error", redact.Error(err)))
		return fmt.Errorf("%w: commit: %v", store.ErrTransactionFailed, err)
	}
	return nil
}
