package testdb

import (
	"testing"

	"gorm.io/gorm"
)

// WithTx runs fn inside a transaction that is always rolled back, so tests
// sharing an external database leave no rows behind.
func WithTx(t *testing.T, db *gorm.DB, fn func(t *testing.T, tx *gorm.DB)) {
	t.Helper()

	tx := db.Begin()
	if tx.Error != nil {
		t.Fatalf("failed to begin transaction: %v", tx.Error)
	}

	defer func() {
		if err := tx.Rollback().Error; err != nil && err != gorm.ErrInvalidTransaction {
			t.Logf("failed to roll back test transaction: %v", err)
		}
	}()

	fn(t, tx)
}
