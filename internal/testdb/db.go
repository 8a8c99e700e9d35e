package testdb

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/platform/gormstore"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// Config returns the database configuration tests should use. Without an
// external database every call yields a distinct in-memory SQLite database.
func Config() config.DatabaseConfig {
	if IsIntegrationTestEnvironment() {
		return config.DatabaseConfig{
			Driver:       GetTestDatabaseDriver(),
			URL:          GetTestDatabaseURL(),
			MaxOpenConns: 5,
			MaxIdleConns: 2,
		}
	}
	return config.DatabaseConfig{
		Driver: gormstore.DriverSQLite,
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString()),
	}
}

// GetTestDBWithT opens a migrated database and closes it when the test
// ends. Tests against an external database should isolate themselves with
// WithTx.
func GetTestDBWithT(t *testing.T) *gorm.DB {
	t.Helper()
	return OpenWithConfig(t, Config())
}

// OpenWithConfig opens and migrates the database described by cfg.
func OpenWithConfig(t *testing.T, cfg config.DatabaseConfig) *gorm.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	log := slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	db, err := gormstore.Open(ctx, cfg, log)
	require.NoError(t, err, "failed to open test database")

	t.Cleanup(func() {
		if err := gormstore.Close(db); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	require.NoError(t, gormstore.Migrate(ctx, db, cfg.Driver, log), "failed to migrate test database")
	return db
}

// testWriter forwards log output to t.Log so it only shows for failing tests.
type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
