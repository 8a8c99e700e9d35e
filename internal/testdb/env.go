package testdb

import (
	"os"
	"strings"
)

// Environment variables read by the test helpers.
const (
	EnvTestDatabaseURL    = "BLOG_TEST_DATABASE_URL"
	EnvTestDatabaseDriver = "BLOG_TEST_DATABASE_DRIVER"
)

// IsIntegrationTestEnvironment reports whether an external test database is
// configured.
func IsIntegrationTestEnvironment() bool {
	return strings.TrimSpace(os.Getenv(EnvTestDatabaseURL)) != ""
}

// GetTestDatabaseURL returns the external test database URL, if any.
func GetTestDatabaseURL() string {
	return strings.TrimSpace(os.Getenv(EnvTestDatabaseURL))
}

// GetTestDatabaseDriver returns the driver for the external test database.
// It defaults to postgres.
func GetTestDatabaseDriver() string {
	if d := strings.TrimSpace(os.Getenv(EnvTestDatabaseDriver)); d != "" {
		return d
	}
	return "postgres"
}
