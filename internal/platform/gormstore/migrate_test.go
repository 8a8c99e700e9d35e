package gormstore

import (
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tableDefinitions splits a schema migration into CREATE TABLE bodies keyed
// by table name.
func tableDefinitions(t *testing.T, schema string) map[string]string {
	t.Helper()

	tables := make(map[string]string)
	for _, chunk := range strings.Split(schema, "CREATE TABLE ")[1:] {
		name, body, found := strings.Cut(chunk, " (")
		require.True(t, found, "malformed table definition: %s", chunk)
		tables[strings.TrimSpace(name)] = body
	}
	return tables
}

func TestMigrationsRejectEmptyText(t *testing.T) {
	notEmpty := map[string][]string{
		"users":      {"username", "email", "password"},
		"posts":      {"title", "content"},
		"comments":   {"content"},
		"categories": {"description"},
	}

	for _, driver := range []string{DriverPostgres, DriverMySQL, DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			dir, err := migrationDir(driver)
			require.NoError(t, err)
			schema, err := fs.ReadFile(dir, "00001_create_blog_schema.sql")
			require.NoError(t, err)

			tables := tableDefinitions(t, string(schema))
			for table, columns := range notEmpty {
				body, ok := tables[table]
				require.True(t, ok, "table %s missing", table)
				for _, column := range columns {
					assert.Contains(t, body, fmt.Sprintf("CHECK (%s <> '')", column),
						"%s.%s must reject empty text", table, column)
				}
			}
		})
	}
}
