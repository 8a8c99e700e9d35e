// Package testdb provides utilities specifically for database testing.
// Tests get a freshly migrated in-memory SQLite database by default, or the
// database named by BLOG_TEST_DATABASE_URL when integration tests run
// against PostgreSQL or MySQL.
package testdb
