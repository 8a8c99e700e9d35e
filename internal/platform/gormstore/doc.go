// Package gormstore implements the storage interfaces defined in the
// internal/store package with gorm. It supports PostgreSQL, MySQL and SQLite
// through the matching gorm dialects, owns the goose migrations for each
// driver and maps driver errors onto store errors.
package gormstore
