package gormstore

import (
	"errors"
	"fmt"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/phrazzld/blog-api/internal/store"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

// MySQL error numbers
const (
	mysqlDuplicateEntry    uint16 = 1062
	mysqlNoReferencedRow   uint16 = 1452
	mysqlRowIsReferenced   uint16 = 1451
	mysqlCheckViolated     uint16 = 3819
	mysqlColumnCannotBeNil uint16 = 1048
)

// MapError maps a gorm or driver error to a store error. The original
// error stays wrapped for logging; callers must not expose it to clients.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", store.ErrReferenceNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: foreign key violation (%s): %v",
				store.ErrReferenceNotFound, pgErr.ConstraintName, err)
		case pgCheckViolation:
			return fmt.Errorf("%w: check constraint violation (%s): %v",
				store.ErrInvalidEntity, pgErr.ConstraintName, err)
		case pgNotNullViolation:
			return fmt.Errorf("%w: not null violation (%s): %v",
				store.ErrInvalidEntity, pgErr.ColumnName, err)
		}
	}

	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry:
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case mysqlNoReferencedRow, mysqlRowIsReferenced:
			return fmt.Errorf("%w: %v", store.ErrReferenceNotFound, err)
		case mysqlCheckViolated, mysqlColumnCannotBeNil:
			return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
		}
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%w: %v", store.ErrReferenceNotFound, err)
		case sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintNotNull:
			return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
		}
	}

	return err
}

// Entity names carried by the store errors of each gorm store.
const (
	entityUser     = "user"
	entityPost     = "post"
	entityComment  = "comment"
	entityCategory = "category"
)

// mapEntityError maps err into a *store.StoreError recording the entity and
// operation. Generic not-found and duplicate errors are narrowed to the
// entity-specific sentinel when one is given.
func mapEntityError(entity, operation string, err error, notFound, duplicate error) error {
	mapped := MapError(err)
	switch {
	case mapped == nil:
		return nil
	case notFound != nil && errors.Is(mapped, store.ErrNotFound):
		mapped = fmt.Errorf("%w: %v", notFound, err)
	case duplicate != nil && errors.Is(mapped, store.ErrDuplicate):
		mapped = fmt.Errorf("%w: %v", duplicate, err)
	}
	return store.NewStoreError(entity, operation, "database operation failed", mapped)
}

// checkRowsAffected converts a write that touched nothing into notFound.
func checkRowsAffected(result *gorm.DB, notFound error) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound
	}
	return nil
}
