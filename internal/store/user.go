package store

import (
	"context"

	"github.com/phrazzld/blog-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
// Users reach the store with HashedPassword already set.
type UserStore interface {
	// Create saves a new user and assigns its ID and timestamps.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// List returns every user ordered by ID. An empty store yields an
	// empty slice, not an error.
	List(ctx context.Context) ([]domain.User, error)

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uint64) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update persists username, email and hashed password of an existing user.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrEmailExists if the new email belongs to another user.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user and, through cascading foreign keys, their
	// posts and comments.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uint64) error
}
