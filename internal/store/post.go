package store

import (
	"context"

	"github.com/phrazzld/blog-api/internal/domain"
)

// PostStore defines the interface for post data persistence.
// Reads return posts with their author, categories and comments loaded.
type PostStore interface {
	// Create saves a new post. Returns ErrReferenceNotFound if the owning
	// user does not exist.
	Create(ctx context.Context, post *domain.Post) error

	// List returns every post ordered by ID.
	List(ctx context.Context) ([]domain.Post, error)

	// GetByID returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id uint64) (*domain.Post, error)

	// Update persists title and content. Returns ErrPostNotFound if the
	// post does not exist.
	Update(ctx context.Context, post *domain.Post) error

	// Delete removes a post, its comments and its category associations.
	// Returns ErrPostNotFound if the post does not exist.
	Delete(ctx context.Context, id uint64) error
}

// CommentStore defines the interface for comment data persistence.
type CommentStore interface {
	// Create saves a new comment. Returns ErrReferenceNotFound if the post
	// or the author does not exist.
	Create(ctx context.Context, comment *domain.Comment) error

	// ListByPost returns the comments on postID ordered by ID.
	ListByPost(ctx context.Context, postID uint64) ([]domain.Comment, error)
}

// CategoryStore defines the interface for category data persistence.
type CategoryStore interface {
	// CreateForPost saves category and links it to postID in a single
	// transaction. Returns ErrReferenceNotFound, and persists nothing, if
	// the post does not exist.
	CreateForPost(ctx context.Context, category *domain.Category, postID uint64) (*domain.PostCategory, error)

	// ListByPost returns the categories attached to postID ordered by ID.
	ListByPost(ctx context.Context, postID uint64) ([]domain.Category, error)
}
