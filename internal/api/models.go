package api

import (
	"github.com/phrazzld/blog-api/internal/domain"
)

// Common request/response structures. Update requests use pointer fields:
// nil leaves the field unchanged, a present blank value is rejected.

// CreateUserRequest defines the payload for POST /users/createUser.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,notblank"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// UpdateUserRequest defines the payload for PUT /users/updateUser/{id}.
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitnil,notblank"`
	Email    *string `json:"email"    validate:"omitnil,email"`
	Password *string `json:"password" validate:"omitnil,min=6,max=72"`
}

// LoginRequest defines the payload for the /users/login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`

	// ExpiresAt is the RFC 3339 timestamp when the token expires
	ExpiresAt string `json:"expiresAt"`
}

// CreatePostRequest defines the payload for POST /posts/createPost.
// UserID defaults to the authenticated user.
type CreatePostRequest struct {
	Title   string  `json:"title"   validate:"required,notblank"`
	Content string  `json:"content" validate:"required,notblank"`
	UserID  *uint64 `json:"userId"  validate:"omitnil,gt=0"`
}

// UpdatePostRequest defines the payload for PUT /posts/updatePost/{id}.
type UpdatePostRequest struct {
	Title   *string `json:"title"   validate:"omitnil,notblank"`
	Content *string `json:"content" validate:"omitnil,notblank"`
}

// CreateCommentRequest defines the payload for POST /comments/createComment.
// UserID defaults to the authenticated user.
type CreateCommentRequest struct {
	Content string  `json:"content" validate:"required,notblank"`
	PostID  uint64  `json:"postId"  validate:"required,gt=0"`
	UserID  *uint64 `json:"userId"  validate:"omitnil,gt=0"`
}

// CreateCategoryRequest defines the payload for POST /categories/createCategory.
type CreateCategoryRequest struct {
	Description string `json:"description" validate:"required,notblank"`
	PostID      uint64 `json:"postId"      validate:"required,gt=0"`
}

// CreateCategoryResponse returns the new category together with the
// association row linking it to the post.
type CreateCategoryResponse struct {
	Category       *domain.Category     `json:"category"`
	PostCategories *domain.PostCategory `json:"postCategories"`
}
