package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/service"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"nil error", nil, http.StatusInternalServerError},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", fmt.Errorf("validate: %w", auth.ErrExpiredToken), http.StatusUnauthorized},
		{"invalid password", service.ErrInvalidPassword, http.StatusUnauthorized},
		{"not owned", service.ErrNotOwned, http.StatusForbidden},
		{"user not found", fmt.Errorf("failed to retrieve user: %w", store.ErrUserNotFound), http.StatusNotFound},
		{"post not found", store.ErrPostNotFound, http.StatusNotFound},
		{"comments not found", store.ErrCommentNotFound, http.StatusNotFound},
		{"categories not found", store.ErrCategoryNotFound, http.StatusNotFound},
		{"duplicate email", store.ErrEmailExists, http.StatusBadRequest},
		{"store error wrapping duplicate", store.NewStoreError("user", "create", "database operation failed", store.ErrEmailExists), http.StatusBadRequest},
		{"missing reference", store.ErrReferenceNotFound, http.StatusBadRequest},
		{"domain validation", domain.ErrEmptyTitle, http.StatusBadRequest},
		{"empty body", shared.ErrEmptyBody, http.StatusBadRequest},
		{"transaction failure", store.ErrTransactionFailed, http.StatusInternalServerError},
		{"unknown error", errors.New("unknown error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, MsgInternalError},
		{"user not found", fmt.Errorf("wrapped: %w", store.ErrUserNotFound), "User not found"},
		{"post not found", store.ErrPostNotFound, "Post not found"},
		{"comments not found", fmt.Errorf("list: %w", store.ErrCommentNotFound), "No comments found for this post"},
		{"categories not found", store.ErrCategoryNotFound, "Categories not found"},
		{"email exists", store.ErrEmailExists, "Email already exists"},
		{"invalid password", service.ErrInvalidPassword, "Invalid password"},
		{"expired token", auth.ErrExpiredToken, "Invalid token"},
		{"forbidden", service.ErrNotOwned, "Forbidden"},
		{"validation sentinel", fmt.Errorf("create post: %w", domain.ErrEmptyTitle), "title cannot be empty"},
		{"validation error type", domain.NewValidationError("id", "must be a numeric value", domain.ErrInvalidID), "id must be a numeric value"},
		{"bare validation", domain.ErrValidation, "Validation error"},
		{
			name:     "store error hides details",
			err:      store.NewStoreError("user", "create", "insert failed", errors.New("pq: password authentication failed")),
			expected: MsgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetSafeErrorMessage(tt.err))
		})
	}
}
