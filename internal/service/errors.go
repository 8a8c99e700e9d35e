package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/blog-api/internal/domain"
)

// Common service errors, checked by callers with errors.Is.
// The API layer maps them to HTTP status codes.
var (
	// ErrNotOwned indicates a resource is owned by a different user than the one making the request.
	// API layer should map this to HTTP 403 Forbidden.
	ErrNotOwned = fmt.Errorf("%w: resource is owned by another user", domain.ErrForbidden)

	// ErrInvalidPassword indicates the password does not match the stored
	// digest. API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidPassword = errors.New("invalid password")
)
