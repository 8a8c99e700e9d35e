package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/service"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
)

// MsgInternalError is the only message a 5xx response ever carries.
const MsgInternalError = "Internal server error"

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, service.ErrInvalidPassword),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, shared.ErrEmptyBody),
		store.IsDuplicateError(err),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgInternalError
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken):
		return "Invalid token"
	case errors.Is(err, service.ErrInvalidPassword):
		return "Invalid password"
	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return "Forbidden"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrPostNotFound):
		return "Post not found"
	case errors.Is(err, store.ErrCommentNotFound):
		return "No comments found for this post"
	case errors.Is(err, store.ErrCategoryNotFound):
		return "Categories not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"
	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"
	case errors.Is(err, store.ErrReferenceNotFound):
		return "Referenced resource does not exist"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"
	case errors.Is(err, domain.ErrValidation):
		return validationDetail(err)

	default:
		return MsgInternalError
	}
}

// validationDetail returns the field-level part of a domain validation
// error, e.g. "title cannot be empty".
func validationDetail(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}

	prefix := domain.ErrValidation.Error() + ": "
	for e := err; e != nil; e = errors.Unwrap(e) {
		if errors.Unwrap(e) == domain.ErrValidation {
			return strings.TrimPrefix(e.Error(), prefix)
		}
	}
	return "Validation error"
}

// HandleAPIError writes the status and safe message for err and logs the
// full error. A non-empty message replaces the derived one for 4xx errors;
// 5xx errors always answer MsgInternalError.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)

	userMessage := GetSafeErrorMessage(err)
	if message != "" && status < http.StatusInternalServerError {
		userMessage = message
	}
	if status >= http.StatusInternalServerError {
		userMessage = MsgInternalError
	}

	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}
