package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/redact"
	"github.com/phrazzld/blog-api/internal/service/auth"
)

// Client-facing messages of the access gate.
const (
	MsgNoTokenProvided = "No token provided"
	MsgUnauthorized    = "Unauthorized"
	MsgInvalidToken    = "Invalid token"
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates JWT tokens from the Authorization header and
// adds the user ID to the request context for authorized requests.
//
// A missing token is answered with 403, a token that fails verification
// with 401. Rejected requests never reach next.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.BearerToken(r.Header.Get("Authorization"))
		switch {
		case errors.Is(err, auth.ErrMalformedAuthorization):
			shared.RespondWithErrorDetail(w, r, http.StatusForbidden, MsgNoTokenProvided, MsgUnauthorized)
			return
		case err != nil:
			shared.RespondWithError(w, r, http.StatusForbidden, MsgNoTokenProvided)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			logger.FromContext(r.Context()).Debug("token rejected",
				slog.String("path", r.URL.Path),
				slog.String("reason", redact.Error(err)))
			shared.RespondWithErrorDetail(w, r, http.StatusUnauthorized, MsgUnauthorized, MsgInvalidToken)
			return
		}

		ctx := shared.WithUserID(r.Context(), claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the user ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uint64, bool) {
	return shared.GetUserID(r.Context())
}
