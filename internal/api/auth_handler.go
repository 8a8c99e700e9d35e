package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/service"
	"github.com/phrazzld/blog-api/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userService service.UserService
	jwtService  auth.JWTService
	timeFunc    func() time.Time
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userService service.UserService, jwtService auth.JWTService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		timeFunc:    time.Now,
	}
}

// Login handles GET and POST /users/login. Credentials are read from the
// JSON body for both methods.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil && !errors.Is(err, shared.ErrEmptyBody) {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if req.Email == "" || req.Password == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Email and password are required")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Please provide a valid email address")
		return
	}

	user, err := h.userService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	issuedAt := h.timeFunc()
	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContext(r.Context()).Info("user logged in", slog.Uint64("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		User:      user,
		Token:     token,
		ExpiresAt: issuedAt.Add(h.jwtService.TokenLifetime()).UTC().Format(time.RFC3339),
	})
}
