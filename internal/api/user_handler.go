package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/service"
)

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser handles POST /users/createUser.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !decodeAndValidate(w, r, &req, "") {
		return
	}

	user, err := h.userService.CreateUser(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContext(r.Context()).Info("user registered", slog.Uint64("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// GetAllUsers handles GET /users/getAllUsers.
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if len(users) == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "No users found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// GetUserByID handles GET /users/getUserById/{id}.
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", idErrorMessage("User"))
	if !ok {
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// UpdateUser handles PUT /users/updateUser/{id}. Only the fields present in
// the body change; a new password is re-hashed.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", idErrorMessage("User"))
	if !ok {
		return
	}
	actor, ok := actorID(w, r)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !decodeAndValidate(w, r, &req, "") {
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), actor, id, service.UserPatch{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// DeleteUser handles DELETE /users/deleteUser/{id}.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", idErrorMessage("User"))
	if !ok {
		return
	}
	actor, ok := actorID(w, r)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(r.Context(), actor, id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, "User deleted successfully")
}
