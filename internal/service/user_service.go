package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
)

// UserPatch lists the user fields an update may change. Nil means unchanged.
type UserPatch struct {
	Username *string
	Email    *string
	Password *string
}

// UserService provides user-related operations
type UserService interface {
	// CreateUser validates the input, hashes the password and stores the user.
	CreateUser(ctx context.Context, username, email, password string) (*domain.User, error)

	// ListUsers returns every user ordered by ID.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// GetUser retrieves a user by their ID
	GetUser(ctx context.Context, userID uint64) (*domain.User, error)

	// UpdateUser applies patch to the user. A new password is re-hashed.
	// actorID is the authenticated caller.
	UpdateUser(ctx context.Context, actorID, userID uint64, patch UserPatch) (*domain.User, error)

	// DeleteUser deletes a user by their ID. actorID is the authenticated caller.
	DeleteUser(ctx context.Context, actorID, userID uint64) error

	// Authenticate checks email and password. It returns store.ErrUserNotFound
	// for an unknown email and ErrInvalidPassword for a wrong password.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore        store.UserStore
	hasher           auth.PasswordHasher
	enforceOwnership bool
	logger           *slog.Logger
}

// NewUserService creates a new UserService. When enforceOwnership is set,
// users may only update or delete themselves.
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	enforceOwnership bool,
	logger *slog.Logger,
) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		userStore:        userStore,
		hasher:           hasher,
		enforceOwnership: enforceOwnership,
		logger:           logger.With("component", "user_service"),
	}
}

// CreateUser creates a new user with the specified username, email and password
func (s *UserServiceImpl) CreateUser(ctx context.Context, username, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(username, email, password)
	if err != nil {
		log.Debug("rejected invalid user", "error", err)
		return nil, err
	}

	user.HashedPassword, err = s.hasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.Password = ""

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("attempted to create user with existing email")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("user created successfully", "user_id", user.ID)
	return user, nil
}

// ListUsers returns every user
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser retrieves a user by their ID
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uint64) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return user, nil
}

// UpdateUser retrieves the full user, applies the patch and saves it back.
func (s *UserServiceImpl) UpdateUser(
	ctx context.Context,
	actorID, userID uint64,
	patch UserPatch,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user for update: %w", err)
	}

	if err := s.checkSelf(actorID, userID); err != nil {
		log.Warn("user update denied", "actor_id", actorID, "user_id", userID)
		return nil, err
	}

	if patch.Username != nil {
		user.Username = strings.TrimSpace(*patch.Username)
	}
	if patch.Email != nil {
		user.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.Password != nil {
		if err := domain.ValidatePassword(*patch.Password); err != nil {
			return nil, err
		}
		user.Password = *patch.Password
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if patch.Password != nil {
		user.HashedPassword, err = s.hasher.Hash(user.Password)
		if err != nil {
			log.Error("failed to hash password", "error", err, "user_id", userID)
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		user.Password = ""
	}

	if err := s.userStore.Update(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("attempted to update to an existing email", "user_id", userID)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	log.Info("user updated successfully", "user_id", userID)
	return user, nil
}

// DeleteUser deletes a user by their ID
func (s *UserServiceImpl) DeleteUser(ctx context.Context, actorID, userID uint64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		return fmt.Errorf("failed to retrieve user for delete: %w", err)
	}

	if err := s.checkSelf(actorID, userID); err != nil {
		log.Warn("user delete denied", "actor_id", actorID, "user_id", userID)
		return err
	}

	if err := s.userStore.Delete(ctx, userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("attempted to delete non-existent user", "user_id", userID)
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	log.Info("user deleted successfully", "user_id", userID)
	return nil
}

// Authenticate verifies a login. One bcrypt comparison runs whether or not
// the email is known.
func (s *UserServiceImpl) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.hasher.CompareDummy(password)
			log.Debug("login for unknown email")
		}
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login with wrong password", "user_id", user.ID)
		return nil, ErrInvalidPassword
	}

	return user, nil
}

func (s *UserServiceImpl) checkSelf(actorID, userID uint64) error {
	if s.enforceOwnership && actorID != userID {
		return ErrNotOwned
	}
	return nil
}
