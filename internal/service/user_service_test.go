package service_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/mocks"
	"github.com/phrazzld/blog-api/internal/service"
	"github.com/phrazzld/blog-api/internal/store"
)

var testLogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

func strPtr(s string) *string { return &s }

func TestUserService_CreateUser(t *testing.T) {
	t.Parallel()

	t.Run("hashes the password", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		hasher := &mocks.MockPasswordHasher{}
		svc := service.NewUserService(users, hasher, false, testLogger)

		user, err := svc.CreateUser(context.Background(), " john ", "john@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), user.ID)
		assert.Equal(t, "john", user.Username)
		assert.Equal(t, "hashed:password123", user.HashedPassword)
		assert.Empty(t, user.Password)
		assert.Equal(t, 1, hasher.HashCallCount)
	})

	t.Run("validation errors never reach the store", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name     string
			username string
			email    string
			password string
			wantErr  error
		}{
			{"empty username", "", "a@example.com", "password123", domain.ErrEmptyUsername},
			{"bad email", "a", "not-an-email", "password123", domain.ErrInvalidEmail},
			{"short password", "a", "a@example.com", "12345", domain.ErrPasswordTooShort},
		}
		for _, tt := range tests {
			users := mocks.NewMockUserStore()
			svc := service.NewUserService(users, &mocks.MockPasswordHasher{}, false, testLogger)

			_, err := svc.CreateUser(context.Background(), tt.username, tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr, tt.name)
			assert.ErrorIs(t, err, domain.ErrValidation, tt.name)
			assert.Zero(t, users.Calls(), tt.name)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		svc := service.NewUserService(users, &mocks.MockPasswordHasher{}, false, testLogger)

		_, err := svc.CreateUser(context.Background(), "a", "dup@example.com", "password123")
		require.NoError(t, err)
		_, err = svc.CreateUser(context.Background(), "b", "dup@example.com", "password123")
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Parallel()

	existing := func() *domain.User {
		return &domain.User{ID: 5, Username: "old", Email: "old@example.com", HashedPassword: "hashed:oldpassword"}
	}

	t.Run("partial patch keeps other fields", func(t *testing.T) {
		t.Parallel()
		users := new(mocks.TestifyMockUserStore)
		users.On("GetByID", mock.Anything, uint64(5)).Return(existing(), nil)
		users.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.ID == 5 &&
				u.Username == "new" &&
				u.Email == "old@example.com" &&
				u.HashedPassword == "hashed:oldpassword"
		})).Return(nil)

		hasher := &mocks.MockPasswordHasher{}
		svc := service.NewUserService(users, hasher, false, testLogger)

		user, err := svc.UpdateUser(context.Background(), 9, 5, service.UserPatch{Username: strPtr("new")})
		require.NoError(t, err)
		assert.Equal(t, "new", user.Username)
		assert.Zero(t, hasher.HashCallCount)
		users.AssertExpectations(t)
	})

	t.Run("password change re-hashes", func(t *testing.T) {
		t.Parallel()
		users := new(mocks.TestifyMockUserStore)
		users.On("GetByID", mock.Anything, uint64(5)).Return(existing(), nil)
		users.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.HashedPassword == "hashed:newpassword" && u.Password == ""
		})).Return(nil)

		svc := service.NewUserService(users, &mocks.MockPasswordHasher{}, false, testLogger)

		_, err := svc.UpdateUser(context.Background(), 5, 5, service.UserPatch{Password: strPtr("newpassword")})
		require.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("present empty field is rejected", func(t *testing.T) {
		t.Parallel()
		users := new(mocks.TestifyMockUserStore)
		users.On("GetByID", mock.Anything, uint64(5)).Return(existing(), nil)

		svc := service.NewUserService(users, &mocks.MockPasswordHasher{}, false, testLogger)

		_, err := svc.UpdateUser(context.Background(), 5, 5, service.UserPatch{Username: strPtr("")})
		assert.ErrorIs(t, err, domain.ErrEmptyUsername)
		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("user not found", func(t *testing.T) {
		t.Parallel()
		users := new(mocks.TestifyMockUserStore)
		users.On("GetByID", mock.Anything, uint64(5)).Return(nil, store.ErrUserNotFound)

		svc := service.NewUserService(users, &mocks.MockPasswordHasher{}, false, testLogger)

		_, err := svc.UpdateUser(context.Background(), 5, 5, service.UserPatch{Username: strPtr("x")})
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("ownership enforced", func(t *testing.T) {
		t.Parallel()
		users := new(mocks.TestifyMockUserStore)
		users.On("GetByID", mock.Anything, uint64(5)).Return(existing(), nil)
		svc := service.NewUserService(users, &mocks.MockPasswordHasher{}, true, testLogger)

		_, err := svc.UpdateUser(context.Background(), 6, 5, service.UserPatch{Username: strPtr("x")})
		assert.ErrorIs(t, err, service.ErrNotOwned)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)

		assert.ErrorIs(t, svc.DeleteUser(context.Background(), 6, 5), service.ErrNotOwned)
		users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing user is not found before ownership", func(t *testing.T) {
		t.Parallel()
		users := new(mocks.TestifyMockUserStore)
		users.On("GetByID", mock.Anything, uint64(5)).Return(nil, store.ErrUserNotFound)
		svc := service.NewUserService(users, &mocks.MockPasswordHasher{}, true, testLogger)

		_, err := svc.UpdateUser(context.Background(), 6, 5, service.UserPatch{Username: strPtr("x")})
		assert.ErrorIs(t, err, store.ErrUserNotFound)
		assert.NotErrorIs(t, err, domain.ErrForbidden)

		err = svc.DeleteUser(context.Background(), 6, 5)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
		assert.NotErrorIs(t, err, domain.ErrForbidden)
		users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserStore()
	svc := service.NewUserService(users, &mocks.MockPasswordHasher{}, false, testLogger)
	user, err := svc.CreateUser(context.Background(), "a", "a@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(context.Background(), 99, user.ID))
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), 99, user.ID), store.ErrUserNotFound)
}

func TestUserService_Authenticate(t *testing.T) {
	t.Parallel()

	setup := func() (service.UserService, *mocks.MockPasswordHasher) {
		users := mocks.NewMockUserStore()
		hasher := &mocks.MockPasswordHasher{}
		svc := service.NewUserService(users, hasher, false, testLogger)
		_, err := svc.CreateUser(context.Background(), "john", "john@example.com", "password123")
		require.NoError(t, err)
		return svc, hasher
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		svc, _ := setup()
		user, err := svc.Authenticate(context.Background(), "john@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "john", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		svc, _ := setup()
		_, err := svc.Authenticate(context.Background(), "john@example.com", "nope")
		assert.ErrorIs(t, err, service.ErrInvalidPassword)
	})

	t.Run("unknown email still compares", func(t *testing.T) {
		t.Parallel()
		svc, hasher := setup()
		_, err := svc.Authenticate(context.Background(), "ghost@example.com", "password123")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
		assert.Equal(t, 1, hasher.CompareDummyCallCount)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("connection reset")
		users := &mocks.MockUserStore{GetByEmailFn: func(context.Context, string) (*domain.User, error) {
			return nil, boom
		}}
		hasher := &mocks.MockPasswordHasher{}
		svc := service.NewUserService(users, hasher, false, testLogger)
		_, err := svc.Authenticate(context.Background(), "john@example.com", "password123")
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, hasher.CompareDummyCallCount)
	})
}
