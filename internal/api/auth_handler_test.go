package api

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		payload    interface{}
		wantStatus int
		wantError  string
	}{
		{
			name:       "post with valid credentials",
			method:     http.MethodPost,
			payload:    map[string]string{"email": "john@example.com", "password": "password123"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "get with body",
			method:     http.MethodGet,
			payload:    map[string]string{"email": "john@example.com", "password": "password123"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing password",
			method:     http.MethodPost,
			payload:    map[string]string{"email": "john@example.com"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Email and password are required",
		},
		{
			name:       "empty body",
			method:     http.MethodGet,
			payload:    nil,
			wantStatus: http.StatusBadRequest,
			wantError:  "Email and password are required",
		},
		{
			name:       "invalid email",
			method:     http.MethodPost,
			payload:    map[string]string{"email": "john", "password": "password123"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Please provide a valid email address",
		},
		{
			name:       "unknown email",
			method:     http.MethodPost,
			payload:    map[string]string{"email": "nobody@example.com", "password": "password123"},
			wantStatus: http.StatusNotFound,
			wantError:  "User not found",
		},
		{
			name:       "wrong password",
			method:     http.MethodPost,
			payload:    map[string]string{"email": "john@example.com", "password": "wrong-password"},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid password",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)
			userID := env.seedUser(t, "John", "john@example.com")

			rec := env.do(t, tt.method, "/users/login", tt.payload, "")

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorBody(t, rec).Error)
				return
			}

			var resp struct {
				User struct {
					ID       uint64 `json:"id"`
					Email    string `json:"email"`
					Password string `json:"password"`
				} `json:"user"`
				Token     string `json:"token"`
				ExpiresAt string `json:"expiresAt"`
			}
			decodeBody(t, rec, &resp)
			assert.Equal(t, userID, resp.User.ID)
			assert.Empty(t, resp.User.Password)
			assert.Equal(t, "issued-token", resp.Token)

			expiresAt, err := time.Parse(time.RFC3339, resp.ExpiresAt)
			require.NoError(t, err)
			assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)
		})
	}
}

func TestLoginComparesEvenForUnknownEmail(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/users/login",
		map[string]string{"email": "nobody@example.com", "password": "password123"}, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 1, env.hasher.CompareDummyCallCount)
	assert.Equal(t, 0, env.hasher.CompareCallCount)
}

func TestLoginTokenFailure(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.seedUser(t, "John", "john@example.com")
	env.jwt.Err = errors.New("signing key unavailable")

	rec := env.do(t, http.MethodPost, "/users/login",
		map[string]string{"email": "john@example.com", "password": "password123"}, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, MsgInternalError, errorBody(t, rec).Error)
	assert.NotContains(t, rec.Body.String(), "signing key")
}
