package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/blog-api/internal/api/middleware"
	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/mocks"
	"github.com/phrazzld/blog-api/internal/service"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
)

const (
	testToken  = "valid-token"
	testActor  = uint64(1)
	authHeader = "Bearer " + testToken
)

// testEnv is a router wired to real services over in-memory mock stores.
type testEnv struct {
	router     http.Handler
	users      *mocks.MockUserStore
	posts      *mocks.MockPostStore
	comments   *mocks.MockCommentStore
	categories *mocks.MockCategoryStore
	hasher     *mocks.MockPasswordHasher
	jwt        *mocks.MockJWTService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		users:      mocks.NewMockUserStore(),
		posts:      mocks.NewMockPostStore(),
		comments:   &mocks.MockCommentStore{},
		categories: &mocks.MockCategoryStore{},
		hasher:     &mocks.MockPasswordHasher{},
	}
	env.jwt = &mocks.MockJWTService{
		Token:    "issued-token",
		Lifetime: time.Hour,
		ValidateTokenFn: func(_ context.Context, token string) (*auth.Claims, error) {
			if token != testToken {
				return nil, auth.ErrInvalidSignature
			}
			return &auth.Claims{UserID: testActor}, nil
		},
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	userService := service.NewUserService(env.users, env.hasher, false, log)
	postService := service.NewPostService(env.posts, env.comments, env.categories, false, log)

	r := chi.NewRouter()
	r.Use(middleware.TraceMiddleware(log))
	RegisterRoutes(r, Handlers{
		Users:      NewUserHandler(userService),
		Auth:       NewAuthHandler(userService, env.jwt),
		Posts:      NewPostHandler(postService),
		Comments:   NewCommentHandler(postService),
		Categories: NewCategoryHandler(postService),
	}, middleware.NewAuthMiddleware(env.jwt).Authenticate)
	env.router = r

	return env
}

// storeCalls is the total number of calls that reached any store.
func (e *testEnv) storeCalls() int {
	return e.users.Calls() + e.posts.Calls() + e.comments.Calls() + e.categories.Calls()
}

// do sends a request through the router. A nil body sends no body; header
// is the Authorization value, if any.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, header string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			payload, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewBuffer(payload)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if header != "" {
		req.Header.Set("Authorization", header)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// seedUser stores a user whose password is "password123".
func (e *testEnv) seedUser(t *testing.T, username, email string) uint64 {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/users/createUser", map[string]string{
		"username": username,
		"email":    email,
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID uint64 `json:"id"`
	}
	decodeBody(t, rec, &created)
	return created.ID
}

func (e *testEnv) seedPost(t *testing.T, title string) uint64 {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/posts/createPost", map[string]string{
		"title":   title,
		"content": "content of " + title,
	}, authHeader)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID uint64 `json:"id"`
	}
	decodeBody(t, rec, &created)
	return created.ID
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var resp shared.ErrorResponse
	decodeBody(t, rec, &resp)
	return resp
}

// errStoreDown simulates a driver failure carrying details that must never
// reach a client.
var errStoreDown = store.NewStoreError("post", "list", "query failed",
	errorString(`pq: relation "posts" does not exist at db.internal:5432`))

type errorString string

func (e errorString) Error() string { return string(e) }

var errStoreReference = store.NewStoreError("post", "create", "insert failed", store.ErrReferenceNotFound)
