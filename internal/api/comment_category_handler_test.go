package api

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

func TestCreateComment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		payload     interface{}
		createErr   error
		wantStatus  int
		wantError   string
		wantMessage string
	}{
		{
			name:       "valid comment",
			payload:    map[string]interface{}{"content": "Nice post", "postId": 1},
			wantStatus: http.StatusCreated,
		},
		{
			name:        "missing content",
			payload:     map[string]interface{}{"postId": 1},
			wantStatus:  http.StatusBadRequest,
			wantError:   "content is required",
			wantMessage: MsgCommentFieldsRequired,
		},
		{
			name:        "missing post id",
			payload:     map[string]interface{}{"content": "Nice post"},
			wantStatus:  http.StatusBadRequest,
			wantError:   "postId is required",
			wantMessage: MsgCommentFieldsRequired,
		},
		{
			name:       "post does not exist",
			payload:    map[string]interface{}{"content": "Nice post", "postId": 99},
			createErr:  store.ErrReferenceNotFound,
			wantStatus: http.StatusBadRequest,
			wantError:  "Referenced resource does not exist",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)
			if tt.createErr != nil {
				env.comments.CreateFn = func(context.Context, *domain.Comment) error { return tt.createErr }
			}

			rec := env.do(t, http.MethodPost, "/comments/createComment", tt.payload, authHeader)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantError != "" {
				body := errorBody(t, rec)
				assert.Equal(t, tt.wantError, body.Error)
				assert.Equal(t, tt.wantMessage, body.Message)
				return
			}

			var comment domain.Comment
			decodeBody(t, rec, &comment)
			assert.Equal(t, "Nice post", comment.Content)
			assert.Equal(t, uint64(1), comment.PostID)
			assert.Equal(t, testActor, comment.UserID)
		})
	}
}

func TestGetAllComments(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/comments/getAllComments/1", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No comments found for this post", errorBody(t, rec).Error)

	for _, content := range []string{"first", "second"} {
		rec = env.do(t, http.MethodPost, "/comments/createComment",
			map[string]interface{}{"content": content, "postId": 1}, authHeader)
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	rec = env.do(t, http.MethodPost, "/comments/createComment",
		map[string]interface{}{"content": "elsewhere", "postId": 2}, authHeader)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/comments/getAllComments/1", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var comments []domain.Comment
	decodeBody(t, rec, &comments)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "second", comments[1].Content)
}

func TestCreateCategory(t *testing.T) {
	t.Parallel()

	t.Run("creates category and association", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/categories/createCategory",
			map[string]interface{}{"description": "Go", "postId": 3}, authHeader)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var resp CreateCategoryResponse
		decodeBody(t, rec, &resp)
		require.NotNil(t, resp.Category)
		require.NotNil(t, resp.PostCategories)
		assert.Equal(t, "Go", resp.Category.Description)
		assert.Equal(t, uint64(3), resp.PostCategories.PostID)
		assert.Equal(t, resp.Category.ID, resp.PostCategories.CategoryID)
	})

	t.Run("missing description", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/categories/createCategory",
			map[string]interface{}{"postId": 3}, authHeader)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "description is required", errorBody(t, rec).Error)
		assert.Zero(t, env.categories.Calls())
	})

	t.Run("post does not exist", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		env.categories.CreateForPostFn = func(context.Context, *domain.Category, uint64) (*domain.PostCategory, error) {
			return nil, store.ErrReferenceNotFound
		}

		rec := env.do(t, http.MethodPost, "/categories/createCategory",
			map[string]interface{}{"description": "Go", "postId": 99}, authHeader)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetCategoriesByPostID(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/categories/getCategoriesByPostId/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, MsgInvalidPostIDFormat, errorBody(t, rec).Error)
	assert.Zero(t, env.categories.Calls())

	rec = env.do(t, http.MethodGet, "/categories/getCategoriesByPostId/3", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Categories not found", errorBody(t, rec).Error)

	for _, desc := range []string{"Go", "Databases"} {
		rec = env.do(t, http.MethodPost, "/categories/createCategory",
			map[string]interface{}{"description": desc, "postId": 3}, authHeader)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec = env.do(t, http.MethodGet, "/categories/getCategoriesByPostId/"+strconv.Itoa(3), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var categories []domain.Category
	decodeBody(t, rec, &categories)
	require.Len(t, categories, 2)
	assert.Equal(t, "Go", categories[0].Description)
	assert.Equal(t, "Databases", categories[1].Description)
}
