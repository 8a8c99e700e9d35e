package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/service"
)

// PostHandler handles post-related HTTP requests.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// CreatePost handles POST /posts/createPost.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorID(w, r)
	if !ok {
		return
	}

	var req CreatePostRequest
	if !decodeAndValidate(w, r, &req, "") {
		return
	}

	authorID := actor
	if req.UserID != nil {
		authorID = *req.UserID
	}

	post, err := h.postService.CreatePost(r.Context(), req.Title, req.Content, authorID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContext(r.Context()).Info("post created",
		slog.Uint64("post_id", post.ID),
		slog.Uint64("user_id", post.UserID))
	shared.RespondWithJSON(w, r, http.StatusCreated, post)
}

// GetAllPosts handles GET /posts/getAllPosts.
func (h *PostHandler) GetAllPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.ListPosts(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if len(posts) == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "No posts found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, posts)
}

// GetPostByID handles GET /posts/getPostById/{id}.
func (h *PostHandler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", idErrorMessage("Post"))
	if !ok {
		return
	}

	post, err := h.postService.GetPost(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// UpdatePost handles PUT /posts/updatePost/{id}.
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", idErrorMessage("Post"))
	if !ok {
		return
	}
	actor, ok := actorID(w, r)
	if !ok {
		return
	}

	var req UpdatePostRequest
	if !decodeAndValidate(w, r, &req, "") {
		return
	}

	post, err := h.postService.UpdatePost(r.Context(), actor, id, service.PostPatch{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// DeletePost handles DELETE /posts/deletePost/{id}.
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", idErrorMessage("Post"))
	if !ok {
		return
	}
	actor, ok := actorID(w, r)
	if !ok {
		return
	}

	if err := h.postService.DeletePost(r.Context(), actor, id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, "Post deleted successfully")
}
