package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/service"
)

// MsgCommentFieldsRequired accompanies every comment validation failure.
const MsgCommentFieldsRequired = "Comment content, post ID, and user ID are required"

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	postService service.PostService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(postService service.PostService) *CommentHandler {
	return &CommentHandler{postService: postService}
}

// CreateComment handles POST /comments/createComment.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorID(w, r)
	if !ok {
		return
	}

	var req CreateCommentRequest
	if !decodeAndValidate(w, r, &req, MsgCommentFieldsRequired) {
		return
	}

	authorID := actor
	if req.UserID != nil {
		authorID = *req.UserID
	}

	comment, err := h.postService.CreateComment(r.Context(), req.Content, req.PostID, authorID)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			shared.RespondWithErrorDetail(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), MsgCommentFieldsRequired)
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, comment)
}

// GetAllComments handles GET /comments/getAllComments/{postId}.
func (h *CommentHandler) GetAllComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "postId", idErrorMessage("Post"))
	if !ok {
		return
	}

	comments, err := h.postService.ListComments(r.Context(), postID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, comments)
}
