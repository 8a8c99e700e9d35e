package api

import (
	"net/http"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/service"
)

// MsgInvalidPostIDFormat answers a non-numeric post id on the category routes.
const MsgInvalidPostIDFormat = "Invalid post ID format"

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	postService service.PostService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(postService service.PostService) *CategoryHandler {
	return &CategoryHandler{postService: postService}
}

// CreateCategory handles POST /categories/createCategory. The category and
// its association with the post are created together or not at all.
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if !decodeAndValidate(w, r, &req, "") {
		return
	}

	category, link, err := h.postService.CreateCategory(r.Context(), req.Description, req.PostID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreateCategoryResponse{
		Category:       category,
		PostCategories: link,
	})
}

// GetCategoriesByPostID handles GET /categories/getCategoriesByPostId/{postId}.
func (h *CategoryHandler) GetCategoriesByPostID(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "postId", MsgInvalidPostIDFormat)
	if !ok {
		return
	}

	categories, err := h.postService.ListCategories(r.Context(), postID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, categories)
}
