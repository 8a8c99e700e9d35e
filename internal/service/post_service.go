package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
)

// PostPatch lists the post fields an update may change. Nil means unchanged.
type PostPatch struct {
	Title   *string
	Content *string
}

// PostService provides post, comment and category operations.
type PostService interface {
	CreatePost(ctx context.Context, title, content string, userID uint64) (*domain.Post, error)
	ListPosts(ctx context.Context) ([]domain.Post, error)
	GetPost(ctx context.Context, postID uint64) (*domain.Post, error)

	// UpdatePost applies patch to the post. actorID is the authenticated caller.
	UpdatePost(ctx context.Context, actorID, postID uint64, patch PostPatch) (*domain.Post, error)

	// DeletePost removes the post with its comments and category links.
	DeletePost(ctx context.Context, actorID, postID uint64) error

	CreateComment(ctx context.Context, content string, postID, userID uint64) (*domain.Comment, error)
	ListComments(ctx context.Context, postID uint64) ([]domain.Comment, error)

	// CreateCategory stores a category and links it to postID atomically.
	CreateCategory(ctx context.Context, description string, postID uint64) (*domain.Category, *domain.PostCategory, error)
	ListCategories(ctx context.Context, postID uint64) ([]domain.Category, error)
}

type postServiceImpl struct {
	posts            store.PostStore
	comments         store.CommentStore
	categories       store.CategoryStore
	enforceOwnership bool
	logger           *slog.Logger
}

// NewPostService creates a PostService. When enforceOwnership is set, only
// the author may update or delete a post.
func NewPostService(
	posts store.PostStore,
	comments store.CommentStore,
	categories store.CategoryStore,
	enforceOwnership bool,
	logger *slog.Logger,
) PostService {
	if logger == nil {
		logger = slog.Default()
	}
	return &postServiceImpl{
		posts:            posts,
		comments:         comments,
		categories:       categories,
		enforceOwnership: enforceOwnership,
		logger:           logger.With("component", "post_service"),
	}
}

func (s *postServiceImpl) CreatePost(ctx context.Context, title, content string, userID uint64) (*domain.Post, error) {
	post, err := domain.NewPost(title, content, userID)
	if err != nil {
		return nil, err
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

func (s *postServiceImpl) ListPosts(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, postID uint64) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve post: %w", err)
	}
	return post, nil
}

func (s *postServiceImpl) UpdatePost(
	ctx context.Context,
	actorID, postID uint64,
	patch PostPatch,
) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve post for update: %w", err)
	}
	if err := s.checkOwner(actorID, post); err != nil {
		log.Warn("post update denied", "actor_id", actorID, "post_id", postID)
		return nil, err
	}

	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	if err := post.Validate(); err != nil {
		return nil, err
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	log.Info("post updated successfully", "post_id", postID)
	return post, nil
}

func (s *postServiceImpl) DeletePost(ctx context.Context, actorID, postID uint64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if s.enforceOwnership {
		post, err := s.posts.GetByID(ctx, postID)
		if err != nil {
			return fmt.Errorf("failed to retrieve post for delete: %w", err)
		}
		if err := s.checkOwner(actorID, post); err != nil {
			log.Warn("post delete denied", "actor_id", actorID, "post_id", postID)
			return err
		}
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			log.Debug("attempted to delete non-existent post", "post_id", postID)
		}
		return fmt.Errorf("failed to delete post: %w", err)
	}
	log.Info("post deleted successfully", "post_id", postID)
	return nil
}

func (s *postServiceImpl) CreateComment(
	ctx context.Context,
	content string,
	postID, userID uint64,
) (*domain.Comment, error) {
	comment, err := domain.NewComment(content, postID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

func (s *postServiceImpl) ListComments(ctx context.Context, postID uint64) ([]domain.Comment, error) {
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	if len(comments) == 0 {
		return nil, store.ErrCommentNotFound
	}
	return comments, nil
}

func (s *postServiceImpl) CreateCategory(
	ctx context.Context,
	description string,
	postID uint64,
) (*domain.Category, *domain.PostCategory, error) {
	if postID == 0 {
		return nil, nil, domain.ErrEmptyPostID
	}
	category, err := domain.NewCategory(description)
	if err != nil {
		return nil, nil, err
	}
	link, err := s.categories.CreateForPost(ctx, category, postID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, link, nil
}

func (s *postServiceImpl) ListCategories(ctx context.Context, postID uint64) ([]domain.Category, error) {
	categories, err := s.categories.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, store.ErrCategoryNotFound
	}
	return categories, nil
}

func (s *postServiceImpl) checkOwner(actorID uint64, post *domain.Post) error {
	if s.enforceOwnership && post.UserID != actorID {
		return ErrNotOwned
	}
	return nil
}
