package gormstore

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/redact"
	"github.com/phrazzld/blog-api/internal/store"
)

// GormCommentStore implements store.CommentStore on top of gorm.
type GormCommentStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormCommentStore creates a comment store backed by db.
func NewGormCommentStore(db *gorm.DB, logger *slog.Logger) *GormCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GormCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

var _ store.CommentStore = (*GormCommentStore)(nil)

// Create implements store.CommentStore.Create
func (s *GormCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		log.Warn("comment validation failed during create", slog.String("error", err.Error()))
		return err
	}

	rec := newCommentRecord(comment)
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		mapped := mapEntityError(entityComment, "create", err, nil, nil)
		if errors.Is(mapped, store.ErrReferenceNotFound) {
			log.Warn("comment references a missing post or user",
				slog.Uint64("post_id", comment.PostID),
				slog.Uint64("user_id", comment.UserID))
			return mapped
		}
		log.Error("failed to create comment",
			slog.Uint64("post_id", comment.PostID),
			slog.String("error", redact.Error(err)))
		return mapped
	}

	comment.ID = rec.ID
	comment.CreatedAt = rec.CreatedAt
	comment.UpdatedAt = rec.UpdatedAt
	log.Info("comment created",
		slog.Uint64("comment_id", comment.ID),
		slog.Uint64("post_id", comment.PostID))
	return nil
}

// ListByPost implements store.CommentStore.ListByPost
func (s *GormCommentStore) ListByPost(ctx context.Context, postID uint64) ([]domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var recs []commentRecord
	err := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("id").
		Find(&recs).Error
	if err != nil {
		log.Error("failed to list comments",
			slog.Uint64("post_id", postID),
			slog.String("error", redact.Error(err)))
		return nil, mapEntityError(entityComment, "list", err, nil, nil)
	}

	comments := make([]domain.Comment, 0, len(recs))
	for i := range recs {
		comments = append(comments, *recs[i].toDomain())
	}
	return comments, nil
}
