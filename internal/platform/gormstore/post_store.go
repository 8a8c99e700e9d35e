package gormstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/redact"
	"github.com/phrazzld/blog-api/internal/store"
)

// GormPostStore implements store.PostStore on top of gorm.
type GormPostStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormPostStore creates a post store backed by db.
// If logger is nil, a default logger will be used.
func NewGormPostStore(db *gorm.DB, logger *slog.Logger) *GormPostStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GormPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

var _ store.PostStore = (*GormPostStore)(nil)

// Create implements store.PostStore.Create
// Returns store.ErrReferenceNotFound if the author does not exist.
func (s *GormPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during create", slog.String("error", err.Error()))
		return err
	}

	rec := newPostRecord(post)
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(rec).Error; err != nil {
		mapped := mapEntityError(entityPost, "create", err, nil, nil)
		if errors.Is(mapped, store.ErrReferenceNotFound) {
			log.Warn("post author does not exist", slog.Uint64("user_id", post.UserID))
			return mapped
		}
		log.Error("failed to create post",
			slog.Uint64("user_id", post.UserID),
			slog.String("error", redact.Error(err)))
		return mapped
	}

	post.ID = rec.ID
	post.CreatedAt = rec.CreatedAt
	post.UpdatedAt = rec.UpdatedAt
	if post.Categories == nil {
		post.Categories = []domain.Category{}
	}
	if post.Comments == nil {
		post.Comments = []domain.Comment{}
	}
	log.Info("post created",
		slog.Uint64("post_id", post.ID),
		slog.Uint64("user_id", post.UserID))
	return nil
}

// List implements store.PostStore.List
func (s *GormPostStore) List(ctx context.Context) ([]domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var recs []postRecord
	if err := s.withRelations(ctx).Order("posts.id").Find(&recs).Error; err != nil {
		log.Error("failed to list posts", slog.String("error", redact.Error(err)))
		return nil, mapEntityError(entityPost, "list", err, nil, nil)
	}

	posts := make([]domain.Post, 0, len(recs))
	for i := range recs {
		posts = append(posts, *recs[i].toDomain())
	}
	return posts, nil
}

// GetByID implements store.PostStore.GetByID
func (s *GormPostStore) GetByID(ctx context.Context, id uint64) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var rec postRecord
	if err := s.withRelations(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Debug("post not found", slog.Uint64("post_id", id))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post",
			slog.Uint64("post_id", id),
			slog.String("error", redact.Error(err)))
		return nil, mapEntityError(entityPost, "get", err, nil, nil)
	}
	return rec.toDomain(), nil
}

// Update implements store.PostStore.Update
func (s *GormPostStore) Update(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	post.UpdatedAt = time.Now().UTC()
	result := s.db.WithContext(ctx).
		Model(&postRecord{ID: post.ID}).
		Select("title", "content", "updated_at").
		Updates(&postRecord{
			Title:     post.Title,
			Content:   post.Content,
			UpdatedAt: post.UpdatedAt,
		})
	if err := checkRowsAffected(result, store.ErrPostNotFound); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			log.Debug("post not found for update", slog.Uint64("post_id", post.ID))
			return err
		}
		log.Error("failed to update post",
			slog.Uint64("post_id", post.ID),
			slog.String("error", redact.Error(err)))
		return mapEntityError(entityPost, "update", err, store.ErrPostNotFound, nil)
	}

	log.Info("post updated", slog.Uint64("post_id", post.ID))
	return nil
}

// Delete implements store.PostStore.Delete
// Comments and category links go with the post through ON DELETE CASCADE.
func (s *GormPostStore) Delete(ctx context.Context, id uint64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result := s.db.WithContext(ctx).Delete(&postRecord{}, id)
	if err := checkRowsAffected(result, store.ErrPostNotFound); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return err
		}
		log.Error("failed to delete post",
			slog.Uint64("post_id", id),
			slog.String("error", redact.Error(err)))
		return mapEntityError(entityPost, "delete", err, store.ErrPostNotFound, nil)
	}

	log.Info("post deleted", slog.Uint64("post_id", id))
	return nil
}

func (s *GormPostStore) withRelations(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("User").
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("categories.id")
		}).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.id")
		})
}
