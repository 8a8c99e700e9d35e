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

// GormCategoryStore implements store.CategoryStore on top of gorm.
type GormCategoryStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormCategoryStore creates a category store backed by db.
func NewGormCategoryStore(db *gorm.DB, logger *slog.Logger) *GormCategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GormCategoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "category_store")),
	}
}

var _ store.CategoryStore = (*GormCategoryStore)(nil)

// CreateForPost implements store.CategoryStore.CreateForPost
// The category row and its posts_categories link commit together or not at all.
func (s *GormCategoryStore) CreateForPost(
	ctx context.Context,
	category *domain.Category,
	postID uint64,
) (*domain.PostCategory, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		log.Warn("category validation failed during create", slog.String("error", err.Error()))
		return nil, err
	}

	catRec := newCategoryRecord(category)
	var link postCategoryRecord

	err := RunInTransaction(logger.WithLogger(ctx, log), s.db, func(tx *gorm.DB) error {
		if err := tx.Create(catRec).Error; err != nil {
			return err
		}
		link = postCategoryRecord{PostID: postID, CategoryID: catRec.ID}
		return tx.Create(&link).Error
	})
	if err != nil {
		mapped := mapEntityError(entityCategory, "create", err, nil, nil)
		if errors.Is(mapped, store.ErrReferenceNotFound) {
			log.Warn("category target post does not exist", slog.Uint64("post_id", postID))
			return nil, mapped
		}
		log.Error("failed to create category",
			slog.Uint64("post_id", postID),
			slog.String("error", redact.Error(err)))
		return nil, mapped
	}

	category.ID = catRec.ID
	category.CreatedAt = catRec.CreatedAt
	category.UpdatedAt = catRec.UpdatedAt
	log.Info("category created",
		slog.Uint64("category_id", category.ID),
		slog.Uint64("post_id", postID))
	return link.toDomain(), nil
}

// ListByPost implements store.CategoryStore.ListByPost
func (s *GormCategoryStore) ListByPost(ctx context.Context, postID uint64) ([]domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var recs []categoryRecord
	err := s.db.WithContext(ctx).
		Joins("JOIN posts_categories ON posts_categories.category_id = categories.id").
		Where("posts_categories.post_id = ?", postID).
		Order("categories.id").
		Find(&recs).Error
	if err != nil {
		log.Error("failed to list categories",
			slog.Uint64("post_id", postID),
			slog.String("error", redact.Error(err)))
		return nil, mapEntityError(entityCategory, "list", err, nil, nil)
	}

	categories := make([]domain.Category, 0, len(recs))
	for i := range recs {
		categories = append(categories, *recs[i].toDomain())
	}
	return categories, nil
}
