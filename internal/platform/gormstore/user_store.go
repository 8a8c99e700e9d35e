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

// GormUserStore implements store.UserStore on top of gorm.
type GormUserStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormUserStore creates a user store backed by db.
// If logger is nil, a default logger will be used.
func NewGormUserStore(db *gorm.DB, logger *slog.Logger) *GormUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GormUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

var _ store.UserStore = (*GormUserStore)(nil)

// Create implements store.UserStore.Create
func (s *GormUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rec := newUserRecord(user)
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(rec).Error; err != nil {
		mapped := mapEntityError(entityUser, "create", err, store.ErrUserNotFound, store.ErrEmailExists)
		if errors.Is(mapped, store.ErrEmailExists) {
			log.Debug("email already registered")
			return mapped
		}
		log.Error("failed to create user", slog.String("error", redact.Error(err)))
		return mapped
	}

	user.ID = rec.ID
	user.CreatedAt = rec.CreatedAt
	user.UpdatedAt = rec.UpdatedAt
	log.Info("user created", slog.Uint64("user_id", user.ID))
	return nil
}

// List implements store.UserStore.List
func (s *GormUserStore) List(ctx context.Context) ([]domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var recs []userRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		log.Error("failed to list users", slog.String("error", redact.Error(err)))
		return nil, mapEntityError(entityUser, "list", err, nil, nil)
	}

	users := make([]domain.User, 0, len(recs))
	for i := range recs {
		users = append(users, *recs[i].toDomain())
	}
	return users, nil
}

// GetByID implements store.UserStore.GetByID
func (s *GormUserStore) GetByID(ctx context.Context, id uint64) (*domain.User, error) {
	return s.getOne(ctx, "id = ?", id)
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *GormUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getOne(ctx, "email = ?", email)
}

func (s *GormUserStore) getOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var rec userRecord
	if err := s.db.WithContext(ctx).Where(query, arg).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Debug("user not found")
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user", slog.String("error", redact.Error(err)))
		return nil, mapEntityError(entityUser, "get", err, nil, nil)
	}
	return rec.toDomain(), nil
}

// Update implements store.UserStore.Update
func (s *GormUserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user.UpdatedAt = time.Now().UTC()
	result := s.db.WithContext(ctx).
		Model(&userRecord{ID: user.ID}).
		Select("username", "email", "password", "updated_at").
		Updates(&userRecord{
			Username:  user.Username,
			Email:     user.Email,
			Password:  user.HashedPassword,
			UpdatedAt: user.UpdatedAt,
		})
	if err := checkRowsAffected(result, store.ErrUserNotFound); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("user not found for update", slog.Uint64("user_id", user.ID))
			return err
		}
		mapped := mapEntityError(entityUser, "update", err, store.ErrUserNotFound, store.ErrEmailExists)
		if !errors.Is(mapped, store.ErrEmailExists) {
			log.Error("failed to update user",
				slog.Uint64("user_id", user.ID),
				slog.String("error", redact.Error(err)))
		}
		return mapped
	}

	log.Info("user updated", slog.Uint64("user_id", user.ID))
	return nil
}

// Delete implements store.UserStore.Delete
func (s *GormUserStore) Delete(ctx context.Context, id uint64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result := s.db.WithContext(ctx).Delete(&userRecord{}, id)
	if err := checkRowsAffected(result, store.ErrUserNotFound); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return err
		}
		log.Error("failed to delete user",
			slog.Uint64("user_id", id),
			slog.String("error", redact.Error(err)))
		return mapEntityError(entityUser, "delete", err, store.ErrUserNotFound, nil)
	}

	log.Info("user deleted", slog.Uint64("user_id", id))
	return nil
}
