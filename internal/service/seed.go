package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

// Demo data created by SeedDemoData.
const (
	DemoUsername    = "John Doe"
	DemoEmail       = "johndoe@example.com"
	DemoPassword    = "password123"
	DemoPostTitle   = "Sample Post"
	DemoPostContent = "This is a sample post content."
)

// SeedDemoData creates the demo user and their sample post. It does nothing
// when the demo user already exists.
func SeedDemoData(ctx context.Context, users UserService, posts PostService, log *slog.Logger) (*domain.User, error) {
	if log == nil {
		log = slog.Default()
	}

	user, err := users.CreateUser(ctx, DemoUsername, DemoEmail, DemoPassword)
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Info("demo data already present", "email", DemoEmail)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to seed demo user: %w", err)
	}

	post, err := posts.CreatePost(ctx, DemoPostTitle, DemoPostContent, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to seed demo post: %w", err)
	}

	log.Info("seeded demo data", "user_id", user.ID, "post_id", post.ID)
	return user, nil
}
