package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

// MockPostStore implements store.PostStore in memory for testing.
type MockPostStore struct {
	CreateFn  func(ctx context.Context, post *domain.Post) error
	ListFn    func(ctx context.Context) ([]domain.Post, error)
	GetByIDFn func(ctx context.Context, id uint64) (*domain.Post, error)
	UpdateFn  func(ctx context.Context, post *domain.Post) error
	DeleteFn  func(ctx context.Context, id uint64) error

	mu        sync.Mutex
	Posts     map[uint64]*domain.Post
	nextID    uint64
	CallCount int
}

var _ store.PostStore = (*MockPostStore)(nil)

// NewMockPostStore creates an empty MockPostStore.
func NewMockPostStore() *MockPostStore {
	return &MockPostStore{Posts: make(map[uint64]*domain.Post)}
}

// Calls returns the number of store calls made so far.
func (m *MockPostStore) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CallCount
}

func (m *MockPostStore) record() {
	m.mu.Lock()
	m.CallCount++
	m.mu.Unlock()
}

// Create implements store.PostStore
func (m *MockPostStore) Create(ctx context.Context, post *domain.Post) error {
	m.record()
	if m.CreateFn != nil {
		return m.CreateFn(ctx, post)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	post.ID = m.nextID
	now := time.Now().UTC()
	post.CreatedAt, post.UpdatedAt = now, now
	stored := *post
	m.Posts[post.ID] = &stored
	return nil
}

// List implements store.PostStore
func (m *MockPostStore) List(ctx context.Context) ([]domain.Post, error) {
	m.record()
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	posts := make([]domain.Post, 0, len(m.Posts))
	for _, p := range m.Posts {
		posts = append(posts, *p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

// GetByID implements store.PostStore
func (m *MockPostStore) GetByID(ctx context.Context, id uint64) (*domain.Post, error) {
	m.record()
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.Posts[id]
	if !ok {
		return nil, store.ErrPostNotFound
	}
	out := *p
	return &out, nil
}

// Update implements store.PostStore
func (m *MockPostStore) Update(ctx context.Context, post *domain.Post) error {
	m.record()
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, post)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.Posts[post.ID]
	if !ok {
		return store.ErrPostNotFound
	}
	existing.Title = post.Title
	existing.Content = post.Content
	existing.UpdatedAt = time.Now().UTC()
	post.UpdatedAt = existing.UpdatedAt
	return nil
}

// Delete implements store.PostStore
func (m *MockPostStore) Delete(ctx context.Context, id uint64) error {
	m.record()
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Posts[id]; !ok {
		return store.ErrPostNotFound
	}
	delete(m.Posts, id)
	return nil
}

// MockCommentStore implements store.CommentStore in memory for testing.
type MockCommentStore struct {
	CreateFn     func(ctx context.Context, comment *domain.Comment) error
	ListByPostFn func(ctx context.Context, postID uint64) ([]domain.Comment, error)

	mu        sync.Mutex
	Comments  []domain.Comment
	CallCount int
}

var _ store.CommentStore = (*MockCommentStore)(nil)

// Calls returns the number of store calls made so far.
func (m *MockCommentStore) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CallCount
}

// Create implements store.CommentStore
func (m *MockCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	m.mu.Lock()
	m.CallCount++
	m.mu.Unlock()
	if m.CreateFn != nil {
		return m.CreateFn(ctx, comment)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	comment.ID = uint64(len(m.Comments) + 1)
	now := time.Now().UTC()
	comment.CreatedAt, comment.UpdatedAt = now, now
	m.Comments = append(m.Comments, *comment)
	return nil
}

// ListByPost implements store.CommentStore
func (m *MockCommentStore) ListByPost(ctx context.Context, postID uint64) ([]domain.Comment, error) {
	m.mu.Lock()
	m.CallCount++
	m.mu.Unlock()
	if m.ListByPostFn != nil {
		return m.ListByPostFn(ctx, postID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Comment{}
	for _, c := range m.Comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

// MockCategoryStore implements store.CategoryStore in memory for testing.
type MockCategoryStore struct {
	CreateForPostFn func(ctx context.Context, category *domain.Category, postID uint64) (*domain.PostCategory, error)
	ListByPostFn    func(ctx context.Context, postID uint64) ([]domain.Category, error)

	mu         sync.Mutex
	Categories []domain.Category
	Links      []domain.PostCategory
	CallCount  int
}

var _ store.CategoryStore = (*MockCategoryStore)(nil)

// Calls returns the number of store calls made so far.
func (m *MockCategoryStore) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CallCount
}

// CreateForPost implements store.CategoryStore
func (m *MockCategoryStore) CreateForPost(
	ctx context.Context,
	category *domain.Category,
	postID uint64,
) (*domain.PostCategory, error) {
	m.mu.Lock()
	m.CallCount++
	m.mu.Unlock()
	if m.CreateForPostFn != nil {
		return m.CreateForPostFn(ctx, category, postID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	category.ID = uint64(len(m.Categories) + 1)
	now := time.Now().UTC()
	category.CreatedAt, category.UpdatedAt = now, now
	m.Categories = append(m.Categories, *category)
	link := domain.PostCategory{PostID: postID, CategoryID: category.ID, CreatedAt: now}
	m.Links = append(m.Links, link)
	return &link, nil
}

// ListByPost implements store.CategoryStore
func (m *MockCategoryStore) ListByPost(ctx context.Context, postID uint64) ([]domain.Category, error) {
	m.mu.Lock()
	m.CallCount++
	m.mu.Unlock()
	if m.ListByPostFn != nil {
		return m.ListByPostFn(ctx, postID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Category{}
	for _, l := range m.Links {
		if l.PostID != postID {
			continue
		}
		for _, c := range m.Categories {
			if c.ID == l.CategoryID {
				out = append(out, c)
			}
		}
	}
	return out, nil
}
