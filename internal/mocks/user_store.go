package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

// MockUserStore implements store.UserStore in memory for testing.
// Function fields override the default behavior; CallCount counts every
// method call so tests can assert a request never reached the store.
type MockUserStore struct {
	CreateFn     func(ctx context.Context, user *domain.User) error
	ListFn       func(ctx context.Context) ([]domain.User, error)
	GetByIDFn    func(ctx context.Context, id uint64) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	UpdateFn     func(ctx context.Context, user *domain.User) error
	DeleteFn     func(ctx context.Context, id uint64) error

	mu        sync.Mutex
	Users     map[uint64]*domain.User
	nextID    uint64
	CallCount int
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{Users: make(map[uint64]*domain.User)}
}

// Calls returns the number of store calls made so far.
func (m *MockUserStore) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CallCount
}

func (m *MockUserStore) record() {
	m.mu.Lock()
	m.CallCount++
	m.mu.Unlock()
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	m.record()
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.Users {
		if u.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	m.nextID++
	user.ID = m.nextID
	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now
	stored := *user
	m.Users[user.ID] = &stored
	return nil
}

// List implements the UserStore interface
func (m *MockUserStore) List(ctx context.Context) ([]domain.User, error) {
	m.record()
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]domain.User, 0, len(m.Users))
	for _, u := range m.Users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id uint64) (*domain.User, error) {
	m.record()
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.Users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

// GetByEmail implements the UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.record()
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.Users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// Update implements the UserStore interface
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	m.record()
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Users[user.ID]; !ok {
		return store.ErrUserNotFound
	}
	for id, u := range m.Users {
		if id != user.ID && u.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	user.UpdatedAt = time.Now().UTC()
	stored := *user
	stored.Password = ""
	m.Users[user.ID] = &stored
	return nil
}

// Delete implements the UserStore interface
func (m *MockUserStore) Delete(ctx context.Context, id uint64) error {
	m.record()
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(m.Users, id)
	return nil
}
