package domain

import (
	"fmt"
	"strings"
	"time"
)

// Post validation errors
var (
	ErrEmptyTitle   = fmt.Errorf("%w: title cannot be empty", ErrValidation)
	ErrEmptyContent = fmt.Errorf("%w: content cannot be empty", ErrValidation)
	ErrEmptyUserID  = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)
)

// Post is an article written by a user. User, Categories and Comments are
// populated only by reads that load associations.
type Post struct {
	ID         uint64     `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	UserID     uint64     `json:"userId"`
	User       *User      `json:"user,omitempty"`
	Categories []Category `json:"categories"`
	Comments   []Comment  `json:"comments"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// NewPost creates a validated Post owned by userID.
func NewPost(title, content string, userID uint64) (*Post, error) {
	now := time.Now().UTC()
	post := &Post{
		Title:      title,
		Content:    content,
		UserID:     userID,
		Categories: []Category{},
		Comments:   []Comment{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks the required fields of a Post.
func (p *Post) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(p.Content) == "" {
		return ErrEmptyContent
	}
	if p.UserID == 0 {
		return ErrEmptyUserID
	}
	return nil
}
