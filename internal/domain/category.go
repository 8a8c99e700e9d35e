package domain

import (
	"fmt"
	"strings"
	"time"
)

// ErrEmptyDescription is returned when a category has no description.
var ErrEmptyDescription = fmt.Errorf("%w: description cannot be empty", ErrValidation)

// Category labels posts. A category may label many posts and a post may
// carry many categories; PostCategory is the association row.
type Category struct {
	ID          uint64    `json:"id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PostCategory links one post to one category.
type PostCategory struct {
	PostID     uint64    `json:"postId"`
	CategoryID uint64    `json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewCategory creates a validated Category.
func NewCategory(description string) (*Category, error) {
	now := time.Now().UTC()
	category := &Category{
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks the required fields of a Category.
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Description) == "" {
		return ErrEmptyDescription
	}
	return nil
}
