package domain

import (
	"fmt"
	"strings"
	"time"
)

// ErrEmptyPostID is returned when a comment or category names no post.
var ErrEmptyPostID = fmt.Errorf("%w: post ID cannot be empty", ErrValidation)

// Comment is a reply attached to a post. Comments are never edited.
type Comment struct {
	ID        uint64    `json:"id"`
	Content   string    `json:"content"`
	PostID    uint64    `json:"postId"`
	UserID    uint64    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewComment creates a validated Comment by userID on postID.
func NewComment(content string, postID, userID uint64) (*Comment, error) {
	now := time.Now().UTC()
	comment := &Comment{
		Content:   content,
		PostID:    postID,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

// Validate checks the required fields of a Comment.
func (c *Comment) Validate() error {
	if strings.TrimSpace(c.Content) == "" {
		return ErrEmptyContent
	}
	if c.PostID == 0 {
		return ErrEmptyPostID
	}
	if c.UserID == 0 {
		return ErrEmptyUserID
	}
	return nil
}
