package gormstore

import (
	"time"

	"github.com/phrazzld/blog-api/internal/domain"
)

// Persistence models. The schema itself is owned by the goose migrations;
// these structs only describe it to gorm.

type userRecord struct {
	ID        uint64 `gorm:"primaryKey"`
	Username  string `gorm:"not null"`
	Email     string `gorm:"not null;uniqueIndex"`
	Password  string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (userRecord) TableName() string { return "users" }

type postRecord struct {
	ID         uint64           `gorm:"primaryKey"`
	Title      string           `gorm:"not null"`
	Content    string           `gorm:"not null"`
	UserID     uint64           `gorm:"not null;index"`
	User       *userRecord      `gorm:"foreignKey:UserID"`
	Categories []categoryRecord `gorm:"many2many:posts_categories;joinForeignKey:PostID;joinReferences:CategoryID"`
	Comments   []commentRecord  `gorm:"foreignKey:PostID"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (postRecord) TableName() string { return "posts" }

type commentRecord struct {
	ID        uint64 `gorm:"primaryKey"`
	Content   string `gorm:"not null"`
	PostID    uint64 `gorm:"not null;index"`
	UserID    uint64 `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (commentRecord) TableName() string { return "comments" }

type categoryRecord struct {
	ID          uint64 `gorm:"primaryKey"`
	Description string `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (categoryRecord) TableName() string { return "categories" }

type postCategoryRecord struct {
	PostID     uint64 `gorm:"primaryKey;autoIncrement:false"`
	CategoryID uint64 `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt  time.Time
}

func (postCategoryRecord) TableName() string { return "posts_categories" }

func newUserRecord(u *domain.User) *userRecord {
	return &userRecord{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.HashedPassword,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (r *userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:             r.ID,
		Username:       r.Username,
		Email:          r.Email,
		HashedPassword: r.Password,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func newPostRecord(p *domain.Post) *postRecord {
	return &postRecord{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		UserID:    p.UserID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (r *postRecord) toDomain() *domain.Post {
	post := &domain.Post{
		ID:         r.ID,
		Title:      r.Title,
		Content:    r.Content,
		UserID:     r.UserID,
		Categories: make([]domain.Category, 0, len(r.Categories)),
		Comments:   make([]domain.Comment, 0, len(r.Comments)),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if r.User != nil {
		post.User = r.User.toDomain()
	}
	for i := range r.Categories {
		post.Categories = append(post.Categories, *r.Categories[i].toDomain())
	}
	for i := range r.Comments {
		post.Comments = append(post.Comments, *r.Comments[i].toDomain())
	}
	return post
}

func newCommentRecord(c *domain.Comment) *commentRecord {
	return &commentRecord{
		ID:        c.ID,
		Content:   c.Content,
		PostID:    c.PostID,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *commentRecord) toDomain() *domain.Comment {
	return &domain.Comment{
		ID:        r.ID,
		Content:   r.Content,
		PostID:    r.PostID,
		UserID:    r.UserID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func newCategoryRecord(c *domain.Category) *categoryRecord {
	return &categoryRecord{
		ID:          c.ID,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (r *categoryRecord) toDomain() *domain.Category {
	return &domain.Category{
		ID:          r.ID,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *postCategoryRecord) toDomain() *domain.PostCategory {
	return &domain.PostCategory{
		PostID:     r.PostID,
		CategoryID: r.CategoryID,
		CreatedAt:  r.CreatedAt,
	}
}
