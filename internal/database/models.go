package database

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleSuperAdmin = "super_admin"
	RoleEditor     = "editor"
)

// User represents an editorial account. Email is the sole login
// identifier and is unique, stored case-sensitive.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Username     string    `json:"username"`
	Email        string    `json:"email" gorm:"uniqueIndex"`
	FullName     *string   `json:"full_name"`
	Bio          *string   `json:"bio"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role" gorm:"default:'editor'"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) TableName() string {
	return "cms.user"
}

type Category struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug" gorm:"uniqueIndex"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Category) TableName() string {
	return "cms.category"
}

type Article struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug" gorm:"index"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	FeaturedImage *string    `json:"featured_image"`
	CategoryID    *uuid.UUID `json:"category_id" gorm:"type:uuid"`
	AuthorID      *uuid.UUID `json:"author_id" gorm:"type:uuid"`
	Views         int        `json:"views" gorm:"default:0"`
	IsFeatured    bool       `json:"is_featured" gorm:"default:false"`
	PublishedAt   *time.Time `json:"publishedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Author   *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

func (a *Article) TableName() string {
	return "cms.article"
}
