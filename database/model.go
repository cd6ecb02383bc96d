package database

import (
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

const DriverName = "postgres"

type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleWriter UserRole = "WRITER"
	RoleUser   UserRole = "USER"
)

// ParseUserRole normalises free-form input into a role constant.
func ParseUserRole(value string) UserRole {
	return UserRole(strings.ToUpper(strings.TrimSpace(value)))
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleWriter, RoleUser:
		return true
	}

	return false
}

type PostStatus string

const (
	StatusDraft     PostStatus = "DRAFT"
	StatusPublished PostStatus = "PUBLISHED"
	StatusArchived  PostStatus = "ARCHIVED"
)

func (s PostStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}

	return false
}

const DefaultCategoryColor = "#3B82F6"
const DefaultTagColor = "#10B981"

type User struct {
	ID              uint64 `gorm:"primaryKey"`
	UUID            string `gorm:"uniqueIndex;not null"`
	Email           string `gorm:"uniqueIndex;not null"`
	Name            string `gorm:"not null"`
	Role            UserRole
	PasswordHash    string `gorm:"not null"`
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`

	Posts []Post `gorm:"foreignKey:AuthorID"`
}

type Post struct {
	ID               uint64 `gorm:"primaryKey"`
	UUID             string `gorm:"uniqueIndex;not null"`
	AuthorID         uint64 `gorm:"index;not null"`
	CategoryID       *uint64
	Slug             string `gorm:"uniqueIndex;not null"`
	Title            string `gorm:"not null"`
	Excerpt          string
	Content          string `gorm:"not null"`
	FeaturedImageURL string
	Status           PostStatus `gorm:"not null"`
	Published        bool       `gorm:"not null"`
	PublishedAt      *time.Time `gorm:"index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`

	Author   User      `gorm:"foreignKey:AuthorID"`
	Category *Category `gorm:"foreignKey:CategoryID"`
	Tags     []Tag     `gorm:"many2many:post_tags"`
}

type Category struct {
	ID          uint64 `gorm:"primaryKey"`
	UUID        string `gorm:"uniqueIndex;not null"`
	Name        string `gorm:"uniqueIndex;not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Description string
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Posts []Post `gorm:"foreignKey:CategoryID"`
}

type Tag struct {
	ID        uint64 `gorm:"primaryKey"`
	UUID      string `gorm:"uniqueIndex;not null"`
	Name      string `gorm:"uniqueIndex;not null"`
	Slug      string `gorm:"uniqueIndex;not null"`
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type PostTag struct {
	PostID    uint64 `gorm:"primaryKey"`
	TagID     uint64 `gorm:"primaryKey"`
	CreatedAt time.Time
}

func GetSchemaTables() []string {
	return []string{
		"users",
		"categories",
		"tags",
		"posts",
		"post_tags",
	}
}

var tableNamePattern = regexp.MustCompile(`^[a-z_]{1,64}$`)

func isValidTable(name string) bool {
	if !tableNamePattern.MatchString(name) {
		return false
	}

	for _, table := range GetSchemaTables() {
		if table == name {
			return true
		}
	}

	return false
}
