package database

import (
	"time"
)

type UsersAttrs struct {
	Email        string
	Name         string
	Role         UserRole
	PasswordHash string
}

type CategoriesAttrs struct {
	Name        string
	Slug        string
	Description string
	Color       string
}

type TagAttrs struct {
	Name  string
	Slug  string
	Color string
}

type PostsAttrs struct {
	AuthorID     uint64
	CategoryUUID string
	TagUUIDs     []string
	Slug         string
	Title        string
	Excerpt      string
	Content      string
	ImageURL     string
	Status       PostStatus
	Published    bool
	// PublishedAt backdates imported content; it only sticks when the
	// post lands in a published state.
	PublishedAt *time.Time
}

// PostsUpdateAttrs carries optional fields for partial updates; nil pointers
// leave the stored value untouched.
type PostsUpdateAttrs struct {
	Title        *string
	Slug         *string
	Excerpt      *string
	Content      *string
	ImageURL     *string
	CategoryUUID *string
	TagUUIDs     *[]string
	Status       *PostStatus
	Published    *bool
}

type PublicationState struct {
	Published   bool
	Status      PostStatus
	PublishedAt *time.Time
}
