// Package seeder fills a local database with demo content so the API has
// something to serve straight after a fresh migration.
package seeder

import (
	"fmt"

	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/database/repository"
	"github.com/carmegar/blogpage/metal/env"
	"github.com/carmegar/blogpage/pkg/auth"
)

const demoPassword = "password-123"

type Seeder struct {
	env        *env.Environment
	users      *repository.Users
	categories *repository.Categories
	tags       *repository.Tags
	posts      *repository.Posts
}

func MakeSeeder(db *database.Connection, env *env.Environment) *Seeder {
	categories := &repository.Categories{DB: db}
	tags := &repository.Tags{DB: db}

	return &Seeder{
		env:        env,
		users:      &repository.Users{DB: db},
		categories: categories,
		tags:       tags,
		posts: &repository.Posts{
			DB:         db,
			Categories: categories,
			Tags:       tags,
		},
	}
}

func (s Seeder) Execute() error {
	if s.env.App.IsProduction() {
		return fmt.Errorf("refusing to seed a production environment")
	}

	admin, err := s.seedUser("Admin", "admin@example.com", database.RoleAdmin)

	if err != nil {
		return err
	}

	writer, err := s.seedUser("Writer", "writer@example.com", database.RoleWriter)

	if err != nil {
		return err
	}

	if _, err = s.seedUser("Reader", "reader@example.com", database.RoleUser); err != nil {
		return err
	}

	category, err := s.categories.Create(database.CategoriesAttrs{
		Name:        "Engineering",
		Slug:        "engineering",
		Description: "Notes on building and running software.",
	})

	if err != nil {
		return fmt.Errorf("seed category: %v", err)
	}

	var tagUUIDs []string

	for _, slug := range []string{"go", "databases", "http"} {
		tag, err := s.tags.Create(database.TagAttrs{Name: slug, Slug: slug})

		if err != nil {
			return fmt.Errorf("seed tag [%s]: %v", slug, err)
		}

		tagUUIDs = append(tagUUIDs, tag.UUID)
	}

	published := database.PostsAttrs{
		AuthorID:     writer.ID,
		CategoryUUID: category.UUID,
		TagUUIDs:     tagUUIDs,
		Slug:         "hello-world",
		Title:        "Hello, world",
		Excerpt:      "The obligatory first post.",
		Content:      "# Hello\n\nThis post exists so the public feed is never empty.",
		Status:       database.StatusPublished,
		Published:    true,
	}

	if _, err = s.posts.Create(published); err != nil {
		return fmt.Errorf("seed published post: %v", err)
	}

	draft := database.PostsAttrs{
		AuthorID: admin.ID,
		Slug:     "work-in-progress",
		Title:    "Work in progress",
		Excerpt:  "Drafts stay hidden from the public feed.",
		Content:  "Still being written.",
		Status:   database.StatusDraft,
	}

	if _, err = s.posts.Create(draft); err != nil {
		return fmt.Errorf("seed draft post: %v", err)
	}

	return nil
}

func (s Seeder) seedUser(name, email string, role database.UserRole) (*database.User, error) {
	hash, err := auth.HashPassword(demoPassword)

	if err != nil {
		return nil, fmt.Errorf("seed user [%s]: %v", email, err)
	}

	user, err := s.users.Create(database.UsersAttrs{
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: hash,
	})

	if err != nil {
		return nil, fmt.Errorf("seed user [%s]: %v", email, err)
	}

	return user, nil
}
