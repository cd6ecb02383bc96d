package repository_test

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/database/repository"
)

func newSQLiteConnection(t *testing.T) (*database.Connection, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database.NewConnectionFromGorm(db), db
}

func migrateSchema(t *testing.T, db *gorm.DB) {
	t.Helper()

	err := db.AutoMigrate(
		&database.User{},
		&database.Category{},
		&database.Tag{},
		&database.Post{},
		&database.PostTag{},
	)

	if err != nil {
		t.Fatalf("migrate schema: %v", err)
	}
}

func newPostsRepo(conn *database.Connection) repository.Posts {
	return repository.Posts{
		DB:         conn,
		Categories: &repository.Categories{DB: conn},
		Tags:       &repository.Tags{DB: conn},
	}
}

func seedUser(t *testing.T, conn *database.Connection, name, email string, role database.UserRole) database.User {
	t.Helper()

	user := database.User{
		UUID:         uuid.NewString(),
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: "hash",
	}

	if err := conn.Sql().Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	return user
}

func seedCategory(t *testing.T, conn *database.Connection, slug, name string) database.Category {
	t.Helper()

	category := database.Category{
		UUID:  uuid.NewString(),
		Slug:  slug,
		Name:  name,
		Color: database.DefaultCategoryColor,
	}

	if err := conn.Sql().Create(&category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}

	return category
}

func seedTag(t *testing.T, conn *database.Connection, slug, name string) database.Tag {
	t.Helper()

	tag := database.Tag{
		UUID:  uuid.NewString(),
		Slug:  slug,
		Name:  name,
		Color: database.DefaultTagColor,
	}

	if err := conn.Sql().Create(&tag).Error; err != nil {
		t.Fatalf("create tag: %v", err)
	}

	return tag
}

func seedPost(t *testing.T, conn *database.Connection, author database.User, category *database.Category, slug, title string, published bool) database.Post {
	t.Helper()

	postsRepo := newPostsRepo(conn)

	status := database.StatusDraft
	if published {
		status = database.StatusPublished
	}

	attrs := database.PostsAttrs{
		AuthorID:  author.ID,
		Slug:      slug,
		Title:     title,
		Excerpt:   title + " excerpt",
		Content:   title + " content",
		Status:    status,
		Published: published,
	}

	if category != nil {
		attrs.CategoryUUID = category.UUID
	}

	post, err := postsRepo.Create(attrs)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	return *post
}
