package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	baseHttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/database/repository"
	"github.com/carmegar/blogpage/metal/env"
	"github.com/carmegar/blogpage/pkg/portal"
)

func newHandlerDB(t *testing.T) *database.Connection {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}

	if _, err = sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	err = db.AutoMigrate(
		&database.User{},
		&database.Category{},
		&database.Tag{},
		&database.Post{},
		&database.PostTag{},
	)

	if err != nil {
		t.Fatalf("migrate schema: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database.NewConnectionFromGorm(db)
}

func newPostsRepo(conn *database.Connection) *repository.Posts {
	return &repository.Posts{
		DB:         conn,
		Categories: &repository.Categories{DB: conn},
		Tags:       &repository.Tags{DB: conn},
	}
}

func seedAccount(t *testing.T, conn *database.Connection, email string, role database.UserRole) database.User {
	t.Helper()

	user := database.User{
		UUID:         uuid.NewString(),
		Email:        email,
		Name:         "Test Account",
		Role:         role,
		PasswordHash: "hash",
	}

	if err := conn.Sql().Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	return user
}

func seedPost(t *testing.T, posts *repository.Posts, author database.User, slug string, published bool) database.Post {
	t.Helper()

	status := database.StatusDraft
	if published {
		status = database.StatusPublished
	}

	post, err := posts.Create(database.PostsAttrs{
		AuthorID:  author.ID,
		Slug:      slug,
		Title:     "Post " + slug,
		Content:   "Body of " + slug,
		Status:    status,
		Published: published,
	})

	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	return *post
}

func testSiteEnv() env.SiteEnvironment {
	return env.SiteEnvironment{
		Name:          "Field Notes",
		URL:           "https://fieldnotes.test/",
		Description:   "Notes on software and everything around it.",
		DefaultImage:  "/images/og-default.png",
		TwitterHandle: "@fieldnotes",
	}
}

func asAccount(r *baseHttp.Request, user database.User) *baseHttp.Request {
	session := portal.Session{
		UserID:   user.ID,
		UserUUID: user.UUID,
		Email:    user.Email,
		Name:     user.Name,
		Role:     string(user.Role),
	}

	return r.WithContext(portal.WithSession(r.Context(), session))
}

func jsonRequest(t *testing.T, method, target string, body any) *baseHttp.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}

		reader = bytes.NewReader(raw)
	}

	request := httptest.NewRequest(method, target, reader)
	request.Header.Set("Content-Type", "application/json")

	return request
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.NewDecoder(recorder.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	return out
}
