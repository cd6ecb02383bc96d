package kernel

import (
	baseHttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/database/repository"
	"github.com/carmegar/blogpage/metal/env"
	"github.com/carmegar/blogpage/pkg/auth"
	"github.com/carmegar/blogpage/pkg/middleware"
	"github.com/carmegar/blogpage/pkg/sitemap"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	conn := database.NewConnectionFromGorm(db)

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

	jwt, err := auth.MakeJWTHandler([]byte("0123456789abcdef0123456789abcdef"), time.Hour)
	if err != nil {
		t.Fatalf("make jwt handler: %v", err)
	}

	environment := &env.Environment{
		Site: env.SiteEnvironment{
			Name:         "Field Notes",
			URL:          "https://fieldnotes.test/",
			Description:  "Notes on software.",
			DefaultImage: "/images/og-default.png",
		},
	}

	users := &repository.Users{DB: conn}
	categories := &repository.Categories{DB: conn}
	tags := &repository.Tags{DB: conn}
	posts := &repository.Posts{DB: conn, Categories: categories, Tags: tags}

	return &Router{
		Env:            environment,
		Db:             conn,
		Mux:            baseHttp.NewServeMux(),
		JWT:            jwt,
		Users:          users,
		CategoriesRepo: categories,
		TagsRepo:       tags,
		PostsRepo:      posts,
		SitemapGen:     sitemap.NewGenerator(environment.Site, posts, categories),
		Pipeline: middleware.Pipeline{
			Env:    environment,
			Auth:   middleware.MakeAuthMiddleware(jwt, users),
			Public: middleware.MakePublicMiddleware(false),
		},
	}
}

func TestRouterPing(t *testing.T) {
	r := newTestRouter(t)
	r.Ping()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/ping", nil)

	r.Mux.ServeHTTP(recorder, request)

	if recorder.Code != baseHttp.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	if recorder.Header().Get("X-Request-ID") == "" {
		t.Fatal("public routes must stamp a request id")
	}
}

func TestRouterGuardsAdminRoutes(t *testing.T) {
	r := newTestRouter(t)
	r.Posts()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/api/admin/posts", nil)

	r.Mux.ServeHTTP(recorder, request)

	if recorder.Code != baseHttp.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", recorder.Code)
	}
}

func TestRouterServesPublicPosts(t *testing.T) {
	r := newTestRouter(t)
	r.Posts()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/posts", nil)

	r.Mux.ServeHTTP(recorder, request)

	if recorder.Code != baseHttp.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
}
