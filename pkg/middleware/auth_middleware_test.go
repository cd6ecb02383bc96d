package middleware

import (
	baseHttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/database/repository"
	"github.com/carmegar/blogpage/pkg/auth"
	"github.com/carmegar/blogpage/pkg/endpoint"
	"github.com/carmegar/blogpage/pkg/portal"
)

func newUsersRepo(t *testing.T) (*repository.Users, database.User) {
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

	if err := db.AutoMigrate(&database.User{}); err != nil {
		t.Fatalf("migrate users: %v", err)
	}

	user := database.User{
		UUID:         uuid.NewString(),
		Email:        "writer@example.test",
		Name:         "Writer",
		Role:         database.RoleWriter,
		PasswordHash: "hash",
	}

	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	conn := database.NewConnectionFromGorm(db)

	return &repository.Users{DB: conn}, user
}

func TestAuthMiddlewareAttachesSession(t *testing.T) {
	users, user := newUsersRepo(t)

	handler, err := auth.MakeJWTHandler([]byte("supersecretkey123"), time.Minute)
	if err != nil {
		t.Fatalf("make handler err: %v", err)
	}

	token, err := handler.Generate(user.UUID, user.Email, string(user.Role))
	if err != nil {
		t.Fatalf("generate token err: %v", err)
	}

	mw := MakeAuthMiddleware(handler, users)

	var session portal.Session

	next := mw.Handle(func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
		session, _ = portal.GetSession(r.Context())

		return nil
	})

	req := httptest.NewRequest("GET", "/api/admin/posts", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	if apiErr := next(httptest.NewRecorder(), req); apiErr != nil {
		t.Fatalf("unexpected error: %v", apiErr)
	}

	if session.UserID != user.ID || session.Role != string(database.RoleWriter) {
		t.Fatalf("unexpected session: %+v", session)
	}
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	users, _ := newUsersRepo(t)

	handler, err := auth.MakeJWTHandler([]byte("supersecretkey123"), time.Minute)
	if err != nil {
		t.Fatalf("make handler err: %v", err)
	}

	mw := MakeAuthMiddleware(handler, users)

	next := mw.Handle(func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
		t.Fatalf("handler should not run")

		return nil
	})

	apiErr := next(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	if apiErr == nil || apiErr.Status != baseHttp.StatusUnauthorized {
		t.Fatalf("expected unauthorized, got %v", apiErr)
	}
}

func TestAuthMiddlewareRejectsUnknownSubject(t *testing.T) {
	users, _ := newUsersRepo(t)

	handler, err := auth.MakeJWTHandler([]byte("supersecretkey123"), time.Minute)
	if err != nil {
		t.Fatalf("make handler err: %v", err)
	}

	token, err := handler.Generate(uuid.NewString(), "ghost@example.test", "WRITER")
	if err != nil {
		t.Fatalf("generate token err: %v", err)
	}

	mw := MakeAuthMiddleware(handler, users)

	next := mw.Handle(func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
		t.Fatalf("handler should not run")

		return nil
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	apiErr := next(httptest.NewRecorder(), req)
	if apiErr == nil || apiErr.Status != baseHttp.StatusUnauthorized {
		t.Fatalf("expected unauthorized, got %v", apiErr)
	}
}
