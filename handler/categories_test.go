package handler_test

import (
	baseHttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/database/repository"
	"github.com/carmegar/blogpage/database/repository/pagination"
	"github.com/carmegar/blogpage/handler"
	"github.com/carmegar/blogpage/handler/payload"
)

func newCategoriesHandler(t *testing.T) (*handler.CategoriesHandler, *database.Connection) {
	t.Helper()

	conn := newHandlerDB(t)
	h := handler.NewCategoriesHandler(&repository.Categories{DB: conn})

	return &h, conn
}

func TestCategoriesStoreAndIndex(t *testing.T) {
	h, conn := newCategoriesHandler(t)

	admin := seedAccount(t, conn, "admin@categories.test", database.RoleAdmin)

	body := payload.CategoryRequest{Name: "Guides", Slug: "guides"}

	recorder := httptest.NewRecorder()
	request := asAccount(jsonRequest(t, "POST", "/admin/categories", body), admin)

	if apiErr := h.Store(recorder, request); apiErr != nil {
		t.Fatalf("unexpected error: %v", apiErr)
	}

	created := decodeBody[payload.CategoryResponse](t, recorder)
	if created.Color != database.DefaultCategoryColor {
		t.Fatalf("expected the default colour, got %s", created.Color)
	}

	recorder = httptest.NewRecorder()
	request = httptest.NewRequest("GET", "/categories", nil)

	if apiErr := h.Index(recorder, request); apiErr != nil {
		t.Fatalf("unexpected error: %v", apiErr)
	}

	page := decodeBody[pagination.Pagination[payload.CategoryResponse]](t, recorder)
	if page.Total != 1 || page.Data[0].Slug != "guides" {
		t.Fatalf("unexpected listing: %+v", page)
	}
}

func TestCategoriesStoreRequiresTaxonomyRole(t *testing.T) {
	h, conn := newCategoriesHandler(t)

	reader := seedAccount(t, conn, "reader@categories.test", database.RoleUser)

	body := payload.CategoryRequest{Name: "Guides", Slug: "guides-two"}

	recorder := httptest.NewRecorder()
	request := jsonRequest(t, "POST", "/admin/categories", body)

	if apiErr := h.Store(recorder, request); apiErr == nil || apiErr.Status != baseHttp.StatusUnauthorized {
		t.Fatalf("anonymous callers must be rejected: %v", apiErr)
	}

	recorder = httptest.NewRecorder()
	request = asAccount(jsonRequest(t, "POST", "/admin/categories", body), reader)

	if apiErr := h.Store(recorder, request); apiErr == nil || apiErr.Status != baseHttp.StatusForbidden {
		t.Fatalf("readers must be rejected: %v", apiErr)
	}
}

func TestCategoriesDestroyRestrictsWhenReferenced(t *testing.T) {
	h, conn := newCategoriesHandler(t)

	admin := seedAccount(t, conn, "admin@restrict.test", database.RoleAdmin)
	posts := newPostsRepo(conn)

	recorder := httptest.NewRecorder()
	request := asAccount(jsonRequest(t, "POST", "/admin/categories", payload.CategoryRequest{
		Name: "Careers",
		Slug: "careers",
	}), admin)

	if apiErr := h.Store(recorder, request); apiErr != nil {
		t.Fatalf("store category: %v", apiErr)
	}

	category := decodeBody[payload.CategoryResponse](t, recorder)

	_, err := posts.Create(database.PostsAttrs{
		AuthorID:     admin.ID,
		CategoryUUID: category.UUID,
		Slug:         "career-note",
		Title:        "Career Note",
		Content:      "Body",
		Status:       database.StatusPublished,
		Published:    true,
	})

	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	recorder = httptest.NewRecorder()
	request = asAccount(httptest.NewRequest("DELETE", "/admin/categories/"+category.UUID, nil), admin)
	request.SetPathValue("uuid", category.UUID)

	if apiErr := h.Destroy(recorder, request); apiErr == nil || apiErr.Status != baseHttp.StatusConflict {
		t.Fatalf("referenced categories must not be deletable: %v", apiErr)
	}
}
