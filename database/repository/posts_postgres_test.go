package repository_test

import (
	"testing"

	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/database/repository/pagination"
	"github.com/carmegar/blogpage/database/repository/queries"
)

func TestPostsSearchOrdersPublishedFirstPostgres(t *testing.T) {
	conn := newPostgresConnection(t,
		&database.User{},
		&database.Category{},
		&database.Tag{},
		&database.Post{},
		&database.PostTag{},
	)

	author := seedUser(t, conn, "Rosa Sixteen", "rosa@example.test", database.RoleWriter)

	seedPost(t, conn, author, nil, "older-live", "Older Live", true)
	seedPost(t, conn, author, nil, "newer-live", "Newer Live", true)
	seedPost(t, conn, author, nil, "invisible-draft", "Invisible Draft", false)

	postsRepo := newPostsRepo(conn)

	result, err := postsRepo.Search(&queries.PostFilters{AnyStatus: true}, pagination.Paginate{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if result.Total != 3 {
		t.Fatalf("expected all posts under any status, got %d", result.Total)
	}

	// NULLS LAST keeps the unpublished draft at the tail of the page.
	if result.Data[len(result.Data)-1].Slug != "invisible-draft" {
		t.Fatalf("expected the draft to sort last, got %+v", result.Data)
	}
}
