package paginate

import (
	"net/url"
	"testing"

	"github.com/carmegar/blogpage/database/repository/pagination"
)

func TestNewFrom(t *testing.T) {
	u, _ := url.Parse("https://example.com/posts?page=2&limit=50")
	p := NewFrom(u, pagination.DefaultBlogLimit)

	if p.Page != 2 {
		t.Fatalf("page %d", p.Page)
	}

	if p.Limit != 50 {
		t.Fatalf("limit %d", p.Limit)
	}

	u2, _ := url.Parse("/posts?page=-1&limit=0")
	p2 := NewFrom(u2, pagination.DefaultBlogLimit)

	if p2.Page != pagination.MinPage || p2.Limit != pagination.DefaultBlogLimit {
		t.Fatalf("unexpected %+v", p2)
	}

	u3, _ := url.Parse("/posts?limit=500")
	p3 := NewFrom(u3, pagination.DefaultAdminLimit)

	if p3.Limit != pagination.MaxLimit {
		t.Fatalf("expected clamped limit, got %d", p3.Limit)
	}

	u4, _ := url.Parse("/posts")
	p4 := NewFrom(u4, pagination.DefaultAdminLimit)

	if p4.Page != pagination.MinPage || p4.Limit != pagination.DefaultAdminLimit {
		t.Fatalf("unexpected defaults %+v", p4)
	}
}
