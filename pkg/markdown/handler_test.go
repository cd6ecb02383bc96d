package markdown

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	html, err := ToHTML("# Title\n\nBody **bold**")

	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "<strong>bold</strong>") {
		t.Fatalf("unexpected html: %s", html)
	}
}

func TestParserFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("data"))
	}))
	defer server.Close()

	p := Parser{Url: server.URL}

	content, err := p.Fetch()
	if err != nil || content != "data" {
		t.Fatalf("fetch failed")
	}
}
