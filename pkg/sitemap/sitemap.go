package sitemap

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/database/repository"
	"github.com/carmegar/blogpage/database/repository/pagination"
	"github.com/carmegar/blogpage/database/repository/queries"
	"github.com/carmegar/blogpage/metal/env"
)

const xmlNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

const pageSize = 100

type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// Generator builds the public sitemap and robots file from live content.
// Drafts, archived posts and the management surface never appear in it.
type Generator struct {
	Site       env.SiteEnvironment
	Posts      *repository.Posts
	Categories *repository.Categories
	Now        func() time.Time
}

func NewGenerator(site env.SiteEnvironment, posts *repository.Posts, categories *repository.Categories) *Generator {
	return &Generator{
		Site:       site,
		Posts:      posts,
		Categories: categories,
		Now:        func() time.Time { return time.Now().UTC() },
	}
}

// Build assembles the url set. Store failures abort the build so a broken
// read never overwrites a good sitemap on disk.
func (g *Generator) Build() (*URLSet, error) {
	base := strings.TrimRight(g.Site.URL, "/")
	now := g.Now().Format(time.RFC3339)

	set := &URLSet{
		Xmlns: xmlNamespace,
		URLs: []URL{
			{Loc: base + "/", LastMod: now, ChangeFreq: "daily", Priority: "1.0"},
			{Loc: base + "/blog", LastMod: now, ChangeFreq: "daily", Priority: "0.9"},
		},
	}

	posts, err := g.livePosts()
	if err != nil {
		return nil, err
	}

	for _, post := range posts {
		entry := URL{
			Loc:        base + "/blog/" + post.Slug,
			ChangeFreq: "weekly",
			Priority:   "0.7",
		}

		if post.PublishedAt != nil {
			entry.LastMod = post.PublishedAt.UTC().Format(time.RFC3339)
		}

		if post.UpdatedAt.After(post.CreatedAt) {
			entry.LastMod = post.UpdatedAt.UTC().Format(time.RFC3339)
		}

		set.URLs = append(set.URLs, entry)
	}

	categories, err := g.Categories.GetAll(pagination.Paginate{Page: pagination.MinPage, Limit: pagination.MaxLimit})
	if err != nil {
		return nil, err
	}

	for _, category := range categories.Data {
		set.URLs = append(set.URLs, URL{
			Loc:        base + "/blog/category/" + category.Slug,
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	return set, nil
}

// Write renders the sitemap and robots files into dir.
func (g *Generator) Write(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create sitemap directory: %w", err)
	}

	set, err := g.Build()
	if err != nil {
		return err
	}

	payload, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sitemap: %w", err)
	}

	document := append([]byte(xml.Header), payload...)
	document = append(document, '\n')

	if err := os.WriteFile(filepath.Join(dir, "sitemap.xml"), document, 0o644); err != nil {
		return fmt.Errorf("write sitemap: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "robots.txt"), []byte(g.robots()), 0o644); err != nil {
		return fmt.Errorf("write robots: %w", err)
	}

	return nil
}

func (g *Generator) livePosts() ([]database.Post, error) {
	var all []database.Post

	for page := pagination.MinPage; ; page++ {
		result, err := g.Posts.Search(&queries.PostFilters{}, pagination.Paginate{Page: page, Limit: pageSize})
		if err != nil {
			return nil, err
		}

		all = append(all, result.Data...)

		if !result.HasNext {
			return all, nil
		}
	}
}

func (g *Generator) robots() string {
	base := strings.TrimRight(g.Site.URL, "/")

	lines := []string{
		"User-agent: *",
		"Allow: /",
		"Disallow: /dashboard",
		"Disallow: /api",
		"Disallow: /login",
		"Disallow: /register",
		"",
		"Sitemap: " + base + "/sitemap.xml",
		"",
	}

	return strings.Join(lines, "\n")
}
