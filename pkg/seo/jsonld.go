package seo

import (
	"bytes"
	"encoding/json"
	"html/template"
	"strings"
	"time"

	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/metal/env"
)

// JsonLD renders schema.org structured data for a page. The zero Post means
// a site-level graph; a populated Post adds the Article and breadcrumb
// nodes.
type JsonLD struct {
	Site env.SiteEnvironment
	Post *database.Post
	Now  func() time.Time
}

func NewWebsiteLD(site env.SiteEnvironment) *JsonLD {
	return &JsonLD{
		Site: site,
		Now:  func() time.Time { return time.Now().UTC() },
	}
}

func NewArticleLD(site env.SiteEnvironment, post *database.Post) *JsonLD {
	return &JsonLD{
		Site: site,
		Post: post,
		Now:  func() time.Time { return time.Now().UTC() },
	}
}

func (j *JsonLD) Render() template.JS {
	now := j.Now().Format(time.RFC3339)

	base := strings.TrimRight(j.Site.URL, "/")
	orgID := base + "#org"

	graph := []any{

		map[string]any{
			"@type": "Organization",
			"@id":   orgID,
			"name":  j.Site.Name,
			"url":   base,
			"logo":  map[string]any{"@type": "ImageObject", "url": j.absoluteImage(j.Site.DefaultImage, base)},
		},

		map[string]any{
			"@type":        "WebSite",
			"@id":          base + "#website",
			"name":         j.Site.Name,
			"url":          base,
			"description":  j.Site.Description,
			"dateModified": now,
			"publisher":    map[string]any{"@id": orgID},
		},
	}

	if j.Post != nil {
		graph = append(graph, j.articleNode(base, orgID), j.breadcrumbNode(base))
	}

	root := map[string]any{
		"@context": "https://schema.org",
		"@graph":   graph,
	}

	// Encode without template escaping and compact.
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(root); err != nil {
		return `{}`
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, buf.Bytes()); err != nil {
		return template.JS(buf.String())
	}

	return template.JS(compact.String())
}

func (j *JsonLD) articleNode(base, orgID string) map[string]any {
	post := j.Post
	postURL := base + "/blog/" + post.Slug

	node := map[string]any{
		"@type":            "Article",
		"@id":              postURL + "#article",
		"headline":         post.Title,
		"description":      post.Excerpt,
		"url":              postURL,
		"mainEntityOfPage": map[string]any{"@type": "WebPage", "@id": postURL},
		"publisher":        map[string]any{"@id": orgID},
		"author": map[string]any{
			"@type": "Person",
			"name":  post.Author.Name,
		},
		"dateModified": post.UpdatedAt.UTC().Format(time.RFC3339),
	}

	if post.PublishedAt != nil {
		node["datePublished"] = post.PublishedAt.UTC().Format(time.RFC3339)
	}

	if image := j.absoluteImage(post.FeaturedImageURL, base); image != "" {
		node["image"] = image
	}

	if post.Category != nil {
		node["articleSection"] = post.Category.Name
	}

	if len(post.Tags) > 0 {
		names := make([]string, 0, len(post.Tags))
		for _, tag := range post.Tags {
			names = append(names, tag.Name)
		}

		node["keywords"] = strings.Join(names, ", ")
	}

	return node
}

func (j *JsonLD) breadcrumbNode(base string) map[string]any {
	post := j.Post

	return map[string]any{
		"@type": "BreadcrumbList",
		"@id":   base + "/blog/" + post.Slug + "#breadcrumb",
		"itemListElement": []any{
			map[string]any{"@type": "ListItem", "position": 1, "name": "Home", "item": base},
			map[string]any{"@type": "ListItem", "position": 2, "name": "Blog", "item": base + "/blog"},
			map[string]any{"@type": "ListItem", "position": 3, "name": post.Title, "item": base + "/blog/" + post.Slug},
		},
	}
}

func (j *JsonLD) absoluteImage(image, base string) string {
	image = strings.TrimSpace(image)

	if image == "" {
		return ""
	}

	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}

	if !strings.HasPrefix(image, "/") {
		image = "/" + image
	}

	return base + image
}
