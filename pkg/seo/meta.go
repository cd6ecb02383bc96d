package seo

import (
	"fmt"
	"strings"
	"time"

	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/metal/env"
)

const defaultRobots = "index, follow"
const defaultLocale = "en_US"

var defaultKeywords = []string{
	"blog",
	"web development",
	"programming",
	"tutorials",
	"go",
	"full-stack",
	"best practices",
}

// Builder folds site-wide defaults into per-page metadata. All methods are
// pure; the builder can be shared across requests.
type Builder struct {
	site env.SiteEnvironment
}

func NewBuilder(site env.SiteEnvironment) Builder {
	return Builder{site: site}
}

// Page assembles metadata for an arbitrary route. The site name is appended
// to the title unless the page already is the site itself.
func (b Builder) Page(input PageInput) Meta {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = b.site.Name
	}

	if title != b.site.Name {
		title = fmt.Sprintf("%s | %s", title, b.site.Name)
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = b.site.Description
	}

	pageType := input.Type
	if pageType == "" {
		pageType = "website"
	}

	canonical := b.absoluteURL(input.Path)
	image := b.absoluteImage(input.Image)
	keywords := append(append([]string{}, defaultKeywords...), input.Keywords...)

	var authors []string
	if input.Author != "" {
		authors = []string{input.Author}
	}

	return Meta{
		Title:       title,
		Description: description,
		Keywords:    keywords,
		Canonical:   canonical,
		Robots:      defaultRobots,
		OpenGraph: OpenGraph{
			Type:          pageType,
			Locale:        defaultLocale,
			URL:           canonical,
			SiteName:      b.site.Name,
			Title:         title,
			Description:   description,
			Image:         image,
			ImageWidth:    "1200",
			ImageHeight:   "630",
			ImageAlt:      title,
			PublishedTime: input.PublishedTime,
			ModifiedTime:  input.ModifiedTime,
			Authors:       authors,
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Site:        b.site.TwitterHandle,
			Creator:     b.site.TwitterHandle,
			Title:       title,
			Description: description,
			Image:       image,
		},
	}
}

// ForPost derives article metadata from a live post. The description falls
// back to a readable sentence when the excerpt is empty.
func (b Builder) ForPost(post database.Post) Meta {
	description := strings.TrimSpace(post.Excerpt)
	if description == "" {
		description = fmt.Sprintf("Read %s by %s", post.Title, post.Author.Name)
	}

	var keywords []string
	if post.Category != nil {
		keywords = append(keywords, post.Category.Name)
	}

	for _, tag := range post.Tags {
		keywords = append(keywords, tag.Name)
	}

	var publishedTime string
	if post.PublishedAt != nil {
		publishedTime = post.PublishedAt.UTC().Format(time.RFC3339)
	}

	return b.Page(PageInput{
		Title:         post.Title,
		Description:   description,
		Keywords:      keywords,
		Image:         post.FeaturedImageURL,
		Path:          "/blog/" + post.Slug,
		Type:          "article",
		PublishedTime: publishedTime,
		ModifiedTime:  post.UpdatedAt.UTC().Format(time.RFC3339),
		Author:        post.Author.Name,
	})
}

func (b Builder) ForCategory(category database.Category) Meta {
	description := strings.TrimSpace(category.Description)
	if description == "" {
		description = fmt.Sprintf("Browse all posts in the %s category", category.Name)
	}

	return b.Page(PageInput{
		Title:       fmt.Sprintf("%s Posts", category.Name),
		Description: description,
		Keywords:    []string{strings.ToLower(category.Name), "category", "posts"},
		Path:        "/blog/category/" + category.Slug,
	})
}

func (b Builder) ForSearch(query string, totalResults int64) Meta {
	query = strings.TrimSpace(query)

	title := "Search Posts"
	description := "Search through all blog posts"
	keywords := []string{"search", "posts"}
	path := "/blog"

	if query != "" {
		title = fmt.Sprintf("Search results for %q", query)
		description = fmt.Sprintf("Found %d posts matching %q", totalResults, query)
		keywords = []string{query, "search", "results"}
		path = "/blog?q=" + query
	}

	return b.Page(PageInput{
		Title:       title,
		Description: description,
		Keywords:    keywords,
		Path:        path,
	})
}

func (b Builder) absoluteURL(path string) string {
	base := strings.TrimRight(b.site.URL, "/")

	if path == "" {
		return base
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return base + path
}

func (b Builder) absoluteImage(image string) string {
	image = strings.TrimSpace(image)

	if image == "" {
		image = b.site.DefaultImage
	}

	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}

	return b.absoluteURL(image)
}
