package payload

import (
	baseHttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/database/repository/queries"
	"github.com/carmegar/blogpage/pkg/markdown"
	"github.com/carmegar/blogpage/pkg/portal"
)

type PostResponse struct {
	UUID             string            `json:"uuid"`
	Author           UserResponse      `json:"author"`
	Category         *CategoryResponse `json:"category,omitempty"`
	Tags             []TagResponse     `json:"tags"`
	Slug             string            `json:"slug"`
	Title            string            `json:"title"`
	Excerpt          string            `json:"excerpt"`
	Content          string            `json:"content"`
	ContentHTML      string            `json:"content_html"`
	FeaturedImageURL string            `json:"featured_image_url"`
	Status           string            `json:"status"`
	Published        bool              `json:"published"`
	PublishedAt      *time.Time        `json:"published_at"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

type CreatePostRequest struct {
	Title            string   `json:"title" validate:"required,min=3,max=200"`
	Slug             string   `json:"slug" validate:"required,min=3,max=200"`
	Excerpt          string   `json:"excerpt" validate:"max=500"`
	Content          string   `json:"content" validate:"required"`
	FeaturedImageURL string   `json:"featured_image_url" validate:"omitempty,url"`
	CategoryUUID     string   `json:"category_uuid" validate:"omitempty,uuid4"`
	TagUUIDs         []string `json:"tag_uuids" validate:"omitempty,dive,uuid4"`
	Status           string   `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	Published        bool     `json:"published"`
}

// UpdatePostRequest carries optional fields; absent keys leave the stored
// value untouched, which is why everything is a pointer.
type UpdatePostRequest struct {
	Title            *string   `json:"title" validate:"omitempty,min=3,max=200"`
	Slug             *string   `json:"slug" validate:"omitempty,min=3,max=200"`
	Excerpt          *string   `json:"excerpt" validate:"omitempty,max=500"`
	Content          *string   `json:"content" validate:"omitempty"`
	FeaturedImageURL *string   `json:"featured_image_url" validate:"omitempty"`
	CategoryUUID     *string   `json:"category_uuid" validate:"omitempty"`
	TagUUIDs         *[]string `json:"tag_uuids" validate:"omitempty,dive,uuid4"`
	Status           *string   `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	Published        *bool     `json:"published"`
}

func (r CreatePostRequest) ToAttrs(authorID uint64) database.PostsAttrs {
	return database.PostsAttrs{
		AuthorID:     authorID,
		CategoryUUID: strings.TrimSpace(r.CategoryUUID),
		TagUUIDs:     portal.FilterNonEmpty(r.TagUUIDs),
		Slug:         strings.TrimSpace(r.Slug),
		Title:        strings.TrimSpace(r.Title),
		Excerpt:      r.Excerpt,
		Content:      r.Content,
		ImageURL:     strings.TrimSpace(r.FeaturedImageURL),
		Status:       database.PostStatus(strings.ToUpper(strings.TrimSpace(r.Status))),
		Published:    r.Published,
	}
}

func (r UpdatePostRequest) ToAttrs() database.PostsUpdateAttrs {
	attrs := database.PostsUpdateAttrs{
		Title:        r.Title,
		Slug:         r.Slug,
		Excerpt:      r.Excerpt,
		Content:      r.Content,
		ImageURL:     r.FeaturedImageURL,
		CategoryUUID: r.CategoryUUID,
		TagUUIDs:     r.TagUUIDs,
		Published:    r.Published,
	}

	if r.Status != nil {
		status := database.PostStatus(strings.ToUpper(strings.TrimSpace(*r.Status)))
		attrs.Status = &status
	}

	return attrs
}

func GetSlugFrom(r *baseHttp.Request) string {
	str := portal.MakeStringable(r.PathValue("slug"))

	return str.ToLower()
}

func GetUUIDFrom(r *baseHttp.Request) string {
	return strings.TrimSpace(r.PathValue("uuid"))
}

// GetPostsFiltersFrom maps the public query string onto search filters.
func GetPostsFiltersFrom(values url.Values) queries.PostFilters {
	return queries.PostFilters{
		Query:    values.Get("q"),
		Category: values.Get("category"),
		Author:   values.Get("author"),
		DateFrom: values.Get("dateFrom"),
		DateTo:   values.Get("dateTo"),
	}
}

// GetAdminPostsFiltersFrom additionally honours status and the exact
// category/author identifiers the dashboard filters by, and spans every
// publication state by default.
func GetAdminPostsFiltersFrom(values url.Values) queries.PostFilters {
	filters := GetPostsFiltersFrom(values)
	filters.Status = values.Get("status")
	filters.CategoryUUID = values.Get("categoryId")
	filters.AuthorUUID = values.Get("authorId")
	filters.AnyStatus = true

	return filters
}

func GetPostResponse(p database.Post) PostResponse {
	response := PostResponse{
		UUID:             p.UUID,
		Slug:             p.Slug,
		Title:            p.Title,
		Excerpt:          p.Excerpt,
		Content:          p.Content,
		FeaturedImageURL: p.FeaturedImageURL,
		Status:           string(p.Status),
		Published:        p.Published,
		PublishedAt:      p.PublishedAt,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
		Tags:             GetTagsResponse(p.Tags),
		Author:           GetUserResponse(p.Author),
	}

	if p.Category != nil {
		category := GetCategoryResponse(*p.Category)
		response.Category = &category
	}

	// The raw markdown stays in Content so editors can round-trip it.
	if rendered, err := markdown.ToHTML(p.Content); err == nil {
		response.ContentHTML = rendered
	}

	return response
}
