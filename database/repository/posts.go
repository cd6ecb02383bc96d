package repository

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/database/repository/pagination"
	"github.com/carmegar/blogpage/database/repository/queries"
	pkggorm "github.com/carmegar/blogpage/pkg/gorm"
)

type Posts struct {
	DB         *database.Connection
	Categories *Categories
	Tags       *Tags
}

// Search is the single read path over posts: it builds the predicate once,
// dispatches the count query and the page query concurrently, and assembles
// the page envelope. The two queries do not observe a single snapshot; a row
// landing between them can skew the total by one, which is accepted.
func (p Posts) Search(filters *queries.PostFilters, paginate pagination.Paginate) (*pagination.Pagination[database.Post], error) {
	if filters == nil {
		filters = &queries.PostFilters{}
	}

	predicate, err := filters.Build()
	if err != nil {
		return nil, err
	}

	var (
		wg       sync.WaitGroup
		numItems int64
		posts    []database.Post
		countErr error
		pageErr  error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()

		query := p.DB.Sql().Model(&database.Post{})
		queries.ApplyPostFilters(predicate, query)

		countErr = pagination.Count(&numItems, query, p.DB.GetSession(), "posts.id")
	}()

	go func() {
		defer wg.Done()

		query := p.DB.Sql().Model(&database.Post{})
		queries.ApplyPostFilters(predicate, query)

		pageErr = query.
			Preload("Author").
			Preload("Category").
			Preload("Tags").
			Order("posts.published_at DESC NULLS LAST").
			Order("posts.created_at DESC").
			Limit(paginate.Limit).
			Offset(paginate.Skip()).
			Find(&posts).Error
	}()

	wg.Wait()

	if countErr != nil {
		return nil, &StoreError{Op: "posts.count", Err: countErr}
	}

	if pageErr != nil {
		return nil, &StoreError{Op: "posts.page", Err: pageErr}
	}

	paginate.SetNumItems(numItems)

	return pagination.MakePagination[database.Post](posts, paginate), nil
}

// SearchWithFallback serves public read surfaces: validation errors still
// propagate, but a store failure degrades to an empty page and a log line.
// The fallback makes no claim of reflecting real data.
func (p Posts) SearchWithFallback(filters *queries.PostFilters, paginate pagination.Paginate) (*pagination.Pagination[database.Post], error) {
	result, err := p.Search(filters, paginate)
	if err == nil {
		return result, nil
	}

	var invalid *queries.ValidationError
	if errors.As(err, &invalid) {
		return nil, err
	}

	slog.Error("posts search degraded to an empty result", "err", err)

	paginate.SetNumItems(0)

	return pagination.MakePagination[database.Post](nil, paginate), nil
}

func (p Posts) Create(attrs database.PostsAttrs) (*database.Post, error) {
	status := attrs.Status
	if status == "" {
		status = database.StatusDraft
	}

	post := database.Post{
		UUID:             uuid.NewString(),
		AuthorID:         attrs.AuthorID,
		Slug:             strings.TrimSpace(attrs.Slug),
		Title:            attrs.Title,
		Excerpt:          attrs.Excerpt,
		Content:          attrs.Content,
		FeaturedImageURL: attrs.ImageURL,
		Status:           status,
		Published:        attrs.Published,
		PublishedAt:      database.ResolvePublication(attrs.Published, status, attrs.PublishedAt, nil),
	}

	if attrs.CategoryUUID != "" {
		category := p.Categories.FindByUUID(attrs.CategoryUUID)
		if category == nil {
			return nil, fmt.Errorf("category %s: %w", attrs.CategoryUUID, ErrNotFound)
		}

		post.CategoryID = &category.ID
	}

	if result := p.DB.Sql().Create(&post); pkggorm.HasDbIssues(result.Error) {
		if pkggorm.IsDuplicatedKey(result.Error) {
			return nil, &ConflictError{Field: "slug"}
		}

		return nil, &StoreError{Op: "posts.create", Err: result.Error}
	}

	if err := p.syncTags(&post, attrs.TagUUIDs); err != nil {
		return nil, err
	}

	return p.FindByUUID(post.UUID), nil
}

func (p Posts) Update(publicID string, attrs database.PostsUpdateAttrs) (*database.Post, error) {
	post := p.FindByUUID(publicID)
	if post == nil {
		return nil, fmt.Errorf("post %s: %w", publicID, ErrNotFound)
	}

	if attrs.Slug != nil {
		slug := strings.TrimSpace(*attrs.Slug)

		// An explicit empty slug would slip past omitempty validation and
		// leave the post unreachable.
		if slug == "" {
			return nil, &queries.ValidationError{Field: "slug", Message: "must not be empty"}
		}

		if slug != post.Slug {
			if existing := p.FindBy(slug); existing != nil && existing.UUID != post.UUID {
				return nil, &ConflictError{Field: "slug"}
			}
		}

		post.Slug = slug
	}

	if attrs.Title != nil {
		post.Title = *attrs.Title
	}

	if attrs.Excerpt != nil {
		post.Excerpt = *attrs.Excerpt
	}

	if attrs.Content != nil {
		post.Content = *attrs.Content
	}

	if attrs.ImageURL != nil {
		post.FeaturedImageURL = *attrs.ImageURL
	}

	if attrs.Status != nil {
		post.Status = *attrs.Status
	}

	if attrs.Published != nil {
		post.Published = *attrs.Published
	}

	post.PublishedAt = database.ResolvePublication(post.Published, post.Status, post.PublishedAt, nil)

	if attrs.CategoryUUID != nil {
		if seed := strings.TrimSpace(*attrs.CategoryUUID); seed == "" {
			post.CategoryID = nil
			post.Category = nil
		} else {
			category := p.Categories.FindByUUID(seed)
			if category == nil {
				return nil, fmt.Errorf("category %s: %w", seed, ErrNotFound)
			}

			post.CategoryID = &category.ID
		}
	}

	if result := p.DB.Sql().Omit("Author", "Category", "Tags").Save(post); pkggorm.HasDbIssues(result.Error) {
		if pkggorm.IsDuplicatedKey(result.Error) {
			return nil, &ConflictError{Field: "slug"}
		}

		return nil, &StoreError{Op: "posts.update", Err: result.Error}
	}

	if attrs.TagUUIDs != nil {
		if err := p.syncTags(post, *attrs.TagUUIDs); err != nil {
			return nil, err
		}
	}

	return p.FindByUUID(post.UUID), nil
}

func (p Posts) Delete(publicID string) error {
	post := p.FindByUUID(publicID)
	if post == nil {
		return fmt.Errorf("post %s: %w", publicID, ErrNotFound)
	}

	if result := p.DB.Sql().Delete(post); pkggorm.HasDbIssues(result.Error) {
		return &StoreError{Op: "posts.delete", Err: result.Error}
	}

	return nil
}

func (p Posts) FindBy(slug string) *database.Post {
	post := database.Post{}

	result := p.DB.Sql().
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Where("LOWER(slug) = ?", strings.ToLower(strings.TrimSpace(slug))).
		First(&post)

	if pkggorm.HasDbIssues(result.Error) {
		return nil
	}

	return &post
}

// FindPublishedBy mirrors FindBy but only surfaces live posts; it backs the
// public show and metadata endpoints.
func (p Posts) FindPublishedBy(slug string) *database.Post {
	post := p.FindBy(slug)

	if post == nil || !post.Published || post.Status != database.StatusPublished {
		return nil
	}

	return post
}

func (p Posts) FindByUUID(publicID string) *database.Post {
	post := database.Post{}

	result := p.DB.Sql().
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Where("uuid = ?", strings.TrimSpace(publicID)).
		First(&post)

	if pkggorm.HasDbIssues(result.Error) {
		return nil
	}

	return &post
}

// syncTags replaces the post's tag links with the given set. Tag order is
// irrelevant; unknown tags abort the whole operation.
func (p Posts) syncTags(post *database.Post, tagUUIDs []string) error {
	if result := p.DB.Sql().Where("post_id = ?", post.ID).Delete(&database.PostTag{}); pkggorm.HasDbIssues(result.Error) {
		return &StoreError{Op: "posts.tags.clear", Err: result.Error}
	}

	for _, seed := range tagUUIDs {
		tag := p.Tags.FindByUUID(seed)
		if tag == nil {
			return fmt.Errorf("tag %s: %w", seed, ErrNotFound)
		}

		trace := database.PostTag{
			PostID: post.ID,
			TagID:  tag.ID,
		}

		if result := p.DB.Sql().Create(&trace); pkggorm.HasDbIssues(result.Error) {
			return &StoreError{Op: "posts.tags.link", Err: result.Error}
		}
	}

	return nil
}
