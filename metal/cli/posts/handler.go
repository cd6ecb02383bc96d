package posts

import (
	"fmt"
	"strings"

	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/pkg/cli"
	"github.com/carmegar/blogpage/pkg/markdown"
)

// Import downloads the remote markdown document and persists it as a
// published post.
func (h Handler) Import() error {
	content, err := h.Parser.Fetch()

	if err != nil {
		return err
	}

	payload, err := markdown.Parse(content)

	if err != nil {
		return fmt.Errorf("handler: could not parse the given document: %v", err)
	}

	return h.HandlePost(payload)
}

func (h Handler) HandlePost(payload *markdown.Post) error {
	author := h.Users.FindByEmail(payload.Author)

	if author == nil {
		return fmt.Errorf("handler: the given author [%s] does not exist", payload.Author)
	}

	publishedAt, err := payload.GetPublishedAt()

	if err != nil {
		return fmt.Errorf("handler: the given published_at [%s] date is invalid", payload.PublishedAt)
	}

	categoryUUID, err := h.ParseCategory(payload)

	if err != nil {
		return err
	}

	tagUUIDs, err := h.ParseTags(payload)

	if err != nil {
		return err
	}

	attrs := database.PostsAttrs{
		AuthorID:     author.ID,
		CategoryUUID: categoryUUID,
		TagUUIDs:     tagUUIDs,
		Slug:         payload.Slug,
		Title:        payload.Title,
		Excerpt:      payload.Excerpt,
		Content:      payload.Content,
		ImageURL:     payload.ImageURL,
		Status:       database.StatusPublished,
		Published:    true,
		PublishedAt:  publishedAt,
	}

	if _, err = h.Posts.Create(attrs); err != nil {
		return fmt.Errorf("handler: error persisting the post [%s]: %v", attrs.Title, err)
	}

	cli.Successln("\n" + fmt.Sprintf("Post [%s] created successfully.", attrs.Title))

	return nil
}

// ParseCategory resolves the first category named in the front matter,
// creating it when unknown. Posts carry a single category.
func (h Handler) ParseCategory(payload *markdown.Post) (string, error) {
	for _, part := range strings.Split(payload.Categories, ",") {
		slug := strings.TrimSpace(strings.ToLower(part))

		if slug == "" {
			continue
		}

		if item := h.Categories.FindBy(slug); item != nil {
			return item.UUID, nil
		}

		item, err := h.Categories.Create(database.CategoriesAttrs{
			Name: strings.TrimSpace(part),
			Slug: slug,
		})

		if err != nil {
			return "", fmt.Errorf("handler: could not create the category [%s]: %v", slug, err)
		}

		return item.UUID, nil
	}

	return "", nil
}

func (h Handler) ParseTags(payload *markdown.Post) ([]string, error) {
	var uuids []string

	for _, tag := range payload.Tags {
		slug := strings.TrimSpace(strings.ToLower(tag))

		if slug == "" {
			continue
		}

		if item := h.Tags.FindBy(slug); item != nil {
			uuids = append(uuids, item.UUID)
			continue
		}

		item, err := h.Tags.Create(database.TagAttrs{
			Name: slug,
			Slug: slug,
		})

		if err != nil {
			return nil, fmt.Errorf("handler: could not create the tag [%s]: %v", slug, err)
		}

		uuids = append(uuids, item.UUID)
	}

	return uuids, nil
}
