package queries

import (
	"gorm.io/gorm"

	"github.com/carmegar/blogpage/database"
)

// ApplyPostFilters translates a Predicate into WHERE clauses. The given
// query master table is "posts". LOWER + LIKE keeps the matching
// case-insensitive on both postgres and sqlite.
func ApplyPostFilters(predicate *Predicate, query *gorm.DB) {
	if predicate == nil {
		return
	}

	if predicate.PublishedOnly {
		query.Where("posts.published = ? AND posts.status = ?", true, database.StatusPublished)
	}

	if predicate.Status != "" {
		query.Where("posts.status = ?", predicate.Status)
	}

	if predicate.Text != "" {
		needle := "%" + predicate.Text + "%"

		query.
			Where("LOWER(posts.title) LIKE ? OR LOWER(posts.excerpt) LIKE ? OR LOWER(posts.content) LIKE ?",
				needle,
				needle,
				needle,
			)
	}

	if predicate.CategorySlug != "" || predicate.CategoryUUID != "" {
		query.
			Joins("JOIN categories ON categories.id = posts.category_id").
			Where("categories.deleted_at IS NULL")

		if predicate.CategorySlug != "" {
			query.Where("LOWER(categories.slug) = ?", predicate.CategorySlug)
		}

		if predicate.CategoryUUID != "" {
			query.Where("categories.uuid = ?", predicate.CategoryUUID)
		}
	}

	if predicate.AuthorName != "" || predicate.AuthorUUID != "" {
		query.
			Joins("JOIN users ON users.id = posts.author_id").
			Where("users.deleted_at IS NULL")

		if predicate.AuthorName != "" {
			query.Where("LOWER(users.name) LIKE ?", "%"+predicate.AuthorName+"%")
		}

		if predicate.AuthorUUID != "" {
			query.Where("users.uuid = ?", predicate.AuthorUUID)
		}
	}

	if predicate.PublishedFrom != nil {
		query.Where("posts.published_at >= ?", *predicate.PublishedFrom)
	}

	if predicate.PublishedTo != nil {
		query.Where("posts.published_at <= ?", *predicate.PublishedTo)
	}
}
