package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/database/repository/pagination"
	pkggorm "github.com/carmegar/blogpage/pkg/gorm"
)

type Categories struct {
	DB *database.Connection
}

func (c Categories) GetAll(paginate pagination.Paginate) (*pagination.Pagination[database.Category], error) {
	var numItems int64
	var categories []database.Category

	query := c.DB.Sql().Model(&database.Category{})

	if err := pagination.Count(&numItems, query, c.DB.GetSession(), "categories.id"); err != nil {
		return nil, &StoreError{Op: "categories.count", Err: err}
	}

	err := query.
		Preload("Posts").
		Order("categories.name ASC").
		Limit(paginate.Limit).
		Offset(paginate.Skip()).
		Find(&categories).Error

	if err != nil {
		return nil, &StoreError{Op: "categories.page", Err: err}
	}

	paginate.SetNumItems(numItems)

	return pagination.MakePagination[database.Category](categories, paginate), nil
}

func (c Categories) Create(attrs database.CategoriesAttrs) (*database.Category, error) {
	name := strings.TrimSpace(attrs.Name)
	slug := strings.TrimSpace(attrs.Slug)

	if existing := c.FindBy(slug); existing != nil {
		return nil, &ConflictError{Field: "slug"}
	}

	colour := strings.TrimSpace(attrs.Color)
	if colour == "" {
		colour = database.DefaultCategoryColor
	}

	category := database.Category{
		UUID:        uuid.NewString(),
		Name:        name,
		Slug:        slug,
		Description: attrs.Description,
		Color:       colour,
	}

	if result := c.DB.Sql().Create(&category); pkggorm.HasDbIssues(result.Error) {
		if pkggorm.IsDuplicatedKey(result.Error) {
			return nil, &ConflictError{Field: "slug"}
		}

		return nil, &StoreError{Op: "categories.create", Err: result.Error}
	}

	return &category, nil
}

// Delete restricts rather than cascades: a category still referenced by posts
// stays put and the caller gets a conflict.
func (c Categories) Delete(publicID string) error {
	category := c.FindByUUID(publicID)
	if category == nil {
		return fmt.Errorf("category %s: %w", publicID, ErrNotFound)
	}

	var attached int64
	result := c.DB.Sql().
		Model(&database.Post{}).
		Where("category_id = ?", category.ID).
		Count(&attached)

	if pkggorm.HasDbIssues(result.Error) {
		return &StoreError{Op: "categories.delete", Err: result.Error}
	}

	if attached > 0 {
		return &ConflictError{Field: "posts"}
	}

	if result := c.DB.Sql().Delete(category); pkggorm.HasDbIssues(result.Error) {
		return &StoreError{Op: "categories.delete", Err: result.Error}
	}

	return nil
}

func (c Categories) FindBy(slug string) *database.Category {
	category := database.Category{}

	result := c.DB.Sql().
		Where("LOWER(slug) = ?", strings.ToLower(strings.TrimSpace(slug))).
		First(&category)

	if pkggorm.HasDbIssues(result.Error) {
		return nil
	}

	return &category
}

func (c Categories) FindByUUID(publicID string) *database.Category {
	category := database.Category{}

	result := c.DB.Sql().
		Where("uuid = ?", strings.TrimSpace(publicID)).
		First(&category)

	if pkggorm.HasDbIssues(result.Error) {
		return nil
	}

	return &category
}
