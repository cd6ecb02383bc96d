package repository

import (
	"strings"

	"github.com/google/uuid"

	"github.com/carmegar/blogpage/database"
	pkggorm "github.com/carmegar/blogpage/pkg/gorm"
)

type Tags struct {
	DB *database.Connection
}

func (t Tags) GetAll() ([]database.Tag, error) {
	var tags []database.Tag

	err := t.DB.Sql().
		Order("tags.name ASC").
		Find(&tags).Error

	if err != nil {
		return nil, &StoreError{Op: "tags.all", Err: err}
	}

	return tags, nil
}

func (t Tags) Create(attrs database.TagAttrs) (*database.Tag, error) {
	slug := strings.TrimSpace(attrs.Slug)

	if existing := t.FindBy(slug); existing != nil {
		return nil, &ConflictError{Field: "slug"}
	}

	colour := strings.TrimSpace(attrs.Color)
	if colour == "" {
		colour = database.DefaultTagColor
	}

	tag := database.Tag{
		UUID:  uuid.NewString(),
		Name:  strings.TrimSpace(attrs.Name),
		Slug:  slug,
		Color: colour,
	}

	if result := t.DB.Sql().Create(&tag); pkggorm.HasDbIssues(result.Error) {
		if pkggorm.IsDuplicatedKey(result.Error) {
			return nil, &ConflictError{Field: "slug"}
		}

		return nil, &StoreError{Op: "tags.create", Err: result.Error}
	}

	return &tag, nil
}

func (t Tags) FindBy(slug string) *database.Tag {
	tag := database.Tag{}

	result := t.DB.Sql().
		Where("LOWER(slug) = ?", strings.ToLower(strings.TrimSpace(slug))).
		First(&tag)

	if pkggorm.HasDbIssues(result.Error) {
		return nil
	}

	return &tag
}

func (t Tags) FindByUUID(publicID string) *database.Tag {
	tag := database.Tag{}

	result := t.DB.Sql().
		Where("uuid = ?", strings.TrimSpace(publicID)).
		First(&tag)

	if pkggorm.HasDbIssues(result.Error) {
		return nil
	}

	return &tag
}
