package payload

import (
	"strings"

	"github.com/carmegar/blogpage/database"
)

type CategoryResponse struct {
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Color       string `json:"color"`
	PostCount   int    `json:"post_count"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Slug        string `json:"slug" validate:"required,min=2,max=120"`
	Description string `json:"description" validate:"max=500"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
}

func (r CategoryRequest) ToAttrs() database.CategoriesAttrs {
	return database.CategoriesAttrs{
		Name:        strings.TrimSpace(r.Name),
		Slug:        strings.TrimSpace(r.Slug),
		Description: r.Description,
		Color:       strings.TrimSpace(r.Color),
	}
}

func GetCategoryResponse(c database.Category) CategoryResponse {
	return CategoryResponse{
		UUID:        c.UUID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Color:       c.Color,
		PostCount:   len(c.Posts),
	}
}

func GetCategoriesResponse(categories []database.Category) []CategoryResponse {
	response := make([]CategoryResponse, 0, len(categories))

	for _, category := range categories {
		response = append(response, GetCategoryResponse(category))
	}

	return response
}
