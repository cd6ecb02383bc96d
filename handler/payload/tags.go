package payload

import (
	"strings"

	"github.com/carmegar/blogpage/database"
)

type TagResponse struct {
	UUID  string `json:"uuid"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

type TagRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=120"`
	Slug  string `json:"slug" validate:"required,min=2,max=120"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

func (r TagRequest) ToAttrs() database.TagAttrs {
	return database.TagAttrs{
		Name:  strings.TrimSpace(r.Name),
		Slug:  strings.TrimSpace(r.Slug),
		Color: strings.TrimSpace(r.Color),
	}
}

func GetTagResponse(t database.Tag) TagResponse {
	return TagResponse{
		UUID:  t.UUID,
		Name:  t.Name,
		Slug:  t.Slug,
		Color: t.Color,
	}
}

func GetTagsResponse(tags []database.Tag) []TagResponse {
	response := make([]TagResponse, 0, len(tags))

	for _, tag := range tags {
		response = append(response, GetTagResponse(tag))
	}

	return response
}
