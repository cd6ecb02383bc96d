package posts

import (
	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/database/repository"
	"github.com/carmegar/blogpage/pkg/markdown"
)

type Handler struct {
	Parser     markdown.Parser
	Users      *repository.Users
	Posts      *repository.Posts
	Categories *repository.Categories
	Tags       *repository.Tags
}

func MakeHandler(url string, db *database.Connection) *Handler {
	categories := &repository.Categories{DB: db}
	tags := &repository.Tags{DB: db}

	return &Handler{
		Parser:     markdown.Parser{Url: url},
		Users:      &repository.Users{DB: db},
		Categories: categories,
		Tags:       tags,
		Posts: &repository.Posts{
			DB:         db,
			Categories: categories,
			Tags:       tags,
		},
	}
}
