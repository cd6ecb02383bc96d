package accounts

import (
	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/database/repository"
)

type Handler struct {
	Users *repository.Users
}

func MakeHandler(db *database.Connection) *Handler {
	return &Handler{
		Users: &repository.Users{DB: db},
	}
}
