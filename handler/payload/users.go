package payload

import (
	"github.com/carmegar/blogpage/database"
)

type UserResponse struct {
	UUID  string `json:"uuid"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func GetUserResponse(u database.User) UserResponse {
	return UserResponse{
		UUID:  u.UUID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}
