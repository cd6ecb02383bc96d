package payload

import (
	"strings"

	"github.com/carmegar/blogpage/database"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func (r RegisterRequest) ToAttrs(passwordHash string) database.UsersAttrs {
	return database.UsersAttrs{
		Name:         strings.TrimSpace(r.Name),
		Email:        r.Email,
		Role:         database.RoleUser,
		PasswordHash: passwordHash,
	}
}

func GetAuthResponse(token string, u database.User) AuthResponse {
	return AuthResponse{
		Token: token,
		User:  GetUserResponse(u),
	}
}
