package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/carmegar/blogpage/database"
	pkggorm "github.com/carmegar/blogpage/pkg/gorm"
)

type Users struct {
	DB *database.Connection
}

func (u Users) Create(attrs database.UsersAttrs) (*database.User, error) {
	email := strings.ToLower(strings.TrimSpace(attrs.Email))

	if existing := u.FindByEmail(email); existing != nil {
		return nil, &ConflictError{Field: "email"}
	}

	role := attrs.Role
	if role == "" {
		role = database.RoleUser
	}

	user := database.User{
		UUID:         uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(attrs.Name),
		Role:         role,
		PasswordHash: attrs.PasswordHash,
	}

	if result := u.DB.Sql().Create(&user); pkggorm.HasDbIssues(result.Error) {
		if pkggorm.IsDuplicatedKey(result.Error) {
			return nil, &ConflictError{Field: "email"}
		}

		return nil, &StoreError{Op: "users.create", Err: result.Error}
	}

	return &user, nil
}

// UpdateRole reassigns a user's role. Callers vet the role value first.
func (u Users) UpdateRole(email string, role database.UserRole) (*database.User, error) {
	user := u.FindByEmail(email)

	if user == nil {
		return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
	}

	if result := u.DB.Sql().Model(user).Update("role", role); pkggorm.HasDbIssues(result.Error) {
		return nil, &StoreError{Op: "users.update_role", Err: result.Error}
	}

	user.Role = role

	return user, nil
}

func (u Users) FindByEmail(email string) *database.User {
	user := database.User{}

	result := u.DB.Sql().
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user)

	if pkggorm.HasDbIssues(result.Error) {
		return nil
	}

	return &user
}

func (u Users) FindByUUID(publicID string) *database.User {
	user := database.User{}

	result := u.DB.Sql().
		Where("uuid = ?", strings.TrimSpace(publicID)).
		First(&user)

	if pkggorm.HasDbIssues(result.Error) {
		return nil
	}

	return &user
}
