package accounts

import (
	"fmt"

	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/pkg/auth"
	"github.com/carmegar/blogpage/pkg/cli"
)

// CreateAccount registers a blog account with the given role. The password
// is bcrypt-hashed before it touches the store.
func (h Handler) CreateAccount(name, email, password, role string) error {
	parsed, err := parseRole(role)

	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(password)

	if err != nil {
		return fmt.Errorf("failed to hash the given account [%s] password: %v", email, err)
	}

	user, err := h.Users.Create(database.UsersAttrs{
		Name:         name,
		Email:        email,
		Role:         parsed,
		PasswordHash: hash,
	})

	if err != nil {
		return fmt.Errorf("failed to create the given account [%s]: %v", email, err)
	}

	cli.Successln("\nThe account has been created successfully!\n")
	h.print(user)

	return nil
}

// PromoteAccount reassigns the role of an existing account.
func (h Handler) PromoteAccount(email, role string) error {
	parsed, err := parseRole(role)

	if err != nil {
		return err
	}

	user, err := h.Users.UpdateRole(email, parsed)

	if err != nil {
		return fmt.Errorf("failed to promote the given account [%s]: %v", email, err)
	}

	cli.Successln("\nThe account has been promoted successfully!\n")
	h.print(user)

	return nil
}

// ShowAccount prints the stored details of an account.
func (h Handler) ShowAccount(email string) error {
	user := h.Users.FindByEmail(email)

	if user == nil {
		return fmt.Errorf("the given account [%s] was not found", email)
	}

	cli.Successln("\nThe account has been found successfully!\n")
	h.print(user)

	return nil
}

func (h Handler) print(user *database.User) {
	cli.Blueln("   > " + fmt.Sprintf("UUID: %s", user.UUID))
	cli.Blueln("   > " + fmt.Sprintf("Name: %s", user.Name))
	cli.Blueln("   > " + fmt.Sprintf("Email: %s", user.Email))
	cli.Magentaln("   > " + fmt.Sprintf("Role: %s", user.Role))
	fmt.Println(" ")
}

func parseRole(role string) (database.UserRole, error) {
	parsed := database.ParseUserRole(role)

	if !parsed.IsValid() {
		return "", fmt.Errorf("the given role [%s] is invalid, expected ADMIN, WRITER or USER", role)
	}

	return parsed, nil
}
