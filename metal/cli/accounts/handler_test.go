package accounts

import (
	"testing"

	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/metal/cli/clitest"
)

func setupAccountsHandler(t *testing.T) *Handler {
	conn := clitest.MakeTestConnection(t, &database.User{})

	return MakeHandler(conn)
}

func TestCreateAndShowAccount(t *testing.T) {
	h := setupAccountsHandler(t)

	if err := h.CreateAccount("Alice", "alice@example.com", "sup3r-secret", "writer"); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := h.ShowAccount("alice@example.com"); err != nil {
		t.Fatalf("show: %v", err)
	}

	user := h.Users.FindByEmail("alice@example.com")

	if user == nil || user.Role != database.RoleWriter {
		t.Fatalf("account not saved with role: %+v", user)
	}

	if user.PasswordHash == "sup3r-secret" {
		t.Fatalf("password stored in plain text")
	}
}

func TestCreateAccountRejectsUnknownRole(t *testing.T) {
	h := setupAccountsHandler(t)

	if err := h.CreateAccount("Bob", "bob@example.com", "sup3r-secret", "owner"); err == nil {
		t.Fatalf("expected role error")
	}
}

func TestPromoteAccount(t *testing.T) {
	h := setupAccountsHandler(t)

	if err := h.CreateAccount("Carol", "carol@example.com", "sup3r-secret", "user"); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := h.PromoteAccount("carol@example.com", "admin"); err != nil {
		t.Fatalf("promote: %v", err)
	}

	user := h.Users.FindByEmail("carol@example.com")

	if user == nil || user.Role != database.RoleAdmin {
		t.Fatalf("role not updated: %+v", user)
	}
}

func TestPromoteAccountNotFound(t *testing.T) {
	h := setupAccountsHandler(t)

	if err := h.PromoteAccount("missing@example.com", "admin"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestShowAccountNotFound(t *testing.T) {
	h := setupAccountsHandler(t)

	if err := h.ShowAccount("missing@example.com"); err == nil {
		t.Fatalf("expected error")
	}
}
