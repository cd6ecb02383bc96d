package repository_test

import (
	"errors"
	"testing"

	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/database/repository"
)

func TestUsersCreateNormalisesEmailSQLite(t *testing.T) {
	conn, db := newSQLiteConnection(t)
	migrateSchema(t, db)

	usersRepo := repository.Users{DB: conn}

	user, err := usersRepo.Create(database.UsersAttrs{
		Email:        "  Paula@Example.Test ",
		Name:         "Paula Fourteen",
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	if user.Email != "paula@example.test" {
		t.Fatalf("expected normalised email, got %q", user.Email)
	}

	if user.Role != database.RoleUser {
		t.Fatalf("expected the reader role by default, got %q", user.Role)
	}
}

func TestUsersCreateRejectsDuplicateEmailSQLite(t *testing.T) {
	conn, db := newSQLiteConnection(t)
	migrateSchema(t, db)

	usersRepo := repository.Users{DB: conn}

	if _, err := usersRepo.Create(database.UsersAttrs{Email: "taken@example.test", Name: "First", PasswordHash: "hash"}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	_, err := usersRepo.Create(database.UsersAttrs{Email: "TAKEN@example.test", Name: "Second", PasswordHash: "hash"})

	var conflict *repository.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}

	if conflict.Field != "email" {
		t.Fatalf("expected email conflict, got %q", conflict.Field)
	}
}

func TestUsersFindersSQLite(t *testing.T) {
	conn, db := newSQLiteConnection(t)
	migrateSchema(t, db)

	seeded := seedUser(t, conn, "Quinn Fifteen", "quinn@example.test", database.RoleAdmin)

	usersRepo := repository.Users{DB: conn}

	if found := usersRepo.FindByEmail("QUINN@example.test"); found == nil || found.ID != seeded.ID {
		t.Fatalf("expected case-insensitive email lookup")
	}

	if found := usersRepo.FindByUUID(seeded.UUID); found == nil || found.ID != seeded.ID {
		t.Fatalf("expected uuid lookup to resolve")
	}

	if usersRepo.FindByEmail("missing@example.test") != nil {
		t.Fatalf("expected missing email lookup to return nil")
	}
}

func TestUsersUpdateRoleSQLite(t *testing.T) {
	conn, db := newSQLiteConnection(t)
	migrateSchema(t, db)

	seeded := seedUser(t, conn, "Robin Sixteen", "robin@example.test", database.RoleUser)

	usersRepo := repository.Users{DB: conn}

	updated, err := usersRepo.UpdateRole("ROBIN@example.test", database.RoleWriter)
	if err != nil {
		t.Fatalf("update role: %v", err)
	}

	if updated.ID != seeded.ID || updated.Role != database.RoleWriter {
		t.Fatalf("expected writer role, got %+v", updated)
	}

	if found := usersRepo.FindByEmail("robin@example.test"); found == nil || found.Role != database.RoleWriter {
		t.Fatalf("expected role change to persist")
	}

	if _, err = usersRepo.UpdateRole("missing@example.test", database.RoleAdmin); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
