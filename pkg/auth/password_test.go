package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("hash password err: %v", err)
	}

	if hash == "correct horse battery" {
		t.Fatalf("expected hashed value")
	}

	if !CheckPassword(hash, "correct horse battery") {
		t.Fatalf("expected matching password to verify")
	}

	if CheckPassword(hash, "wrong password") {
		t.Fatalf("expected mismatch to fail")
	}
}

func TestHashPasswordRejectsShortInput(t *testing.T) {
	if _, err := HashPassword("short"); err == nil {
		t.Fatalf("expected error for short password")
	}
}
