package identity

import (
	"errors"
	"testing"
)

func TestDirectoryUpdateRejectsEmailCollision(t *testing.T) {
	dir := NewDirectory()

	maria, err := dir.FindByEmail("maria@example.com")
	if err != nil {
		t.Fatalf("FindByEmail failed: %v", err)
	}

	// Taking the admin's address, regardless of casing, must fail.
	maria.Email = "ADMIN@example.com"
	if err := dir.Update(*maria); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	stored, err := dir.FindByEmail("maria@example.com")
	if err != nil {
		t.Fatalf("original account gone: %v", err)
	}
	if stored.Email != "maria@example.com" {
		t.Errorf("rejected update changed the account: %q", stored.Email)
	}

	// Keeping (or recasing) its own address is fine.
	stored.Email = "Maria@example.com"
	stored.Phone = "(41) 90000-0000"
	if err := dir.Update(*stored); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	updated, err := dir.FindByEmail("maria@example.com")
	if err != nil {
		t.Fatalf("FindByEmail failed: %v", err)
	}
	if updated.Phone != "(41) 90000-0000" {
		t.Errorf("phone = %q", updated.Phone)
	}
}

func TestDirectoryUpdateUnknownAccount(t *testing.T) {
	dir := NewDirectory()

	ghost := Identity{Name: "Ninguém", Email: "ghost@example.com"}
	if err := dir.Update(ghost); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}
