package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/santaluzia/hospital-booking/internal/validation"
)

func newTestSession(t *testing.T) (*Session, *FileStore, *Directory) {
	t.Helper()

	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	dir := NewDirectory()
	return NewSession(store, dir, "session:test", 0), store, dir
}

func TestSignInKnownAccount(t *testing.T) {
	sess, _, _ := newTestSession(t)

	ident, err := sess.SignIn(context.Background(), "maria@example.com", "whatever-works")
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	if ident.Name != "Maria Silva" {
		t.Errorf("expected Maria Silva, got %q", ident.Name)
	}
	if !sess.Authenticated() {
		t.Error("expected session to be authenticated after sign-in")
	}
}

func TestSignInUnknownEmail(t *testing.T) {
	sess, _, _ := newTestSession(t)

	_, err := sess.SignIn(context.Background(), "nobody@example.com", "irrelevant")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if sess.Authenticated() {
		t.Error("failed sign-in must not authenticate the session")
	}
}

func TestSignInValidation(t *testing.T) {
	sess, _, _ := newTestSession(t)

	_, err := sess.SignIn(context.Background(), "not-an-email", "secret1")
	var verr *validation.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "email" {
		t.Errorf("expected field email, got %q", verr.Field)
	}

	_, err = sess.SignIn(context.Background(), "maria@example.com", "short")
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "password" {
		t.Errorf("expected field password, got %q", verr.Field)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	sess, _, _ := newTestSession(t)

	// Seeded account, different casing.
	_, err := sess.SignUp(context.Background(), "Outra Maria", "MARIA@example.com", "secret1", "111.222.333-44")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if sess.Authenticated() {
		t.Error("failed sign-up must not authenticate the session")
	}
}

func TestSignUpActivatesSession(t *testing.T) {
	sess, _, dir := newTestSession(t)

	ident, err := sess.SignUp(context.Background(), "João Pereira", "joao@example.com", "secret1", "111.222.333-44")
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	if ident.Role != RolePatient {
		t.Errorf("expected role patient, got %q", ident.Role)
	}

	if _, err := dir.FindByEmail("joao@example.com"); err != nil {
		t.Errorf("new account not in directory: %v", err)
	}
}

func TestSignOutIdempotent(t *testing.T) {
	sess, store, _ := newTestSession(t)
	ctx := context.Background()

	if _, err := sess.SignIn(ctx, "maria@example.com", "secret1"); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}

	sess.SignOut(ctx)
	if sess.Authenticated() {
		t.Fatal("expected signed-out session")
	}
	if _, err := store.Get(ctx, "session:test"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected record to be deleted, got %v", err)
	}

	// Second sign-out leaves the same state.
	sess.SignOut(ctx)
	if sess.Authenticated() {
		t.Error("expected session to stay signed out")
	}
}

func TestSessionSurvivesRestart(t *testing.T) {
	sess, store, dir := newTestSession(t)
	ctx := context.Background()

	before, err := sess.SignIn(ctx, "maria@example.com", "secret1")
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}

	// A fresh session over the same key restores the identity.
	revived := NewSession(store, dir, "session:test", 0)
	after := revived.Current()
	if after == nil {
		t.Fatal("expected revived session to be authenticated")
	}
	if after.ID != before.ID || after.Email != before.Email || after.Name != before.Name {
		t.Errorf("revived identity mismatch: got %+v want %+v", after, before)
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("created_at changed across restart: got %v want %v", after.CreatedAt, before.CreatedAt)
	}
}

func TestCorruptRecordDiscarded(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	ctx := context.Background()
	if err := store.Put(ctx, "session:test", []byte("{not json")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	sess := NewSession(store, NewDirectory(), "session:test", 0)
	if sess.Authenticated() {
		t.Fatal("corrupt record must not authenticate the session")
	}
	if _, err := store.Get(ctx, "session:test"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected corrupt record to be removed, got %v", err)
	}
}

func TestUpdateProfileWithoutSession(t *testing.T) {
	sess, _, _ := newTestSession(t)

	ident, err := sess.UpdateProfile(context.Background(), ProfileUpdate{Phone: "(41) 90000-0000"})
	if err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if ident != nil {
		t.Errorf("expected nil identity, got %+v", ident)
	}
}

func TestUpdateProfileMergesFields(t *testing.T) {
	sess, _, dir := newTestSession(t)
	ctx := context.Background()

	if _, err := sess.SignIn(ctx, "maria@example.com", "secret1"); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}

	ident, err := sess.UpdateProfile(ctx, ProfileUpdate{Phone: "(41) 90000-0000"})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if ident.Phone != "(41) 90000-0000" {
		t.Errorf("phone not updated: %q", ident.Phone)
	}
	if ident.Name != "Maria Silva" {
		t.Errorf("untouched field changed: %q", ident.Name)
	}

	stored, err := dir.FindByEmail("maria@example.com")
	if err != nil {
		t.Fatalf("FindByEmail failed: %v", err)
	}
	if stored.Phone != "(41) 90000-0000" {
		t.Errorf("directory not updated: %q", stored.Phone)
	}
}

func TestUpdateProfileEmailTaken(t *testing.T) {
	sess, _, dir := newTestSession(t)
	ctx := context.Background()

	if _, err := sess.SignIn(ctx, "maria@example.com", "secret1"); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}

	_, err := sess.UpdateProfile(ctx, ProfileUpdate{Email: "admin@example.com"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// Neither the session nor the directory picked up the collision.
	if got := sess.Current().Email; got != "maria@example.com" {
		t.Errorf("session email = %q", got)
	}
	if _, err := dir.FindByEmail("maria@example.com"); err != nil {
		t.Errorf("directory lost the account: %v", err)
	}
}

func TestUpdateProfileValidation(t *testing.T) {
	sess, _, _ := newTestSession(t)
	ctx := context.Background()

	if _, err := sess.SignIn(ctx, "maria@example.com", "secret1"); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}

	_, err := sess.UpdateProfile(ctx, ProfileUpdate{Email: "broken"})
	var verr *validation.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "email" {
		t.Errorf("expected field email, got %q", verr.Field)
	}
}
