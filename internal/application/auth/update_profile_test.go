package auth

import (
	"context"
	"errors"
	"testing"

	domerrors "github.com/BRAITOU555/my-ride-sharing-app/internal/domain/errors"
)

func strptr(s string) *string { return &s }

func TestUpdateProfilePartial(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	hasher := &fakeHasher{}
	reg := NewRegister(repo, hasher)
	res, err := reg.Execute(context.Background(), RegisterInput{Name: "Ann", Email: "ann@example.com", Password: "pass123"})
	if err != nil {
		t.Fatalf("seed register error: %v", err)
	}

	uc := NewUpdateProfile(repo, hasher)
	if err := uc.Execute(context.Background(), res.ID, UpdateProfileInput{Name: strptr("Annie")}); err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	stored := repo.users[res.ID]
	if stored.Name != "Annie" {
		t.Fatalf("Name: got %q want Annie", stored.Name)
	}
	if stored.Email != "ann@example.com" {
		t.Fatalf("untouched email changed: %q", stored.Email)
	}
	if stored.PasswordHash != "hashed:pass123" {
		t.Fatalf("untouched password hash changed: %q", stored.PasswordHash)
	}
}

func TestUpdateProfileHashesNewPassword(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	hasher := &fakeHasher{}
	res, err := NewRegister(repo, hasher).Execute(context.Background(), RegisterInput{Name: "Ann", Email: "ann@example.com", Password: "pass123"})
	if err != nil {
		t.Fatalf("seed register error: %v", err)
	}

	uc := NewUpdateProfile(repo, hasher)
	if err := uc.Execute(context.Background(), res.ID, UpdateProfileInput{Password: strptr("newpass99")}); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if got := repo.users[res.ID].PasswordHash; got != "hashed:newpass99" {
		t.Fatalf("PasswordHash: got %q, plaintext must never reach the store", got)
	}
}

// The target account comes from the verified claims only. Updating with one
// account's id must never touch another account.
func TestUpdateProfileScopedToCaller(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	hasher := &fakeHasher{}
	reg := NewRegister(repo, hasher)
	annRes, _ := reg.Execute(context.Background(), RegisterInput{Name: "Ann", Email: "ann@example.com", Password: "pass123"})
	bobRes, _ := reg.Execute(context.Background(), RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "hunter22"})

	uc := NewUpdateProfile(repo, hasher)
	if err := uc.Execute(context.Background(), annRes.ID, UpdateProfileInput{Name: strptr("Annie")}); err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if repo.users[bobRes.ID].Name != "Bob" {
		t.Fatalf("another account was mutated")
	}
	if repo.users[annRes.ID].Name != "Annie" {
		t.Fatalf("caller account was not updated")
	}
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	hasher := &fakeHasher{}
	reg := NewRegister(repo, hasher)
	annRes, _ := reg.Execute(context.Background(), RegisterInput{Name: "Ann", Email: "ann@example.com", Password: "pass123"})
	_, _ = reg.Execute(context.Background(), RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "hunter22"})

	uc := NewUpdateProfile(repo, hasher)
	err := uc.Execute(context.Background(), annRes.ID, UpdateProfileInput{Email: strptr("bob@example.com")})
	if !errors.Is(err, domerrors.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if repo.users[annRes.ID].Email != "ann@example.com" {
		t.Fatalf("email changed despite the conflict")
	}
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	t.Parallel()

	uc := NewUpdateProfile(newFakeUserRepo(), &fakeHasher{})
	err := uc.Execute(context.Background(), 404, UpdateProfileInput{Name: strptr("Ghost")})
	if !errors.Is(err, domerrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
