package auth

import (
	"context"
	"errors"
	"testing"

	domerrors "github.com/BRAITOU555/my-ride-sharing-app/internal/domain/errors"
)

func TestRegisterStoresHashedPassword(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	uc := NewRegister(repo, &fakeHasher{})

	result, err := uc.Execute(context.Background(), RegisterInput{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "pass123",
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if result.ID != 1 {
		t.Fatalf("ID: got %d want 1", result.ID)
	}

	stored := repo.users[result.ID]
	if stored == nil {
		t.Fatalf("user not stored")
	}
	if stored.PasswordHash == "pass123" {
		t.Fatalf("password stored in the clear")
	}
	if stored.PasswordHash != "hashed:pass123" {
		t.Fatalf("PasswordHash: got %q", stored.PasswordHash)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	uc := NewRegister(repo, &fakeHasher{})

	if _, err := uc.Execute(context.Background(), RegisterInput{Name: "Ann", Email: "ann@example.com", Password: "pass123"}); err != nil {
		t.Fatalf("first Execute error: %v", err)
	}
	_, err := uc.Execute(context.Background(), RegisterInput{Name: "Other", Email: "ann@example.com", Password: "different"})
	if !errors.Is(err, domerrors.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("duplicate registration must not add a user")
	}
}

func TestRegisterHasherFailure(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	uc := NewRegister(repo, &fakeHasher{hashErr: errors.New("entropy exhausted")})

	if _, err := uc.Execute(context.Background(), RegisterInput{Name: "Ann", Email: "ann@example.com", Password: "pass123"}); err == nil {
		t.Fatalf("expected error when hashing fails")
	}
	if len(repo.users) != 0 {
		t.Fatalf("no user may be stored when hashing fails")
	}
}
