package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/ports"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/domain"
	domerrors "github.com/BRAITOU555/my-ride-sharing-app/internal/domain/errors"
)

// fakeUserRepo is an in-memory UserRepository with the same email-uniqueness
// behavior as the postgres adapter.
type fakeUserRepo struct {
	users  map[int64]*domain.User
	nextID int64

	createErr error
	getErr    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*domain.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return 0, domerrors.ErrEmailTaken
		}
	}
	id := f.nextID
	f.nextID++
	stored := *user
	stored.ID = id
	f.users[id] = &stored
	return id, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, userID int64, patch ports.ProfilePatch) error {
	u, ok := f.users[userID]
	if !ok {
		return domerrors.ErrUserNotFound
	}
	if patch.Email != nil {
		for id, other := range f.users {
			if id != userID && other.Email == *patch.Email {
				return domerrors.ErrEmailTaken
			}
		}
		u.Email = *patch.Email
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	return nil
}

var _ ports.UserRepository = (*fakeUserRepo)(nil)

// fakeHasher marks digests with a prefix instead of doing real argon2 work.
type fakeHasher struct {
	hashErr error
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hashed:" + password, nil
}

func (f *fakeHasher) Verify(password, hash string) bool {
	return hash == "hashed:"+password
}

var _ ports.PasswordHasher = (*fakeHasher)(nil)

type stubIssuer struct {
	issueErr error
}

func (s *stubIssuer) Issue(userID int64, email string) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}
	return fmt.Sprintf("token-%d-%s", userID, email), nil
}

func (s *stubIssuer) Verify(tokenString string) (*ports.SessionClaims, error) {
	if !strings.HasPrefix(tokenString, "token-") {
		return nil, domerrors.ErrInvalidToken
	}
	var userID int64
	var email string
	if _, err := fmt.Sscanf(tokenString, "token-%d-%s", &userID, &email); err != nil {
		return nil, domerrors.ErrInvalidToken
	}
	return &ports.SessionClaims{UserID: userID, Email: email}, nil
}

var _ ports.TokenIssuer = (*stubIssuer)(nil)
