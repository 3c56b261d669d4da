package auth

import (
	"context"
	"time"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/ports"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/domain"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterResult struct {
	ID int64
}

// Register creates an account with a hashed password. Email uniqueness is the
// store's constraint, not a pre-check here; the repository translates the
// violation into errors.ErrEmailTaken.
type Register struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewRegister(users ports.UserRepository, hasher ports.PasswordHasher) *Register {
	return &Register{users: users, hasher: hasher}
}

func (uc *Register) Execute(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	id, err := uc.users.Create(ctx, &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}
	return &RegisterResult{ID: id}, nil
}
