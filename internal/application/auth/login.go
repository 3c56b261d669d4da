package auth

import (
	"context"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/ports"
	domerrors "github.com/BRAITOU555/my-ride-sharing-app/internal/domain/errors"
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password both come back as ErrInvalidCredentials; callers cannot
// probe which emails are registered.
type Login struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	issuer ports.TokenIssuer
}

func NewLogin(users ports.UserRepository, hasher ports.PasswordHasher, issuer ports.TokenIssuer) *Login {
	return &Login{users: users, hasher: hasher, issuer: issuer}
}

func (uc *Login) Execute(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !uc.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, domerrors.ErrInvalidCredentials
	}
	token, err := uc.issuer.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token}, nil
}
