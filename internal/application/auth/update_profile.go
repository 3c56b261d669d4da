package auth

import (
	"context"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/ports"
)

type UpdateProfileInput struct {
	Name     *string
	Email    *string
	Password *string
}

// UpdateProfile replaces any subset of name/email/password on the account
// named by the verified session claims. The target id is never taken from
// the request body. A supplied password is hashed before it leaves this
// package; a token issued before the change stays valid until its expiry.
type UpdateProfile struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewUpdateProfile(users ports.UserRepository, hasher ports.PasswordHasher) *UpdateProfile {
	return &UpdateProfile{users: users, hasher: hasher}
}

func (uc *UpdateProfile) Execute(ctx context.Context, userID int64, input UpdateProfileInput) error {
	patch := ports.ProfilePatch{Name: input.Name, Email: input.Email}
	if input.Password != nil {
		hash, err := uc.hasher.Hash(*input.Password)
		if err != nil {
			return err
		}
		patch.PasswordHash = &hash
	}
	return uc.users.UpdateProfile(ctx, userID, patch)
}
