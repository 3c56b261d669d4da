package ports

import "time"

// PasswordHasher hashes and verifies passwords (Argon2id). Hash embeds a
// random per-call salt, so two hashes of the same secret differ and digests
// are never compared by equality. Verify must be constant-time and must
// return false, not panic, on a malformed digest.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// SessionClaims are the identity facts carried inside a bearer token. They
// are copied from the account at login and trusted as-issued until expiry; a
// later profile change does not reach tokens already in the wild.
type SessionClaims struct {
	UserID    int64
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenIssuer signs and verifies session tokens (HS256, process-wide secret
// injected at construction). Verify returns domain errors.ErrInvalidToken for
// every rejection; the wrapped cause carries the reason for logs.
type TokenIssuer interface {
	Issue(userID int64, email string) (string, error)
	Verify(tokenString string) (*SessionClaims, error)
}
