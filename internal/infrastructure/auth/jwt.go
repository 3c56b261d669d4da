package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/ports"
	domerrors "github.com/BRAITOU555/my-ride-sharing-app/internal/domain/errors"
)

// TokenIssuer implements ports.TokenIssuer with HS256 and a process-wide
// symmetric secret. The secret is injected once at startup; there is no
// rotation within a process lifetime.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer returns an issuer/verifier pair over the given secret and
// token lifetime.
func NewTokenIssuer(secret []byte, ttl time.Duration) (*TokenIssuer, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwt: signing secret must not be empty")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenIssuer{secret: secret, ttl: ttl, now: time.Now}, nil
}

type sessionClaims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"id"`
	Email  string `json:"email"`
}

// Issue signs a token with claims {id, email, iat, exp}. exp = iat + TTL.
func (t *TokenIssuer) Issue(userID int64, email string) (string, error) {
	now := t.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		UserID: userID,
		Email:  email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks structure, signature, and expiry, in that order, and returns
// the claims exactly as issued. Nothing is re-read from the user store, so a
// verified token stays valid across a later profile change until its expiry.
// Every rejection wraps domerrors.ErrInvalidToken; the jwt cause (malformed,
// bad signature, expired) rides along for logging.
func (t *TokenIssuer) Verify(tokenString string) (*ports.SessionClaims, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domerrors.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, domerrors.ErrInvalidToken
	}
	out := &ports.SessionClaims{UserID: claims.UserID, Email: claims.Email}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

var _ ports.TokenIssuer = (*TokenIssuer)(nil)
