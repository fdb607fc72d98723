// Package auth implements the admin credential gate: a single shared secret
// exchanged for a cookie-borne session token.
package auth

import (
	"context"
	"crypto/hmac"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/naebu/naebu_backend/internal/models"
)

var ErrBadCredentials = errors.New("bad credentials")

// SessionStore is the persistence the gate needs for issued sessions.
type SessionStore interface {
	Create(ctx context.Context, ttl time.Duration) (models.AdminSession, error)
	Get(ctx context.Context, tokenID string) (models.AdminSession, error)
	Destroy(ctx context.Context, tokenID string) error
}

// Gate holds the shared admin secret and decides whether a caller is
// authorized. There is one global credential: no accounts, no lockout.
type Gate struct {
	Sessions SessionStore
	Secret   []byte // session token signing key

	// PasswordHash (bcrypt) takes precedence over the plain Password.
	PasswordHash string
	Password     string

	TTL time.Duration
}

// Authenticate checks the candidate password and, on match, creates an
// authorized session and returns its signed token.
func (g *Gate) Authenticate(ctx context.Context, candidate string) (string, error) {
	if !g.match(candidate) {
		return "", ErrBadCredentials
	}
	rec, err := g.Sessions.Create(ctx, g.TTL)
	if err != nil {
		return "", err
	}
	return g.sign(rec)
}

// Authorize reports whether the token belongs to a live authorized session.
func (g *Gate) Authorize(ctx context.Context, token string) bool {
	tokenID, ok := g.parse(token)
	if !ok {
		return false
	}
	rec, err := g.Sessions.Get(ctx, tokenID)
	if err != nil {
		return false
	}
	return rec.Authorized
}

// Revoke destroys the session behind the token. Unknown or malformed tokens
// are a no-op.
func (g *Gate) Revoke(ctx context.Context, token string) error {
	tokenID, ok := g.parse(token)
	if !ok {
		return nil
	}
	return g.Sessions.Destroy(ctx, tokenID)
}

func (g *Gate) match(candidate string) bool {
	if g.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(g.PasswordHash), []byte(candidate)) == nil
	}
	if g.Password == "" {
		return false
	}
	return hmac.Equal([]byte(candidate), []byte(g.Password))
}

func (g *Gate) sign(rec models.AdminSession) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    "naebu_backend",
		IssuedAt:  jwt.NewNumericDate(rec.CreatedAt),
		ExpiresAt: jwt.NewNumericDate(rec.ExpiresAt),
		ID:        rec.TokenID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.Secret)
}

func (g *Gate) parse(token string) (string, bool) {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return g.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid || claims.ID == "" {
		return "", false
	}
	return claims.ID, true
}
