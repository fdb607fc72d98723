package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/naebu/naebu_backend/internal/models"
)

type memSessions struct {
	rows map[string]models.AdminSession
}

func newMemSessions() *memSessions {
	return &memSessions{rows: map[string]models.AdminSession{}}
}

func (m *memSessions) Create(ctx context.Context, ttl time.Duration) (models.AdminSession, error) {
	now := time.Now().UTC()
	rec := models.AdminSession{
		TokenID:    uuid.NewString(),
		Authorized: true,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
	}
	m.rows[rec.TokenID] = rec
	return rec, nil
}

func (m *memSessions) Get(ctx context.Context, tokenID string) (models.AdminSession, error) {
	rec, ok := m.rows[tokenID]
	if !ok || time.Now().UTC().After(rec.ExpiresAt) {
		return models.AdminSession{}, errors.New("record not found")
	}
	return rec, nil
}

func (m *memSessions) Destroy(ctx context.Context, tokenID string) error {
	delete(m.rows, tokenID)
	return nil
}

func newGate(sessions SessionStore) *Gate {
	return &Gate{
		Sessions: sessions,
		Secret:   []byte("test-secret"),
		Password: "hunter2",
		TTL:      time.Hour,
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	sessions := newMemSessions()
	g := newGate(sessions)

	if _, err := g.Authenticate(context.Background(), "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
	if len(sessions.rows) != 0 {
		t.Fatal("wrong password must never create a session")
	}
}

func TestAuthenticateThenAuthorize(t *testing.T) {
	g := newGate(newMemSessions())
	ctx := context.Background()

	token, err := g.Authenticate(ctx, "hunter2")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if !g.Authorize(ctx, token) {
		t.Fatal("expected issued token to authorize")
	}
}

func TestAuthorizeRejectsBadTokens(t *testing.T) {
	g := newGate(newMemSessions())
	ctx := context.Background()

	if g.Authorize(ctx, "") || g.Authorize(ctx, "garbage") {
		t.Fatal("malformed tokens must not authorize")
	}

	// Valid signature from a different deployment's secret.
	other := newGate(newMemSessions())
	other.Secret = []byte("other-secret")
	token, err := other.Authenticate(ctx, "hunter2")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if g.Authorize(ctx, token) {
		t.Fatal("token signed with a foreign secret must not authorize")
	}
}

func TestRevoke(t *testing.T) {
	g := newGate(newMemSessions())
	ctx := context.Background()

	token, err := g.Authenticate(ctx, "hunter2")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if err := g.Revoke(ctx, token); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if g.Authorize(ctx, token) {
		t.Fatal("revoked token must not authorize")
	}
	// Idempotent, and garbage is a no-op.
	if err := g.Revoke(ctx, token); err != nil {
		t.Fatalf("second revoke failed: %v", err)
	}
	if err := g.Revoke(ctx, "garbage"); err != nil {
		t.Fatalf("revoking garbage failed: %v", err)
	}
}

func TestBcryptHashTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("real-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}

	g := newGate(newMemSessions())
	g.PasswordHash = string(hash)
	ctx := context.Background()

	// The plain Password field is ignored once a hash is configured.
	if _, err := g.Authenticate(ctx, "hunter2"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
	if _, err := g.Authenticate(ctx, "real-password"); err != nil {
		t.Fatalf("expected hash match, got %v", err)
	}
}

func TestEmptyConfiguredPasswordNeverMatches(t *testing.T) {
	g := newGate(newMemSessions())
	g.Password = ""
	if _, err := g.Authenticate(context.Background(), ""); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
}
