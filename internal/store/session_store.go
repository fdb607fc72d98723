package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/naebu/naebu_backend/internal/models"
)

// SessionStore persists admin sessions so they survive restarts. Tokens stay
// valid until explicit destroy or expiry.
type SessionStore struct {
	DB *gorm.DB
}

func (s *SessionStore) Create(ctx context.Context, ttl time.Duration) (models.AdminSession, error) {
	now := time.Now().UTC()
	rec := models.AdminSession{
		TokenID:    uuid.NewString(),
		Authorized: true,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
	}
	if err := s.DB.WithContext(ctx).Create(&rec).Error; err != nil {
		return models.AdminSession{}, err
	}
	return rec, nil
}

// Get returns the session for tokenID. Expired sessions are dropped on sight
// and reported as absent.
func (s *SessionStore) Get(ctx context.Context, tokenID string) (models.AdminSession, error) {
	var rec models.AdminSession
	if err := s.DB.WithContext(ctx).First(&rec, "token_id = ?", tokenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.AdminSession{}, ErrNotFound
		}
		return models.AdminSession{}, err
	}
	if time.Now().UTC().After(rec.ExpiresAt) {
		_ = s.Destroy(ctx, tokenID)
		return models.AdminSession{}, ErrNotFound
	}
	return rec, nil
}

func (s *SessionStore) SetAuthorized(ctx context.Context, tokenID string, authorized bool) error {
	res := s.DB.WithContext(ctx).Model(&models.AdminSession{}).
		Where("token_id = ?", tokenID).Update("authorized", authorized)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Destroy removes the session. Destroying an absent token is not an error.
func (s *SessionStore) Destroy(ctx context.Context, tokenID string) error {
	return s.DB.WithContext(ctx).Where("token_id = ?", tokenID).Delete(&models.AdminSession{}).Error
}
