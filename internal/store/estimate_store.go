package store

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/naebu/naebu_backend/internal/models"
)

// EstimateStore persists estimate inquiries.
type EstimateStore struct {
	DB *gorm.DB
}

// NewEstimate carries the fields a public submission may provide.
type NewEstimate struct {
	Name    string
	Phone   string
	Budget  string
	Space   string
	Message string
}

// Stats aggregates inquiry counts for the admin dashboard.
type Stats struct {
	Total    int64            `json:"total"`
	Today    int64            `json:"today"`
	Month    int64            `json:"month"`
	ByStatus map[string]int64 `json:"by_status"`
}

// Insert validates and stores a new inquiry. Name and phone are required;
// everything else defaults to its zero value and status starts at 대기.
func (s *EstimateStore) Insert(ctx context.Context, in NewEstimate) (models.Estimate, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	if name == "" || phone == "" {
		return models.Estimate{}, ErrEmptyValue
	}

	e := models.Estimate{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     phone,
		Budget:    in.Budget,
		Space:     in.Space,
		Message:   in.Message,
		Status:    models.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.DB.WithContext(ctx).Create(&e).Error; err != nil {
		return models.Estimate{}, err
	}
	return e, nil
}

// ListAll returns every inquiry, newest first.
func (s *EstimateStore) ListAll(ctx context.Context) ([]models.Estimate, error) {
	var out []models.Estimate
	if err := s.DB.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *EstimateStore) UpdateStatus(ctx context.Context, id, status string) error {
	if strings.TrimSpace(status) == "" {
		return ErrEmptyValue
	}
	return s.updateColumn(ctx, id, "status", status)
}

// UpdateMemo overwrites the memo; an empty memo clears it.
func (s *EstimateStore) UpdateMemo(ctx context.Context, id, memo string) error {
	return s.updateColumn(ctx, id, "memo", memo)
}

func (s *EstimateStore) MarkRead(ctx context.Context, id string) error {
	return s.updateColumn(ctx, id, "read", true)
}

// updateColumn issues a single-column UPDATE so concurrent updates to
// different fields of the same row cannot clobber each other.
func (s *EstimateStore) updateColumn(ctx context.Context, id, column string, value interface{}) error {
	if strings.TrimSpace(id) == "" {
		return ErrNotFound
	}
	res := s.DB.WithContext(ctx).Model(&models.Estimate{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the inquiry permanently. Deleting an unknown id returns
// ErrNotFound; there is no soft delete.
func (s *EstimateStore) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrNotFound
	}
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Estimate{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *EstimateStore) Stats(ctx context.Context) (Stats, error) {
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	stats := Stats{
		ByStatus: map[string]int64{
			models.StatusPending:    0,
			models.StatusInProgress: 0,
			models.StatusDone:       0,
		},
	}

	if err := s.DB.WithContext(ctx).Model(&models.Estimate{}).Count(&stats.Total).Error; err != nil {
		return Stats{}, err
	}
	if err := s.DB.WithContext(ctx).Model(&models.Estimate{}).
		Where("created_at >= ?", dayStart).Count(&stats.Today).Error; err != nil {
		return Stats{}, err
	}
	if err := s.DB.WithContext(ctx).Model(&models.Estimate{}).
		Where("created_at >= ?", monthStart).Count(&stats.Month).Error; err != nil {
		return Stats{}, err
	}

	var rows []struct {
		Status string
		Count  int64
	}
	if err := s.DB.WithContext(ctx).Model(&models.Estimate{}).
		Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return Stats{}, err
	}
	for _, r := range rows {
		stats.ByStatus[r.Status] = r.Count
	}
	return stats, nil
}
