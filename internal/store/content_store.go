package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/naebu/naebu_backend/internal/models"
)

// contentRowID pins the singleton row. The record is never created or
// deleted by normal operation, only replaced.
const contentRowID = 1

// ContentStore persists the singleton site-content record.
type ContentStore struct {
	DB *gorm.DB
}

// Init creates the singleton row with empty defaults if it is absent.
func (s *ContentStore) Init(ctx context.Context) error {
	rec := models.SiteContent{
		ID:        contentRowID,
		Slides:    []byte("[]"),
		Portfolio: []byte("[]"),
	}
	err := s.DB.WithContext(ctx).FirstOrCreate(&rec, map[string]interface{}{"id": contentRowID}).Error
	if err != nil && !isUniqueViolation(err) {
		return err
	}
	// A unique violation means a concurrent boot won the insert.
	return nil
}

func (s *ContentStore) Get(ctx context.Context) (models.SiteContent, error) {
	var rec models.SiteContent
	if err := s.DB.WithContext(ctx).First(&rec, "id = ?", contentRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.SiteContent{}, ErrNotFound
		}
		return models.SiteContent{}, err
	}
	return rec, nil
}

// Replace overwrites intro, slides and portfolio together. Partial updates
// are not supported; the record is replaced as one unit.
func (s *ContentStore) Replace(ctx context.Context, intro string, slides, portfolio []byte) error {
	res := s.DB.WithContext(ctx).Model(&models.SiteContent{}).Where("id = ?", contentRowID).
		Updates(map[string]interface{}{
			"intro":     intro,
			"slides":    slides,
			"portfolio": portfolio,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
