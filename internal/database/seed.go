package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/naebu/naebu_backend/internal/store"
)

// SeedContent makes sure the singleton site-content row exists so that reads
// and wholesale replaces never have to create it.
func SeedContent(db *gorm.DB) error {
	contents := &store.ContentStore{DB: db}
	return contents.Init(context.Background())
}
