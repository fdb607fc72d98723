package models

import (
	"time"
)

// SiteContent is the single editable content record (id = 1). Slides and
// Portfolio hold JSON arrays; the controller layer (un)marshals them.
type SiteContent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Intro     string    `gorm:"type:text" json:"intro"`
	Slides    []byte    `gorm:"type:jsonb" json:"-"`
	Portfolio []byte    `gorm:"type:jsonb" json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SlideEntry struct {
	Image   string `json:"image"`
	Title   string `json:"title"`
	Caption string `json:"caption"`
}
