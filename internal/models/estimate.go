package models

import (
	"time"
)

// Status values written by the admin panel. The column itself is an open
// string domain; these are the three the panel knows about.
const (
	StatusPending    = "대기"
	StatusInProgress = "진행중"
	StatusDone       = "처리완료"
)

type Estimate struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Phone     string    `gorm:"not null" json:"phone"`
	Budget    string    `json:"budget"`
	Space     string    `json:"space"`
	Message   string    `gorm:"type:text" json:"message"`
	Status    string    `gorm:"index;default:'대기'" json:"status"`
	Read      bool      `gorm:"default:false" json:"read"`
	Memo      string    `gorm:"type:text" json:"memo"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
