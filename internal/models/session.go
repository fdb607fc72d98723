package models

import (
	"time"
)

// AdminSession is one authenticated admin browsing session. The cookie the
// browser holds is a signed token whose ID points at this row.
type AdminSession struct {
	ID         uint   `gorm:"primaryKey"`
	TokenID    string `gorm:"uniqueIndex"`
	Authorized bool
	CreatedAt  time.Time
	ExpiresAt  time.Time
}
