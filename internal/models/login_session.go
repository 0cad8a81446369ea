package models

import "time"

// LoginSession is the server-side login state behind the session cookie.
type LoginSession struct {
	ID        string    `gorm:"size:36;primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time

	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
