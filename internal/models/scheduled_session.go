package models

import (
	"time"

	"gorm.io/gorm"
)

// ScheduledSession is a planned listening session. The track reference is
// cleared, not cascaded, when the track goes away.
type ScheduledSession struct {
	gorm.Model
	UserID        uint      `gorm:"not null;index"`
	AudioTrackID  *uint     `gorm:"index"`
	ScheduledTime time.Time `gorm:"not null"`
	Completed     bool      `gorm:"not null"`

	User       User        `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AudioTrack *AudioTrack `gorm:"foreignKey:AudioTrackID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}
