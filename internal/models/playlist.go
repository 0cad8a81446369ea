package models

import "gorm.io/gorm"

// Playlist is a user-owned ordered collection of tracks.
type Playlist struct {
	gorm.Model
	UserID      uint    `gorm:"not null;index"`
	Name        string  `gorm:"size:100;not null"`
	Description *string `gorm:"type:text"`

	User  User           `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Items []PlaylistItem `gorm:"foreignKey:PlaylistID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// PlaylistItem references a track weakly: deleting the track clears AudioTrackID.
type PlaylistItem struct {
	ID           uint  `gorm:"primaryKey"`
	PlaylistID   uint  `gorm:"not null;index"`
	Position     int   `gorm:"not null"`
	AudioTrackID *uint `gorm:"index"`

	AudioTrack *AudioTrack `gorm:"foreignKey:AudioTrackID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}
