package models

import "gorm.io/gorm"

// AudioTrack is a catalog item backed by an externally hosted audio asset.
// Audio holds the asset reference, not a URL.
type AudioTrack struct {
	gorm.Model
	Title       string `gorm:"size:30;not null"`
	Description string `gorm:"type:text;not null"`
	Audio       string `gorm:"size:255;not null"`
}

// MoodTrack is like AudioTrack but titles are unique.
type MoodTrack struct {
	gorm.Model
	Title       string `gorm:"size:30;uniqueIndex;not null"`
	Description string `gorm:"type:text;not null"`
	Audio       string `gorm:"size:255;not null"`
}
