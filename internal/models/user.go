package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account. Email is the login key.
type User struct {
	gorm.Model
	Email        string  `gorm:"size:254;uniqueIndex;not null"`
	PasswordHash string  `gorm:"size:255;not null"`
	FirstName    string  `gorm:"size:50;not null"`
	LastName     string  `gorm:"size:50;not null"`
	Username     *string `gorm:"size:30"`
	Nationality  *string `gorm:"size:50"`
	IsActive     bool    `gorm:"not null"`
	IsStaff      bool    `gorm:"not null"`
	IsSuperuser  bool    `gorm:"not null"`
	LastLogin    *time.Time
}
