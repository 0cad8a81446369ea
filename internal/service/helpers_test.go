package service

import (
	"context"
	"fmt"
	"testing"

	"mindful/backend/internal/database"
	"mindful/backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect("sqlite", "file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestAccounts(db *gorm.DB) *AccountService {
	s := NewAccountService(db)
	s.cost = bcrypt.MinCost
	return s
}

func createUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user, err := newTestAccounts(db).Signup(context.Background(), SignupInput{
		Email:     fmt.Sprintf("%s@example.com", name),
		Password:  "password123",
		FirstName: name,
		LastName:  "Tester",
	})
	require.NoError(t, err)
	return user
}

func createTrack(t *testing.T, db *gorm.DB, title string) *models.AudioTrack {
	t.Helper()
	track, err := NewCatalogService(db).CreateAudioTrack(context.Background(), TrackInput{
		Title:       title,
		Description: "calm",
		Audio:       "video/upload/" + title + ".mp3",
	})
	require.NoError(t, err)
	return track
}
