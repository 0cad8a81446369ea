package service

import (
	"context"

	"mindful/backend/internal/models"

	"gorm.io/gorm"
)

// PlaylistInput is the writable part of a playlist.
type PlaylistInput struct {
	Name        string
	Description *string
}

// PlaylistService manages the caller's playlists and their ordered items.
type PlaylistService struct {
	db *gorm.DB
}

func NewPlaylistService(db *gorm.DB) *PlaylistService {
	return &PlaylistService{db: db}
}

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Order("position").Order("id")
}

func (s *PlaylistService) List(ctx context.Context, userID uint) ([]models.Playlist, error) {
	playlists := []models.Playlist{}
	err := s.db.WithContext(ctx).
		Preload("Items", preloadItems).
		Where("user_id = ?", userID).
		Order("id").
		Find(&playlists).Error
	return playlists, err
}

func (s *PlaylistService) Get(ctx context.Context, userID, id uint) (*models.Playlist, error) {
	return s.get(s.db.WithContext(ctx), userID, id)
}

func (s *PlaylistService) get(db *gorm.DB, userID, id uint) (*models.Playlist, error) {
	var playlist models.Playlist
	err := db.Preload("Items", preloadItems).
		Where("id = ? AND user_id = ?", id, userID).
		First(&playlist).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &playlist, nil
}

func (s *PlaylistService) Create(ctx context.Context, userID uint, in PlaylistInput) (*models.Playlist, error) {
	playlist := models.Playlist{UserID: userID, Name: in.Name, Description: in.Description}
	if err := s.db.WithContext(ctx).Create(&playlist).Error; err != nil {
		return nil, err
	}
	playlist.Items = []models.PlaylistItem{}
	return &playlist, nil
}

func (s *PlaylistService) Update(ctx context.Context, userID, id uint, in PlaylistInput) (*models.Playlist, error) {
	var playlist *models.Playlist
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if playlist, err = s.get(tx, userID, id); err != nil {
			return err
		}
		var desc interface{}
		if in.Description != nil {
			desc = *in.Description
		}
		return tx.Model(playlist).Updates(map[string]interface{}{
			"name":        in.Name,
			"description": desc,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	playlist.Name, playlist.Description = in.Name, in.Description
	return playlist, nil
}

// Delete removes the playlist together with its items.
func (s *PlaylistService) Delete(ctx context.Context, userID, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Unscoped().Where("id = ? AND user_id = ?", id, userID).Delete(&models.Playlist{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("playlist_id = ?", id).Delete(&models.PlaylistItem{}).Error
	})
}

// AddItem appends a track after the playlist's last item.
func (s *PlaylistService) AddItem(ctx context.Context, userID, playlistID, trackID uint) (*models.PlaylistItem, error) {
	var item models.PlaylistItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.get(tx, userID, playlistID); err != nil {
			return err
		}
		if err := trackExists(tx, &trackID, "audio_track_id"); err != nil {
			return err
		}

		var last struct{ Max *int }
		if err := tx.Model(&models.PlaylistItem{}).
			Select("MAX(position) AS max").
			Where("playlist_id = ?", playlistID).
			Scan(&last).Error; err != nil {
			return err
		}
		next := 0
		if last.Max != nil {
			next = *last.Max + 1
		}

		item = models.PlaylistItem{PlaylistID: playlistID, Position: next, AudioTrackID: &trackID}
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *PlaylistService) RemoveItem(ctx context.Context, userID, playlistID, itemID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.get(tx, userID, playlistID); err != nil {
			return err
		}
		res := tx.Where("id = ? AND playlist_id = ?", itemID, playlistID).Delete(&models.PlaylistItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
