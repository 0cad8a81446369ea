package service

import (
	"context"
	"errors"

	"mindful/backend/internal/models"

	"gorm.io/gorm"
)

// TrackInput is the writable part of an audio or mood track.
type TrackInput struct {
	Title       string
	Description string
	Audio       string
}

// CatalogService manages audio and mood tracks.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) ListAudioTracks(ctx context.Context) ([]models.AudioTrack, error) {
	tracks := []models.AudioTrack{}
	err := s.db.WithContext(ctx).Order("id").Find(&tracks).Error
	return tracks, err
}

func (s *CatalogService) GetAudioTrack(ctx context.Context, id uint) (*models.AudioTrack, error) {
	var track models.AudioTrack
	if err := s.db.WithContext(ctx).First(&track, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &track, nil
}

func (s *CatalogService) CreateAudioTrack(ctx context.Context, in TrackInput) (*models.AudioTrack, error) {
	track := models.AudioTrack{Title: in.Title, Description: in.Description, Audio: in.Audio}
	if err := s.db.WithContext(ctx).Create(&track).Error; err != nil {
		return nil, err
	}
	return &track, nil
}

// UpdateAudioTrack replaces every writable field.
func (s *CatalogService) UpdateAudioTrack(ctx context.Context, id uint, in TrackInput) (*models.AudioTrack, error) {
	track, err := s.GetAudioTrack(ctx, id)
	if err != nil {
		return nil, err
	}
	track.Title, track.Description, track.Audio = in.Title, in.Description, in.Audio
	if err := s.db.WithContext(ctx).Save(track).Error; err != nil {
		return nil, err
	}
	return track, nil
}

// SetAudio points the track at a newly stored asset.
func (s *CatalogService) SetAudio(ctx context.Context, id uint, ref string) (*models.AudioTrack, error) {
	track, err := s.GetAudioTrack(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(track).Update("audio", ref).Error; err != nil {
		return nil, err
	}
	return track, nil
}

// DeleteAudioTrack removes the track. Sessions and playlist items that used it
// survive with a null reference.
func (s *CatalogService) DeleteAudioTrack(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.AudioTrack{}, id).Error; err != nil {
			return notFound(err)
		}
		if err := tx.Model(&models.ScheduledSession{}).Unscoped().
			Where("audio_track_id = ?", id).
			Update("audio_track_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.PlaylistItem{}).
			Where("audio_track_id = ?", id).
			Update("audio_track_id", nil).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.AudioTrack{}, id).Error
	})
}

func (s *CatalogService) ListMoodTracks(ctx context.Context) ([]models.MoodTrack, error) {
	tracks := []models.MoodTrack{}
	err := s.db.WithContext(ctx).Order("id").Find(&tracks).Error
	return tracks, err
}

func (s *CatalogService) GetMoodTrack(ctx context.Context, id uint) (*models.MoodTrack, error) {
	var track models.MoodTrack
	if err := s.db.WithContext(ctx).First(&track, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &track, nil
}

func (s *CatalogService) CreateMoodTrack(ctx context.Context, in TrackInput) (*models.MoodTrack, error) {
	track := models.MoodTrack{Title: in.Title, Description: in.Description, Audio: in.Audio}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := moodTitleFree(tx, in.Title, 0); err != nil {
			return err
		}
		return tx.Create(&track).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, errDuplicateMoodTitle()
	}
	if err != nil {
		return nil, err
	}
	return &track, nil
}

func (s *CatalogService) UpdateMoodTrack(ctx context.Context, id uint, in TrackInput) (*models.MoodTrack, error) {
	var track models.MoodTrack
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&track, id).Error; err != nil {
			return notFound(err)
		}
		if err := moodTitleFree(tx, in.Title, id); err != nil {
			return err
		}
		track.Title, track.Description, track.Audio = in.Title, in.Description, in.Audio
		return tx.Save(&track).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, errDuplicateMoodTitle()
	}
	if err != nil {
		return nil, err
	}
	return &track, nil
}

func (s *CatalogService) DeleteMoodTrack(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Unscoped().Delete(&models.MoodTrack{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func moodTitleFree(tx *gorm.DB, title string, exceptID uint) error {
	var count int64
	q := tx.Model(&models.MoodTrack{}).Where("title = ?", title)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errDuplicateMoodTitle()
	}
	return nil
}

func errDuplicateMoodTitle() *ValidationError {
	return NewValidationError("title", "mood track with this title already exists.")
}

// notFound maps gorm's missing-row error onto ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
