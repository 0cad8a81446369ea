package service

import (
	"context"
	"time"

	"mindful/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionInput is the writable part of a scheduled session.
type SessionInput struct {
	AudioTrackID  *uint
	ScheduledTime time.Time
	Completed     bool
}

// SessionService manages scheduled sessions. Every call is scoped to the
// owning user; another user's session is reported as ErrNotFound.
type SessionService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db, now: time.Now}
}

func (s *SessionService) List(ctx context.Context, userID uint) ([]models.ScheduledSession, error) {
	sessions := []models.ScheduledSession{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("scheduled_time").Order("id").
		Find(&sessions).Error
	return sessions, err
}

func (s *SessionService) Get(ctx context.Context, userID, id uint) (*models.ScheduledSession, error) {
	var session models.ScheduledSession
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&session).Error; err != nil {
		return nil, notFound(err)
	}
	return &session, nil
}

// Create books a new session. The time must lie in the future.
func (s *SessionService) Create(ctx context.Context, userID uint, in SessionInput) (*models.ScheduledSession, error) {
	if !in.ScheduledTime.After(s.now()) {
		return nil, NewValidationError("scheduled_time", "Scheduled time must be in the future.")
	}

	session := models.ScheduledSession{
		UserID:        userID,
		AudioTrackID:  in.AudioTrackID,
		ScheduledTime: in.ScheduledTime,
		Completed:     in.Completed,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := trackExists(tx, in.AudioTrackID, "audio_track"); err != nil {
			return err
		}
		return tx.Create(&session).Error
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Update replaces every writable field of the caller's session.
func (s *SessionService) Update(ctx context.Context, userID, id uint, in SessionInput) (*models.ScheduledSession, error) {
	var session models.ScheduledSession
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&session).Error; err != nil {
			return notFound(err)
		}
		if err := trackExists(tx, in.AudioTrackID, "audio_track"); err != nil {
			return err
		}
		session.AudioTrackID = in.AudioTrackID
		session.ScheduledTime = in.ScheduledTime
		session.Completed = in.Completed
		return tx.Omit(clause.Associations).Save(&session).Error
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *SessionService) Delete(ctx context.Context, userID, id uint) error {
	res := s.db.WithContext(ctx).Unscoped().
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.ScheduledSession{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// trackExists rejects a reference to an audio track that does not exist.
// A nil reference is allowed.
func trackExists(tx *gorm.DB, trackID *uint, field string) error {
	if trackID == nil {
		return nil
	}
	var count int64
	if err := tx.Model(&models.AudioTrack{}).Where("id = ?", *trackID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return NewValidationError(field, "Invalid pk - object does not exist.")
	}
	return nil
}
