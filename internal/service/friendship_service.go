package service

import (
	"context"
	"errors"

	"mindful/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Action is a recipient's answer to a friend request.
type Action string

const (
	ActionAccept Action = "accept"
	ActionReject Action = "reject"
)

// SendResult describes the outcome of Send.
type SendResult struct {
	Request *models.FriendRequest
	// ReversePending is the recipient's own pending request to the sender, if
	// one exists. It is reported, never merged or auto-accepted.
	ReversePending *models.FriendRequest
}

// RequestFilter narrows ListRequests.
type RequestFilter struct {
	Direction string // "incoming", "outgoing" or "" for both
	Status    models.FriendRequestStatus
}

// FriendshipService runs the friend-request workflow over the explicit
// FriendRequest (ordered pair) and Friendship (unordered pair) tables.
type FriendshipService struct {
	db *gorm.DB
}

func NewFriendshipService(db *gorm.DB) *FriendshipService {
	return &FriendshipService{db: db}
}

// Send creates a pending request from sender to recipient unless one already
// exists for that exact ordered pair, whatever its status.
func (s *FriendshipService) Send(ctx context.Context, senderID, recipientID uint) (*SendResult, error) {
	if senderID == recipientID {
		return nil, NewValidationError("recipient_id", "You cannot send a friend request to yourself.")
	}

	result := &SendResult{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.User{}, recipientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var existing models.FriendRequest
		err := tx.Where("sender_id = ? AND recipient_id = ?", senderID, recipientID).First(&existing).Error
		if err == nil {
			return ErrAlreadySent
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		req := models.FriendRequest{SenderID: senderID, RecipientID: recipientID, Status: models.StatusPending}
		if err := tx.Create(&req).Error; err != nil {
			return err
		}
		result.Request = &req

		var reverse models.FriendRequest
		err = tx.Where("sender_id = ? AND recipient_id = ? AND status = ?", recipientID, senderID, models.StatusPending).
			First(&reverse).Error
		if err == nil {
			result.ReversePending = &reverse
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost a race against a concurrent send for the same pair.
		return nil, ErrAlreadySent
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Respond applies the recipient's action to a pending request. A request that
// does not exist or is not addressed to recipientID is ErrNotFound.
func (s *FriendshipService) Respond(ctx context.Context, requestID, recipientID uint, action Action) (*models.FriendRequest, error) {
	var req models.FriendRequest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND recipient_id = ?", requestID, recipientID).First(&req).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var next models.FriendRequestStatus
		switch action {
		case ActionAccept:
			next = models.StatusAccepted
		case ActionReject:
			next = models.StatusRejected
		default:
			return ErrInvalidAction
		}

		if req.Status != models.StatusPending {
			return ErrAlreadyResponded
		}

		// Conditional update so two concurrent answers cannot both win.
		res := tx.Model(&models.FriendRequest{}).
			Where("id = ? AND status = ?", req.ID, models.StatusPending).
			Update("status", next)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyResponded
		}
		req.Status = next

		if next == models.StatusAccepted {
			return addFriend(tx, req.SenderID, req.RecipientID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// addFriend inserts the unordered pair; an existing friendship is left as is.
func addFriend(tx *gorm.DB, a, b uint) error {
	f := models.NewFriendship(a, b)
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&f).Error
}

// ListFriends returns the users that are friends with userID, ordered by id.
func (s *FriendshipService) ListFriends(ctx context.Context, userID uint) ([]models.User, error) {
	db := s.db.WithContext(ctx)
	if err := db.Select("id").First(&models.User{}, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var rows []models.Friendship
	if err := db.Where("user_a_id = ? OR user_b_id = ?", userID, userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []models.User{}, nil
	}

	ids := make([]uint, 0, len(rows))
	for _, f := range rows {
		ids = append(ids, f.Other(userID))
	}

	var friends []models.User
	if err := db.Where("id IN ?", ids).Order("id").Find(&friends).Error; err != nil {
		return nil, err
	}
	return friends, nil
}

// RemoveFriend deletes the friendship between a and b in both directions at once.
func (s *FriendshipService) RemoveFriend(ctx context.Context, a, b uint) error {
	f := models.NewFriendship(a, b)
	res := s.db.WithContext(ctx).
		Where("user_a_id = ? AND user_b_id = ?", f.UserAID, f.UserBID).
		Delete(&models.Friendship{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFriends
	}
	return nil
}

// RequestsQuery returns a query over the user's requests, newest first.
// Callers paginate it and preload Sender and Recipient.
func (s *FriendshipService) RequestsQuery(ctx context.Context, userID uint, f RequestFilter) (*gorm.DB, error) {
	query := s.db.WithContext(ctx).Model(&models.FriendRequest{})

	switch f.Direction {
	case "incoming":
		query = query.Where("recipient_id = ?", userID)
	case "outgoing":
		query = query.Where("sender_id = ?", userID)
	case "":
		query = query.Where("sender_id = ? OR recipient_id = ?", userID, userID)
	default:
		return nil, NewValidationError("direction", "Must be one of: incoming, outgoing.")
	}

	switch f.Status {
	case "":
	case models.StatusPending, models.StatusAccepted, models.StatusRejected:
		query = query.Where("status = ?", f.Status)
	default:
		return nil, NewValidationError("status", "Must be one of: pending, accepted, rejected.")
	}

	return query.Order("created_at DESC").Order("id DESC"), nil
}
