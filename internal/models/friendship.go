package models

import "time"

// FriendRequestStatus defines the state of a friend request.
type FriendRequestStatus string

const (
	// StatusPending means the request has been sent but not answered yet.
	StatusPending FriendRequestStatus = "pending"
	// StatusAccepted is terminal; the two users are friends.
	StatusAccepted FriendRequestStatus = "accepted"
	// StatusRejected is terminal; nothing else changes.
	StatusRejected FriendRequestStatus = "rejected"
)

// FriendRequest is a directed proposal from Sender to Recipient.
// At most one request exists per ordered (SenderID, RecipientID) pair.
type FriendRequest struct {
	ID          uint                `gorm:"primaryKey"`
	SenderID    uint                `gorm:"not null;uniqueIndex:idx_friend_request_pair"`
	RecipientID uint                `gorm:"not null;uniqueIndex:idx_friend_request_pair;index"`
	Status      FriendRequestStatus `gorm:"type:varchar(10);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Sender    User `gorm:"foreignKey:SenderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Recipient User `gorm:"foreignKey:RecipientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// Friendship is one confirmed, symmetric friendship. The pair is stored
// normalised so that UserAID < UserBID; one row covers both directions.
type Friendship struct {
	UserAID   uint `gorm:"column:user_a_id;primaryKey;autoIncrement:false"`
	UserBID   uint `gorm:"column:user_b_id;primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time

	UserA User `gorm:"foreignKey:UserAID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	UserB User `gorm:"foreignKey:UserBID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// NewFriendship builds the normalised row for the unordered pair {a, b}.
func NewFriendship(a, b uint) Friendship {
	if a > b {
		a, b = b, a
	}
	return Friendship{UserAID: a, UserBID: b}
}

// Other returns the member of the pair that is not userID.
func (f Friendship) Other(userID uint) uint {
	if f.UserAID == userID {
		return f.UserBID
	}
	return f.UserAID
}
