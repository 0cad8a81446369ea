package service

import (
	"context"
	"testing"

	"mindful/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func friendIDs(t *testing.T, s *FriendshipService, userID uint) []uint {
	t.Helper()
	friends, err := s.ListFriends(context.Background(), userID)
	require.NoError(t, err)
	ids := make([]uint, 0, len(friends))
	for _, f := range friends {
		ids = append(ids, f.ID)
	}
	return ids
}

func TestSendTwiceKeepsSingleRequest(t *testing.T) {
	db := newTestDB(t)
	s := NewFriendshipService(db)
	alice, bob := createUser(t, db, "alice"), createUser(t, db, "bob")
	ctx := context.Background()

	res, err := s.Send(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, res.Request.Status)
	assert.Nil(t, res.ReversePending)

	_, err = s.Send(ctx, alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrAlreadySent)

	var count int64
	require.NoError(t, db.Model(&models.FriendRequest{}).
		Where("sender_id = ? AND recipient_id = ?", alice.ID, bob.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSendAfterRejectIsStillRejected(t *testing.T) {
	db := newTestDB(t)
	s := NewFriendshipService(db)
	alice, bob := createUser(t, db, "alice"), createUser(t, db, "bob")
	ctx := context.Background()

	res, err := s.Send(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = s.Respond(ctx, res.Request.ID, bob.ID, ActionReject)
	require.NoError(t, err)

	_, err = s.Send(ctx, alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrAlreadySent)
}

func TestSendValidation(t *testing.T) {
	db := newTestDB(t)
	s := NewFriendshipService(db)
	alice := createUser(t, db, "alice")

	_, err := s.Send(context.Background(), alice.ID, alice.ID)
	ve, ok := IsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "recipient_id")

	_, err = s.Send(context.Background(), alice.ID, 4242)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSendFlagsReversePending(t *testing.T) {
	db := newTestDB(t)
	s := NewFriendshipService(db)
	alice, bob := createUser(t, db, "alice"), createUser(t, db, "bob")
	ctx := context.Background()

	first, err := s.Send(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	second, err := s.Send(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, second.ReversePending)
	assert.Equal(t, first.Request.ID, second.ReversePending.ID)

	// Both stay pending; nothing is merged.
	assert.Empty(t, friendIDs(t, s, alice.ID))
}

func TestAcceptIsSymmetric(t *testing.T) {
	db := newTestDB(t)
	s := NewFriendshipService(db)
	alice, bob := createUser(t, db, "alice"), createUser(t, db, "bob")
	ctx := context.Background()

	res, err := s.Send(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	req, err := s.Respond(ctx, res.Request.ID, bob.ID, ActionAccept)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, req.Status)

	assert.Equal(t, []uint{bob.ID}, friendIDs(t, s, alice.ID))
	assert.Equal(t, []uint{alice.ID}, friendIDs(t, s, bob.ID))

	// One row stores the unordered pair.
	var rows int64
	require.NoError(t, db.Model(&models.Friendship{}).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}

func TestRejectLeavesFriendsUnchanged(t *testing.T) {
	db := newTestDB(t)
	s := NewFriendshipService(db)
	alice, bob := createUser(t, db, "alice"), createUser(t, db, "bob")
	ctx := context.Background()

	res, err := s.Send(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	req, err := s.Respond(ctx, res.Request.ID, bob.ID, ActionReject)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, req.Status)

	assert.Empty(t, friendIDs(t, s, alice.ID))
	assert.Empty(t, friendIDs(t, s, bob.ID))
}

func TestRespondErrors(t *testing.T) {
	db := newTestDB(t)
	s := NewFriendshipService(db)
	alice, bob := createUser(t, db, "alice"), createUser(t, db, "bob")
	ctx := context.Background()

	res, err := s.Send(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	id := res.Request.ID

	_, err = s.Respond(ctx, id, alice.ID, ActionAccept)
	assert.ErrorIs(t, err, ErrNotFound, "only the recipient may respond")

	_, err = s.Respond(ctx, id+100, bob.ID, ActionAccept)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Respond(ctx, id, bob.ID, Action("maybe"))
	assert.ErrorIs(t, err, ErrInvalidAction)

	var stored models.FriendRequest
	require.NoError(t, db.First(&stored, id).Error)
	assert.Equal(t, models.StatusPending, stored.Status)

	_, err = s.Respond(ctx, id, bob.ID, ActionAccept)
	require.NoError(t, err)
	_, err = s.Respond(ctx, id, bob.ID, ActionReject)
	assert.ErrorIs(t, err, ErrAlreadyResponded)
}

func TestAcceptWhenAlreadyFriends(t *testing.T) {
	db := newTestDB(t)
	s := NewFriendshipService(db)
	alice, bob := createUser(t, db, "alice"), createUser(t, db, "bob")
	ctx := context.Background()

	first, err := s.Send(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	second, err := s.Send(ctx, bob.ID, alice.ID)
	require.NoError(t, err)

	_, err = s.Respond(ctx, first.Request.ID, bob.ID, ActionAccept)
	require.NoError(t, err)
	_, err = s.Respond(ctx, second.Request.ID, alice.ID, ActionAccept)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Friendship{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRemoveFriend(t *testing.T) {
	db := newTestDB(t)
	s := NewFriendshipService(db)
	alice, bob := createUser(t, db, "alice"), createUser(t, db, "bob")
	ctx := context.Background()

	res, err := s.Send(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = s.Respond(ctx, res.Request.ID, bob.ID, ActionAccept)
	require.NoError(t, err)

	require.NoError(t, s.RemoveFriend(ctx, bob.ID, alice.ID))
	assert.Empty(t, friendIDs(t, s, alice.ID))
	assert.Empty(t, friendIDs(t, s, bob.ID))

	assert.ErrorIs(t, s.RemoveFriend(ctx, alice.ID, bob.ID), ErrNotFriends)
}

func TestListFriendsUnknownUser(t *testing.T) {
	s := NewFriendshipService(newTestDB(t))
	_, err := s.ListFriends(context.Background(), 77)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRequestsQuery(t *testing.T) {
	db := newTestDB(t)
	s := NewFriendshipService(db)
	alice, bob, carol := createUser(t, db, "alice"), createUser(t, db, "bob"), createUser(t, db, "carol")
	ctx := context.Background()

	_, err := s.Send(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	res, err := s.Send(ctx, carol.ID, alice.ID)
	require.NoError(t, err)
	_, err = s.Respond(ctx, res.Request.ID, alice.ID, ActionReject)
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter RequestFilter
		want   int
	}{
		{"all", RequestFilter{}, 2},
		{"incoming", RequestFilter{Direction: "incoming"}, 1},
		{"outgoing", RequestFilter{Direction: "outgoing"}, 1},
		{"pending", RequestFilter{Status: models.StatusPending}, 1},
		{"incoming rejected", RequestFilter{Direction: "incoming", Status: models.StatusRejected}, 1},
		{"outgoing accepted", RequestFilter{Direction: "outgoing", Status: models.StatusAccepted}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := s.RequestsQuery(ctx, alice.ID, tt.filter)
			require.NoError(t, err)
			var got []models.FriendRequest
			require.NoError(t, q.Find(&got).Error)
			assert.Len(t, got, tt.want)
		})
	}

	_, err = s.RequestsQuery(ctx, alice.ID, RequestFilter{Direction: "sideways"})
	_, ok := IsValidation(err)
	assert.True(t, ok)
	_, err = s.RequestsQuery(ctx, alice.ID, RequestFilter{Status: "maybe"})
	_, ok = IsValidation(err)
	assert.True(t, ok)
}
