package models

// All returns every model managed by AutoMigrate, parents first.
func All() []interface{} {
	return []interface{}{
		&User{},
		&FriendRequest{},
		&Friendship{},
		&AudioTrack{},
		&MoodTrack{},
		&ScheduledSession{},
		&Playlist{},
		&PlaylistItem{},
		&LoginSession{},
	}
}
