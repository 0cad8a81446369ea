package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"mindful/backend/internal/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrSessionNotFound is returned for unknown or expired login sessions.
var ErrSessionNotFound = errors.New("login session not found")

// SessionStore keeps server-side login sessions keyed by an opaque id.
type SessionStore interface {
	Create(ctx context.Context, userID uint, ttl time.Duration) (string, error)
	Lookup(ctx context.Context, id string) (uint, error)
	Delete(ctx context.Context, id string) error
}

// RedisSessionStore stores sessions as expiring keys.
type RedisSessionStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, prefix: "session:"}
}

func (s *RedisSessionStore) Create(ctx context.Context, userID uint, ttl time.Duration) (string, error) {
	id := uuid.NewString()
	if err := s.rdb.Set(ctx, s.prefix+id, userID, ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return id, nil
}

func (s *RedisSessionStore) Lookup(ctx context.Context, id string) (uint, error) {
	val, err := s.rdb.Get(ctx, s.prefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrSessionNotFound
	}
	if err != nil {
		return 0, err
	}
	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, ErrSessionNotFound
	}
	return uint(userID), nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, s.prefix+id).Err()
}

// DBSessionStore keeps sessions in the login_sessions table. Used when no
// Redis is configured.
type DBSessionStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewDBSessionStore(db *gorm.DB) *DBSessionStore {
	return &DBSessionStore{db: db, now: time.Now}
}

func (s *DBSessionStore) Create(ctx context.Context, userID uint, ttl time.Duration) (string, error) {
	session := models.LoginSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: s.now().Add(ttl),
	}
	if err := s.db.WithContext(ctx).Omit("User").Create(&session).Error; err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return session.ID, nil
}

func (s *DBSessionStore) Lookup(ctx context.Context, id string) (uint, error) {
	var session models.LoginSession
	err := s.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, s.now()).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrSessionNotFound
	}
	if err != nil {
		return 0, err
	}
	return session.UserID, nil
}

func (s *DBSessionStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.LoginSession{}).Error
}
