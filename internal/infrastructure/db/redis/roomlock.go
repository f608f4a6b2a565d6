package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultLockTTL = 10 * time.Second

// RoomLocker serialises booking writes per room using a Redis SET NX lock.
// The TTL bounds how long a crashed holder can keep a room locked.
type RoomLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRoomLocker creates a RoomLocker. If ttl <= 0, defaultLockTTL is used.
func NewRoomLocker(client *redis.Client, ttl time.Duration) *RoomLocker {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &RoomLocker{client: client, ttl: ttl}
}

// Acquire attempts to take the lock for a room. It returns false without
// error when another operation already holds it.
func (l *RoomLocker) Acquire(ctx context.Context, roomNumber string) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key(roomNumber), "1", l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire room lock: %w", err)
	}
	return ok, nil
}

// Release frees the lock for a room.
func (l *RoomLocker) Release(ctx context.Context, roomNumber string) error {
	if err := l.client.Del(ctx, l.key(roomNumber)).Err(); err != nil {
		return fmt.Errorf("release room lock: %w", err)
	}
	return nil
}

func (l *RoomLocker) key(roomNumber string) string {
	return fmt.Sprintf("roomlock:%s", roomNumber)
}
