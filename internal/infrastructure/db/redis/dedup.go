package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// StayDedup provides idempotency checks for stay events backed by Redis.
// Key format: stay:<room_number>:<event_type>:<unix_timestamp>
type StayDedup struct {
	client *redis.Client
}

// NewStayDedup creates a StayDedup wrapping the given Redis client.
func NewStayDedup(client *redis.Client) *StayDedup {
	return &StayDedup{client: client}
}

// IsDuplicate reports whether this exact event has already been processed.
func (d *StayDedup) IsDuplicate(ctx context.Context, roomNumber, eventType string, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(roomNumber, eventType, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this event has been processed (expires after dedupTTL).
func (d *StayDedup) Mark(ctx context.Context, roomNumber, eventType string, ts time.Time) error {
	return d.client.Set(ctx, d.key(roomNumber, eventType, ts), "1", dedupTTL).Err()
}

func (d *StayDedup) key(roomNumber, eventType string, ts time.Time) string {
	return fmt.Sprintf("stay:%s:%s:%d", roomNumber, eventType, ts.Unix())
}
