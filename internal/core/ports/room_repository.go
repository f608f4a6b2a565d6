package ports

import (
	"context"

	"github.com/aurora-hotel/inventory-system/internal/core/domain"
)

// RoomRepository defines persistence operations for rooms.
type RoomRepository interface {
	// Create inserts a room; domain.ErrRoomExists when the number is taken.
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	FindByNumber(ctx context.Context, number string) (*domain.Room, error)
	FindByID(ctx context.Context, id string) (*domain.Room, error)
	// List returns rooms, optionally filtered by status ("" = all).
	List(ctx context.Context, status domain.RoomStatus) ([]*domain.Room, error)
	Count(ctx context.Context) (int64, error)
	// UpdateStatus performs a compare-and-swap on the room status: the write
	// only lands when the stored status still equals from, otherwise
	// domain.ErrRoomStateChanged is returned.
	UpdateStatus(ctx context.Context, id string, from, to domain.RoomStatus) error
}
