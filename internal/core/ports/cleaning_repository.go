package ports

import (
	"context"

	"github.com/aurora-hotel/inventory-system/internal/core/domain"
)

// CleaningRepository defines persistence operations for cleaning tasks.
type CleaningRepository interface {
	Create(ctx context.Context, task *domain.CleaningTask) (*domain.CleaningTask, error)
	FindByID(ctx context.Context, id string) (*domain.CleaningTask, error)
	// HasAssigned reports whether the room currently has a task in the
	// assigned state.
	HasAssigned(ctx context.Context, roomID string) (bool, error)
	// FindAssignedByRoom returns the room's active task;
	// domain.ErrCleaningTaskNotFound when there is none.
	FindAssignedByRoom(ctx context.Context, roomID string) (*domain.CleaningTask, error)
	// UpdateStatus performs a compare-and-swap on the task status.
	UpdateStatus(ctx context.Context, id string, from, to domain.CleaningStatus) error
}

// EventRepository persists processed stay events as an audit trail.
type EventRepository interface {
	Insert(ctx context.Context, event *domain.StayEvent) error
}
