package ports

import (
	"context"
	"time"

	"github.com/aurora-hotel/inventory-system/internal/core/domain"
)

// CatalogEntry is one row of the imported room catalog.
type CatalogEntry struct {
	Number   string
	Floor    int
	Category string
}

// ImportResult summarises a catalog import run.
type ImportResult struct {
	Imported int
	Skipped  int
}

// RoomService covers the room catalog and inventory views.
type RoomService interface {
	// ImportCatalog inserts catalog rooms, mapping category to nightly price.
	// Already-known room numbers are skipped, making the import idempotent.
	ImportCatalog(ctx context.Context, entries []CatalogEntry) (*ImportResult, error)
	ListRooms(ctx context.Context, status domain.RoomStatus) ([]*domain.Room, error)
}

// AssignCleaningInput carries the data to schedule a cleaning task.
type AssignCleaningInput struct {
	RoomNumber string
	StaffLogin string
	Date       time.Time
}

// CleaningService schedules and completes cleaning tasks.
type CleaningService interface {
	Assign(ctx context.Context, input AssignCleaningInput) (*domain.CleaningTask, error)
	Complete(ctx context.Context, taskID string) error
}

// DailyReport is the point-in-time occupancy and revenue view for one date.
type DailyReport struct {
	Date          time.Time
	TotalRooms    int64
	OccupiedRooms int64
	OccupancyRate float64
	Revenue       float64
	ADR           float64
	RevPAR        float64
}

// ReportService computes daily statistics.
type ReportService interface {
	Daily(ctx context.Context, date time.Time) (*DailyReport, error)
}
