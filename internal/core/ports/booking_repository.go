package ports

import (
	"context"
	"time"

	"github.com/aurora-hotel/inventory-system/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	// ListActiveByRoom returns bookings on the room whose status is reserved
	// or checked-in.
	ListActiveByRoom(ctx context.Context, roomID string) ([]*domain.Booking, error)
	// ListActiveOn returns active bookings whose half-open stay interval
	// covers the given date.
	ListActiveOn(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	// UpdateStatus performs a compare-and-swap on the booking status;
	// domain.ErrInvalidTransition when the stored status no longer equals from.
	UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) error
}

// GuestRepository defines persistence operations for guests.
type GuestRepository interface {
	Create(ctx context.Context, guest *domain.Guest) (*domain.Guest, error)
	FindByPassport(ctx context.Context, passport string) (*domain.Guest, error)
}

// PaymentRepository defines persistence operations for payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	// SumOn returns the total amount of payments dated exactly on date.
	SumOn(ctx context.Context, date time.Time) (float64, error)
}
