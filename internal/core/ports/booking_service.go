package ports

import (
	"context"
	"time"

	"github.com/aurora-hotel/inventory-system/internal/core/domain"
)

// GuestInput holds the guest details supplied with a booking request. The
// guest is recognised by passport; a new record is created on first sight.
type GuestInput struct {
	FullName    string
	Phone       string
	Email       string
	Passport    string
	Preferences string
}

// CreateBookingInput carries all data needed to create a booking.
type CreateBookingInput struct {
	Guest      GuestInput
	RoomNumber string
	CheckIn    time.Time
	CheckOut   time.Time
}

// BookingResult is returned by the service after creating a booking.
type BookingResult struct {
	BookingID  string
	RoomNumber string
	Status     string
	CheckIn    time.Time
	CheckOut   time.Time
}

// RecordPaymentInput carries the data for one payment against a booking.
type RecordPaymentInput struct {
	BookingID     string
	Date          time.Time
	Amount        float64
	ReceiptNumber string
}

// BookingService defines use-case operations for bookings.
type BookingService interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*BookingResult, error)
	CheckIn(ctx context.Context, bookingID string) error
	CheckOut(ctx context.Context, bookingID string) error
	Cancel(ctx context.Context, bookingID string) error
	RecordPayment(ctx context.Context, input RecordPaymentInput) (*domain.Payment, error)
}

// RoomLocker provides per-room mutual exclusion for the check-then-act
// section of booking creation. Acquire returns false without blocking when
// another operation holds the room; the caller may retry.
type RoomLocker interface {
	Acquire(ctx context.Context, roomNumber string) (bool, error)
	Release(ctx context.Context, roomNumber string) error
}
