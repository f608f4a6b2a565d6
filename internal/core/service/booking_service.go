package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/aurora-hotel/inventory-system/internal/core/domain"
	"github.com/aurora-hotel/inventory-system/internal/core/ports"
)

// BookingService implements booking creation with the interval-overlap
// conflict check, the booking lifecycle, and payment recording.
type BookingService struct {
	bookings ports.BookingRepository
	rooms    ports.RoomRepository
	guests   ports.GuestRepository
	payments ports.PaymentRepository
	locker   ports.RoomLocker
	log      zerolog.Logger
}

func NewBookingService(
	bookings ports.BookingRepository,
	rooms ports.RoomRepository,
	guests ports.GuestRepository,
	payments ports.PaymentRepository,
	locker ports.RoomLocker,
	log zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		rooms:    rooms,
		guests:   guests,
		payments: payments,
		locker:   locker,
		log:      log,
	}
}

// CreateBooking validates the stay interval, then — under the per-room lock —
// checks for overlapping active bookings, inserts the booking as reserved and
// drives the room to occupied. The conflict check and the commit are covered
// by the same lock so no other booking or cleaning mutation on the room can
// interleave.
func (s *BookingService) CreateBooking(ctx context.Context, input ports.CreateBookingInput) (*ports.BookingResult, error) {
	checkIn := domain.DateOnly(input.CheckIn)
	checkOut := domain.DateOnly(input.CheckOut)
	if !checkIn.Before(checkOut) {
		return nil, domain.ErrInvalidStayDates
	}

	acquired, err := s.locker.Acquire(ctx, input.RoomNumber)
	if err != nil {
		return nil, fmt.Errorf("acquire room lock: %w", err)
	}
	if !acquired {
		return nil, domain.ErrRoomBusy
	}
	defer func() {
		if err := s.locker.Release(ctx, input.RoomNumber); err != nil {
			s.log.Warn().Err(err).Str("room", input.RoomNumber).Msg("failed to release room lock")
		}
	}()

	room, err := s.rooms.FindByNumber(ctx, input.RoomNumber)
	if err != nil {
		return nil, err
	}
	if !room.Status.Bookable() {
		return nil, domain.ErrRoomNotBookable
	}

	active, err := s.bookings.ListActiveByRoom(ctx, room.ID)
	if err != nil {
		return nil, err
	}
	for _, b := range active {
		if domain.Overlaps(checkIn, checkOut, b.CheckIn, b.CheckOut) {
			return nil, domain.ErrBookingConflict
		}
	}

	guest, err := s.resolveGuest(ctx, input.Guest)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		GuestID:  guest.ID,
		RoomID:   room.ID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		BookedAt: time.Now().UTC(),
		Status:   domain.BookingReserved,
	}
	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	if err := s.rooms.UpdateStatus(ctx, room.ID, room.Status, domain.RoomOccupied); err != nil {
		// The booking is already committed; cancel it so a failed room
		// transition leaves no reserved booking behind.
		if cerr := s.bookings.UpdateStatus(ctx, created.ID, domain.BookingReserved, domain.BookingCancelled); cerr != nil {
			s.log.Error().Err(cerr).Str("booking_id", created.ID).Msg("failed to cancel booking after room update failure")
		}
		return nil, err
	}

	s.log.Info().
		Str("booking_id", created.ID).
		Str("room", room.Number).
		Str("guest_id", guest.ID).
		Time("check_in", checkIn).
		Time("check_out", checkOut).
		Msg("booking created")

	return &ports.BookingResult{
		BookingID:  created.ID,
		RoomNumber: room.Number,
		Status:     string(created.Status),
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	}, nil
}

// resolveGuest finds the guest by passport or registers a new one.
func (s *BookingService) resolveGuest(ctx context.Context, input ports.GuestInput) (*domain.Guest, error) {
	guest, err := s.guests.FindByPassport(ctx, input.Passport)
	if err == nil {
		return guest, nil
	}
	if !errors.Is(err, domain.ErrGuestNotFound) {
		return nil, err
	}

	return s.guests.Create(ctx, &domain.Guest{
		FullName:    input.FullName,
		Phone:       input.Phone,
		Email:       input.Email,
		Passport:    input.Passport,
		Preferences: input.Preferences,
	})
}

// CheckIn moves a reserved booking to checked-in. The room stays occupied.
func (s *BookingService) CheckIn(ctx context.Context, bookingID string) error {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if !booking.Status.CanTransitionTo(domain.BookingCheckedIn) {
		return fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, booking.Status, domain.BookingCheckedIn)
	}
	return s.bookings.UpdateStatus(ctx, booking.ID, booking.Status, domain.BookingCheckedIn)
}

// CheckOut completes a checked-in booking and marks the room dirty. When
// cleaning was already assigned pre-emptively the room status is left alone.
func (s *BookingService) CheckOut(ctx context.Context, bookingID string) error {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if !booking.Status.CanTransitionTo(domain.BookingCompleted) {
		return fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, booking.Status, domain.BookingCompleted)
	}
	if err := s.bookings.UpdateStatus(ctx, booking.ID, booking.Status, domain.BookingCompleted); err != nil {
		return err
	}

	room, err := s.rooms.FindByID(ctx, booking.RoomID)
	if err != nil {
		return err
	}
	if room.Status == domain.RoomOccupied {
		if err := s.rooms.UpdateStatus(ctx, room.ID, domain.RoomOccupied, domain.RoomDirty); err != nil {
			return err
		}
	}

	s.log.Info().Str("booking_id", booking.ID).Str("room_id", booking.RoomID).Msg("guest checked out")
	return nil
}

// Cancel cancels a reserved booking. The room is released back to available
// when no other active booking holds it.
func (s *BookingService) Cancel(ctx context.Context, bookingID string) error {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if !booking.Status.CanTransitionTo(domain.BookingCancelled) {
		return fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, booking.Status, domain.BookingCancelled)
	}
	if err := s.bookings.UpdateStatus(ctx, booking.ID, booking.Status, domain.BookingCancelled); err != nil {
		return err
	}

	remaining, err := s.bookings.ListActiveByRoom(ctx, booking.RoomID)
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		room, err := s.rooms.FindByID(ctx, booking.RoomID)
		if err != nil {
			return err
		}
		if room.Status == domain.RoomOccupied {
			if err := s.rooms.UpdateStatus(ctx, room.ID, domain.RoomOccupied, domain.RoomAvailable); err != nil {
				return err
			}
		}
	}

	s.log.Info().Str("booking_id", booking.ID).Msg("booking cancelled")
	return nil
}

// RecordPayment appends a payment against an existing booking.
func (s *BookingService) RecordPayment(ctx context.Context, input ports.RecordPaymentInput) (*domain.Payment, error) {
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if _, err := s.bookings.FindByID(ctx, input.BookingID); err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		BookingID:     input.BookingID,
		Date:          domain.DateOnly(input.Date),
		Amount:        input.Amount,
		ReceiptNumber: input.ReceiptNumber,
	}
	created, err := s.payments.Create(ctx, payment)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("booking_id", input.BookingID).Float64("amount", input.Amount).Msg("payment recorded")
	return created, nil
}
