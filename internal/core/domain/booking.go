package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a booking. Statuses only
// move forward; a cancelled or completed booking is never resurrected.
type BookingStatus string

const (
	BookingReserved  BookingStatus = "reserved"
	BookingCheckedIn BookingStatus = "checked_in"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

var validBookingTransitions = map[BookingStatus][]BookingStatus{
	BookingReserved:  {BookingCheckedIn, BookingCancelled},
	BookingCheckedIn: {BookingCompleted},
}

var ErrBookingNotFound = errors.New("booking not found")
var ErrBookingConflict = errors.New("room already booked for these dates")
var ErrInvalidStayDates = errors.New("check-out must be after check-in")
var ErrRoomBusy = errors.New("room is being modified by another operation")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validBookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Active reports whether the booking counts for conflict and occupancy purposes.
func (s BookingStatus) Active() bool {
	return s == BookingReserved || s == BookingCheckedIn
}

// Booking is a guest's stay in a room over a half-open date interval
// [CheckIn, CheckOut): the checkout day itself is excluded, so back-to-back
// turnover on the same day is legal.
type Booking struct {
	ID       string        `json:"id"`
	GuestID  string        `json:"guest_id"`
	RoomID   string        `json:"room_id"`
	CheckIn  time.Time     `json:"check_in"`
	CheckOut time.Time     `json:"check_out"`
	BookedAt time.Time     `json:"booked_at"`
	Status   BookingStatus `json:"status"`
}

// Covers reports whether the stay interval covers the given date.
func (b *Booking) Covers(date time.Time) bool {
	return !date.Before(b.CheckIn) && date.Before(b.CheckOut)
}

// Overlaps reports whether two half-open intervals [aIn, aOut) and
// [bIn, bOut) intersect.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

// DateOnly truncates t to midnight UTC. Stay intervals and payment dates are
// tracked at whole-day granularity.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
