package domain

import "testing"

func TestRoomStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to RoomStatus
		want     bool
	}{
		{RoomAvailable, RoomOccupied, true},
		{RoomClean, RoomOccupied, true},
		{RoomOccupied, RoomDirty, true},
		{RoomOccupied, RoomCleaningAssigned, true}, // pre-emptive scheduling
		{RoomDirty, RoomCleaningAssigned, true},
		{RoomCleaningAssigned, RoomClean, true},

		{RoomAvailable, RoomDirty, false},
		{RoomAvailable, RoomCleaningAssigned, false},
		{RoomDirty, RoomOccupied, false},
		{RoomDirty, RoomClean, false},
		{RoomClean, RoomDirty, false},
		{RoomCleaningAssigned, RoomOccupied, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestRoomStatus_Bookable(t *testing.T) {
	bookable := map[RoomStatus]bool{
		RoomAvailable:        true,
		RoomClean:            true,
		RoomOccupied:         false,
		RoomDirty:            false,
		RoomCleaningAssigned: false,
	}
	for status, want := range bookable {
		if got := status.Bookable(); got != want {
			t.Errorf("%s.Bookable(): got %v, want %v", status, got, want)
		}
	}
}

func TestBookingStatus_ForwardOnly(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingReserved, BookingCheckedIn, true},
		{BookingReserved, BookingCancelled, true},
		{BookingCheckedIn, BookingCompleted, true},

		{BookingCheckedIn, BookingReserved, false},
		{BookingCancelled, BookingReserved, false},
		{BookingCancelled, BookingCheckedIn, false},
		{BookingCompleted, BookingCheckedIn, false},
		{BookingCompleted, BookingReserved, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
