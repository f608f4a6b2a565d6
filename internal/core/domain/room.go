package domain

import "errors"

// RoomStatus represents the operational state of a room.
type RoomStatus string

const (
	RoomAvailable        RoomStatus = "available"
	RoomOccupied         RoomStatus = "occupied"
	RoomDirty            RoomStatus = "dirty"
	RoomCleaningAssigned RoomStatus = "cleaning_assigned"
	RoomClean            RoomStatus = "clean"
)

// validRoomTransitions defines the allowed state machine transitions.
// A room may have cleaning assigned while still occupied: housekeeping is
// scheduled ahead of an upcoming checkout.
var validRoomTransitions = map[RoomStatus][]RoomStatus{
	RoomAvailable:        {RoomOccupied},
	RoomClean:            {RoomOccupied},
	RoomOccupied:         {RoomDirty, RoomCleaningAssigned},
	RoomDirty:            {RoomCleaningAssigned},
	RoomCleaningAssigned: {RoomCleaningAssigned, RoomClean},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrRoomNotFound = errors.New("room not found")
var ErrRoomExists = errors.New("room already exists")
var ErrRoomNotBookable = errors.New("room is not available for booking")
var ErrRoomStateChanged = errors.New("room status changed concurrently")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s RoomStatus) CanTransitionTo(next RoomStatus) bool {
	for _, allowed := range validRoomTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Bookable reports whether a room in this status may be offered for a new booking.
func (s RoomStatus) Bookable() bool {
	return s == RoomAvailable || s == RoomClean
}

// Room is a single unit of the hotel's inventory. Rooms are created once at
// catalog load and then cycle through statuses indefinitely.
type Room struct {
	ID            string     `json:"id"`
	Number        string     `json:"number"`
	Floor         int        `json:"floor"`
	Category      string     `json:"category"`
	PricePerNight float64    `json:"price_per_night"`
	Status        RoomStatus `json:"status"`
}
