package domain

import (
	"errors"
	"time"
)

// Stay event types accepted from external front-desk systems.
const (
	EventCheckedOut   = "checked_out"
	EventCleaningDone = "cleaning_done"
)

var ErrUnknownEventType = errors.New("unknown stay event type")

// StayEvent is a room-level signal received from an external source and
// recorded in the audit trail after processing.
type StayEvent struct {
	ID         string    `json:"id"`
	RoomNumber string    `json:"room_number"`
	Type       string    `json:"type"`
	Timestamp  time.Time `json:"timestamp"`
	Source     string    `json:"source"`
}
