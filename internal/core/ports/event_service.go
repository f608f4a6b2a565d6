package ports

import (
	"context"
	"time"
)

// StayEventInput is the DTO passed from the transport layer to EventService.
type StayEventInput struct {
	RoomNumber string
	Type       string
	Timestamp  time.Time
	Source     string
}

// EventService processes incoming stay events.
type EventService interface {
	Process(ctx context.Context, event StayEventInput) error
}
