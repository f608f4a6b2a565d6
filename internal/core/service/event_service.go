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

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, roomNumber, eventType string, ts time.Time) (bool, error)
	Mark(ctx context.Context, roomNumber, eventType string, ts time.Time) error
}

type eventService struct {
	rooms    ports.RoomRepository
	bookings ports.BookingRepository
	tasks    ports.CleaningRepository
	events   ports.EventRepository
	dedup    DedupChecker
	log      zerolog.Logger
}

// NewEventService returns an EventService that applies stay events reported
// by external front-desk systems through the same lifecycle rules as the
// direct operations.
func NewEventService(
	rooms ports.RoomRepository,
	bookings ports.BookingRepository,
	tasks ports.CleaningRepository,
	events ports.EventRepository,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.EventService {
	return &eventService{
		rooms:    rooms,
		bookings: bookings,
		tasks:    tasks,
		events:   events,
		dedup:    dedup,
		log:      log,
	}
}

// Process validates, deduplicates and applies a single stay event.
func (s *eventService) Process(ctx context.Context, in ports.StayEventInput) error {
	if in.Type != domain.EventCheckedOut && in.Type != domain.EventCleaningDone {
		return fmt.Errorf("process event: %w: %q", domain.ErrUnknownEventType, in.Type)
	}

	// Idempotency check — silently skip duplicates.
	isDup, err := s.dedup.IsDuplicate(ctx, in.RoomNumber, in.Type, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("room", in.RoomNumber).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("room", in.RoomNumber).Str("type", in.Type).Msg("duplicate event skipped")
		return nil
	}

	room, err := s.rooms.FindByNumber(ctx, in.RoomNumber)
	if err != nil {
		return fmt.Errorf("process event: %w", err)
	}

	// Mark as processed before writing so a crashed retry cannot double-apply.
	if markErr := s.dedup.Mark(ctx, in.RoomNumber, in.Type, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("room", in.RoomNumber).Msg("failed to set dedup key")
	}

	switch in.Type {
	case domain.EventCheckedOut:
		err = s.applyCheckout(ctx, room)
	case domain.EventCleaningDone:
		err = s.applyCleaningDone(ctx, room)
	}
	if err != nil {
		return err
	}

	// Audit trail insert is non-fatal.
	audit := &domain.StayEvent{
		RoomNumber: in.RoomNumber,
		Type:       in.Type,
		Timestamp:  in.Timestamp,
		Source:     in.Source,
	}
	if err := s.events.Insert(ctx, audit); err != nil {
		s.log.Warn().Err(err).Str("room", in.RoomNumber).Msg("failed to insert audit event")
	}

	s.log.Info().
		Str("room", in.RoomNumber).
		Str("type", in.Type).
		Str("source", in.Source).
		Msg("stay event processed")
	return nil
}

// applyCheckout completes the room's checked-in booking and marks the room
// dirty, unless cleaning was already assigned pre-emptively.
func (s *eventService) applyCheckout(ctx context.Context, room *domain.Room) error {
	active, err := s.bookings.ListActiveByRoom(ctx, room.ID)
	if err != nil {
		return fmt.Errorf("process event: %w", err)
	}
	for _, b := range active {
		if b.Status != domain.BookingCheckedIn {
			continue
		}
		if err := s.bookings.UpdateStatus(ctx, b.ID, domain.BookingCheckedIn, domain.BookingCompleted); err != nil {
			return fmt.Errorf("process event: %w", err)
		}
	}

	if room.Status == domain.RoomOccupied {
		if err := s.rooms.UpdateStatus(ctx, room.ID, domain.RoomOccupied, domain.RoomDirty); err != nil {
			return fmt.Errorf("process event: %w", err)
		}
	}
	return nil
}

// applyCleaningDone closes the room's assigned task and moves it to clean.
func (s *eventService) applyCleaningDone(ctx context.Context, room *domain.Room) error {
	if room.Status != domain.RoomCleaningAssigned {
		return fmt.Errorf("process event: %w (from %s to %s)", domain.ErrInvalidTransition, room.Status, domain.RoomClean)
	}

	task, err := s.tasks.FindAssignedByRoom(ctx, room.ID)
	if err == nil {
		if err := s.tasks.UpdateStatus(ctx, task.ID, domain.CleaningAssigned, domain.CleaningDone); err != nil {
			return fmt.Errorf("process event: %w", err)
		}
	} else if !errors.Is(err, domain.ErrCleaningTaskNotFound) {
		return fmt.Errorf("process event: %w", err)
	}

	if err := s.rooms.UpdateStatus(ctx, room.ID, domain.RoomCleaningAssigned, domain.RoomClean); err != nil {
		return fmt.Errorf("process event: %w", err)
	}
	return nil
}
