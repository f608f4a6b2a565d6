package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aurora-hotel/inventory-system/internal/core/domain"
	"github.com/aurora-hotel/inventory-system/internal/core/ports"
)

type stubEventRepo struct {
	inserted []*domain.StayEvent
	failWith error
}

func (r *stubEventRepo) Insert(_ context.Context, event *domain.StayEvent) error {
	if r.failWith != nil {
		return r.failWith
	}
	copy := *event
	r.inserted = append(r.inserted, &copy)
	return nil
}

type stubDedup struct {
	seen     map[string]bool
	checkErr error
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) key(room, eventType string, ts time.Time) string {
	return fmt.Sprintf("%s:%s:%d", room, eventType, ts.Unix())
}

func (d *stubDedup) IsDuplicate(_ context.Context, room, eventType string, ts time.Time) (bool, error) {
	if d.checkErr != nil {
		return false, d.checkErr
	}
	return d.seen[d.key(room, eventType, ts)], nil
}

func (d *stubDedup) Mark(_ context.Context, room, eventType string, ts time.Time) error {
	d.seen[d.key(room, eventType, ts)] = true
	return nil
}

type eventFixture struct {
	svc      ports.EventService
	rooms    *stubRoomRepo
	bookings *stubBookingRepo
	tasks    *stubCleaningRepo
	events   *stubEventRepo
	dedup    *stubDedup
}

func newEventFixture(t *testing.T) *eventFixture {
	t.Helper()
	f := &eventFixture{
		rooms:    newStubRoomRepo(),
		bookings: newStubBookingRepo(),
		tasks:    newStubCleaningRepo(),
		events:   &stubEventRepo{},
		dedup:    newStubDedup(),
	}
	f.svc = NewEventService(f.rooms, f.bookings, f.tasks, f.events, f.dedup, testLogger())
	return f
}

func (f *eventFixture) addRoom(t *testing.T, number string, status domain.RoomStatus) *domain.Room {
	t.Helper()
	room, err := f.rooms.Create(context.Background(), &domain.Room{Number: number, Status: status})
	if err != nil {
		t.Fatalf("add room: %v", err)
	}
	return room
}

func checkoutEvent(room string, ts time.Time) ports.StayEventInput {
	return ports.StayEventInput{
		RoomNumber: room,
		Type:       domain.EventCheckedOut,
		Timestamp:  ts,
		Source:     "front-desk",
	}
}

func TestEventService_Process_UnknownType(t *testing.T) {
	f := newEventFixture(t)
	err := f.svc.Process(context.Background(), ports.StayEventInput{
		RoomNumber: "301", Type: "minibar_restocked", Timestamp: time.Now(),
	})
	if !errors.Is(err, domain.ErrUnknownEventType) {
		t.Fatalf("expected ErrUnknownEventType, got %v", err)
	}
}

func TestEventService_Process_UnknownRoom(t *testing.T) {
	f := newEventFixture(t)
	err := f.svc.Process(context.Background(), checkoutEvent("999", time.Now()))
	if !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestEventService_Process_Checkout(t *testing.T) {
	f := newEventFixture(t)
	room := f.addRoom(t, "301", domain.RoomOccupied)
	booking, err := f.bookings.Create(context.Background(), &domain.Booking{
		GuestID: "g1", RoomID: room.ID, Status: domain.BookingCheckedIn,
		CheckIn: date(2024, 1, 1), CheckOut: date(2024, 1, 5),
	})
	if err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	if err := f.svc.Process(context.Background(), checkoutEvent("301", time.Now())); err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if got := f.bookings.bookings[booking.ID].Status; got != domain.BookingCompleted {
		t.Fatalf("expected completed booking, got %s", got)
	}
	if got := f.rooms.rooms[room.ID].Status; got != domain.RoomDirty {
		t.Fatalf("expected dirty room, got %s", got)
	}
	if len(f.events.inserted) != 1 {
		t.Fatalf("expected 1 audit record, got %d", len(f.events.inserted))
	}
}

func TestEventService_Process_CheckoutKeepsPreassignedCleaning(t *testing.T) {
	f := newEventFixture(t)
	// Cleaning was scheduled ahead of checkout, so the room already moved on.
	room := f.addRoom(t, "302", domain.RoomCleaningAssigned)

	if err := f.svc.Process(context.Background(), checkoutEvent("302", time.Now())); err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if got := f.rooms.rooms[room.ID].Status; got != domain.RoomCleaningAssigned {
		t.Fatalf("expected cleaning_assigned untouched, got %s", got)
	}
}

func TestEventService_Process_DuplicateSkipped(t *testing.T) {
	f := newEventFixture(t)
	room := f.addRoom(t, "303", domain.RoomOccupied)
	ts := time.Now()

	if err := f.svc.Process(context.Background(), checkoutEvent("303", ts)); err != nil {
		t.Fatalf("first process failed: %v", err)
	}
	// Put the room back to occupied; a replayed event must not flip it again.
	f.rooms.rooms[room.ID].Status = domain.RoomOccupied

	if err := f.svc.Process(context.Background(), checkoutEvent("303", ts)); err != nil {
		t.Fatalf("duplicate must be a no-op, got %v", err)
	}
	if got := f.rooms.rooms[room.ID].Status; got != domain.RoomOccupied {
		t.Fatalf("duplicate event applied: room is %s", got)
	}
	if len(f.events.inserted) != 1 {
		t.Fatalf("duplicate event audited: %d records", len(f.events.inserted))
	}
}

func TestEventService_Process_DedupFailureProceedsAnyway(t *testing.T) {
	f := newEventFixture(t)
	room := f.addRoom(t, "304", domain.RoomOccupied)
	f.dedup.checkErr = errors.New("redis down")

	if err := f.svc.Process(context.Background(), checkoutEvent("304", time.Now())); err != nil {
		t.Fatalf("process should survive a dedup outage, got %v", err)
	}
	if got := f.rooms.rooms[room.ID].Status; got != domain.RoomDirty {
		t.Fatalf("expected dirty room, got %s", got)
	}
}

func TestEventService_Process_CleaningDone(t *testing.T) {
	f := newEventFixture(t)
	room := f.addRoom(t, "305", domain.RoomCleaningAssigned)
	task, err := f.tasks.Create(context.Background(), &domain.CleaningTask{
		RoomID: room.ID, StaffID: "hk-1", Status: domain.CleaningAssigned,
	})
	if err != nil {
		t.Fatalf("seed task: %v", err)
	}

	err = f.svc.Process(context.Background(), ports.StayEventInput{
		RoomNumber: "305", Type: domain.EventCleaningDone, Timestamp: time.Now(), Source: "housekeeping-app",
	})
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if got := f.tasks.tasks[task.ID].Status; got != domain.CleaningDone {
		t.Fatalf("expected done task, got %s", got)
	}
	if got := f.rooms.rooms[room.ID].Status; got != domain.RoomClean {
		t.Fatalf("expected clean room, got %s", got)
	}
}

func TestEventService_Process_CleaningDoneWrongState(t *testing.T) {
	f := newEventFixture(t)
	f.addRoom(t, "306", domain.RoomOccupied)

	err := f.svc.Process(context.Background(), ports.StayEventInput{
		RoomNumber: "306", Type: domain.EventCleaningDone, Timestamp: time.Now(),
	})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}
