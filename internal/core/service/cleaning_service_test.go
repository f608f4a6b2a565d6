package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aurora-hotel/inventory-system/internal/core/domain"
	"github.com/aurora-hotel/inventory-system/internal/core/ports"
)

type stubCleaningRepo struct {
	tasks map[string]*domain.CleaningTask
	seq   int
}

func newStubCleaningRepo() *stubCleaningRepo {
	return &stubCleaningRepo{tasks: make(map[string]*domain.CleaningTask)}
}

func (r *stubCleaningRepo) Create(_ context.Context, task *domain.CleaningTask) (*domain.CleaningTask, error) {
	r.seq++
	copy := *task
	copy.ID = fmt.Sprintf("task-%d", r.seq)
	r.tasks[copy.ID] = &copy
	clone := copy
	return &clone, nil
}

func (r *stubCleaningRepo) FindByID(_ context.Context, id string) (*domain.CleaningTask, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrCleaningTaskNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubCleaningRepo) HasAssigned(_ context.Context, roomID string) (bool, error) {
	for _, t := range r.tasks {
		if t.RoomID == roomID && t.Status == domain.CleaningAssigned {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubCleaningRepo) FindAssignedByRoom(_ context.Context, roomID string) (*domain.CleaningTask, error) {
	for _, t := range r.tasks {
		if t.RoomID == roomID && t.Status == domain.CleaningAssigned {
			clone := *t
			return &clone, nil
		}
	}
	return nil, domain.ErrCleaningTaskNotFound
}

func (r *stubCleaningRepo) UpdateStatus(_ context.Context, id string, from, to domain.CleaningStatus) error {
	t, ok := r.tasks[id]
	if !ok {
		return domain.ErrCleaningTaskNotFound
	}
	if t.Status != from {
		return domain.ErrInvalidTransition
	}
	t.Status = to
	return nil
}

type cleaningFixture struct {
	svc      *CleaningService
	tasks    *stubCleaningRepo
	rooms    *stubRoomRepo
	accounts *stubAccountRepo
}

func newCleaningFixture(t *testing.T) *cleaningFixture {
	t.Helper()
	f := &cleaningFixture{
		tasks:    newStubCleaningRepo(),
		rooms:    newStubRoomRepo(),
		accounts: newStubAccountRepo(),
	}
	f.svc = NewCleaningService(f.tasks, f.rooms, f.accounts, testLogger())
	return f
}

func (f *cleaningFixture) addRoom(t *testing.T, number string, status domain.RoomStatus) *domain.Room {
	t.Helper()
	room, err := f.rooms.Create(context.Background(), &domain.Room{Number: number, Status: status})
	if err != nil {
		t.Fatalf("add room: %v", err)
	}
	return room
}

func TestCleaningService_Assign_Success(t *testing.T) {
	f := newCleaningFixture(t)
	seedAccount(t, f.accounts, "katya", "s3cret", domain.RoleHousekeeper)
	room := f.addRoom(t, "201", domain.RoomDirty)

	task, err := f.svc.Assign(context.Background(), ports.AssignCleaningInput{
		RoomNumber: "201",
		StaffLogin: "katya",
		Date:       date(2024, 1, 10),
	})
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if task.Status != domain.CleaningAssigned {
		t.Fatalf("expected assigned task, got %s", task.Status)
	}
	if got := f.rooms.rooms[room.ID].Status; got != domain.RoomCleaningAssigned {
		t.Fatalf("expected cleaning_assigned room, got %s", got)
	}
}

func TestCleaningService_Assign_RequiresHousekeeper(t *testing.T) {
	f := newCleaningFixture(t)
	seedAccount(t, f.accounts, "boris", "s3cret", domain.RoleManager)
	f.addRoom(t, "202", domain.RoomDirty)

	_, err := f.svc.Assign(context.Background(), ports.AssignCleaningInput{
		RoomNumber: "202", StaffLogin: "boris", Date: date(2024, 1, 10),
	})
	if !errors.Is(err, domain.ErrNotHousekeeper) {
		t.Fatalf("expected ErrNotHousekeeper, got %v", err)
	}
}

func TestCleaningService_Assign_RejectsDoubleAssignment(t *testing.T) {
	f := newCleaningFixture(t)
	seedAccount(t, f.accounts, "katya", "s3cret", domain.RoleHousekeeper)
	seedAccount(t, f.accounts, "vera", "s3cret", domain.RoleHousekeeper)
	f.addRoom(t, "203", domain.RoomDirty)
	ctx := context.Background()

	if _, err := f.svc.Assign(ctx, ports.AssignCleaningInput{
		RoomNumber: "203", StaffLogin: "katya", Date: date(2024, 1, 10),
	}); err != nil {
		t.Fatalf("first assign failed: %v", err)
	}
	_, err := f.svc.Assign(ctx, ports.AssignCleaningInput{
		RoomNumber: "203", StaffLogin: "vera", Date: date(2024, 1, 10),
	})
	if !errors.Is(err, domain.ErrCleaningAlreadyAssigned) {
		t.Fatalf("expected ErrCleaningAlreadyAssigned, got %v", err)
	}
}

func TestCleaningService_Assign_RejectsUnreachableRoomState(t *testing.T) {
	f := newCleaningFixture(t)
	seedAccount(t, f.accounts, "katya", "s3cret", domain.RoleHousekeeper)
	f.addRoom(t, "204", domain.RoomAvailable)

	_, err := f.svc.Assign(context.Background(), ports.AssignCleaningInput{
		RoomNumber: "204", StaffLogin: "katya", Date: date(2024, 1, 10),
	})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestCleaningService_Assign_AllowsOccupiedRoom(t *testing.T) {
	f := newCleaningFixture(t)
	seedAccount(t, f.accounts, "katya", "s3cret", domain.RoleHousekeeper)
	f.addRoom(t, "205", domain.RoomOccupied)

	if _, err := f.svc.Assign(context.Background(), ports.AssignCleaningInput{
		RoomNumber: "205", StaffLogin: "katya", Date: date(2024, 1, 10),
	}); err != nil {
		t.Fatalf("pre-checkout assignment should succeed, got %v", err)
	}
}

func TestCleaningService_Complete(t *testing.T) {
	f := newCleaningFixture(t)
	seedAccount(t, f.accounts, "katya", "s3cret", domain.RoleHousekeeper)
	room := f.addRoom(t, "206", domain.RoomDirty)
	ctx := context.Background()

	task, err := f.svc.Assign(ctx, ports.AssignCleaningInput{
		RoomNumber: "206", StaffLogin: "katya", Date: date(2024, 1, 10),
	})
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}

	if err := f.svc.Complete(ctx, task.ID); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if got := f.tasks.tasks[task.ID].Status; got != domain.CleaningDone {
		t.Fatalf("expected done task, got %s", got)
	}
	if got := f.rooms.rooms[room.ID].Status; got != domain.RoomClean {
		t.Fatalf("expected clean room, got %s", got)
	}

	// Completing twice is a state error.
	if err := f.svc.Complete(ctx, task.ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestCleaningService_Complete_UnknownTask(t *testing.T) {
	f := newCleaningFixture(t)
	if err := f.svc.Complete(context.Background(), "missing"); !errors.Is(err, domain.ErrCleaningTaskNotFound) {
		t.Fatalf("expected ErrCleaningTaskNotFound, got %v", err)
	}
}
