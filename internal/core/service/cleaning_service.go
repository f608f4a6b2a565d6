package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aurora-hotel/inventory-system/internal/core/domain"
	"github.com/aurora-hotel/inventory-system/internal/core/ports"
)

// CleaningService schedules housekeeping tasks and completes them.
type CleaningService struct {
	tasks    ports.CleaningRepository
	rooms    ports.RoomRepository
	accounts ports.AccountRepository
	log      zerolog.Logger
}

func NewCleaningService(
	tasks ports.CleaningRepository,
	rooms ports.RoomRepository,
	accounts ports.AccountRepository,
	log zerolog.Logger,
) *CleaningService {
	return &CleaningService{tasks: tasks, rooms: rooms, accounts: accounts, log: log}
}

// Assign schedules a cleaning task for a room. The staff member must hold the
// housekeeper role and the room must not already have an active assignment.
// Assigning cleaning to an occupied room is allowed: housekeeping can be
// scheduled ahead of an upcoming checkout.
func (s *CleaningService) Assign(ctx context.Context, input ports.AssignCleaningInput) (*domain.CleaningTask, error) {
	staff, err := s.accounts.FindByLogin(ctx, input.StaffLogin)
	if err != nil {
		return nil, err
	}
	if staff.Role != domain.RoleHousekeeper {
		return nil, domain.ErrNotHousekeeper
	}

	room, err := s.rooms.FindByNumber(ctx, input.RoomNumber)
	if err != nil {
		return nil, err
	}

	assigned, err := s.tasks.HasAssigned(ctx, room.ID)
	if err != nil {
		return nil, err
	}
	if assigned {
		return nil, domain.ErrCleaningAlreadyAssigned
	}

	if !room.Status.CanTransitionTo(domain.RoomCleaningAssigned) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, room.Status, domain.RoomCleaningAssigned)
	}

	task := &domain.CleaningTask{
		RoomID:        room.ID,
		StaffID:       staff.ID,
		ScheduledDate: domain.DateOnly(input.Date),
		Status:        domain.CleaningAssigned,
	}
	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	if err := s.rooms.UpdateStatus(ctx, room.ID, room.Status, domain.RoomCleaningAssigned); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("task_id", created.ID).
		Str("room", room.Number).
		Str("staff", staff.Login).
		Msg("cleaning assigned")
	return created, nil
}

// Complete marks a cleaning task done and moves the room to clean.
func (s *CleaningService) Complete(ctx context.Context, taskID string) error {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task.Status != domain.CleaningAssigned {
		return fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, task.Status, domain.CleaningDone)
	}

	if err := s.tasks.UpdateStatus(ctx, task.ID, domain.CleaningAssigned, domain.CleaningDone); err != nil {
		return err
	}

	room, err := s.rooms.FindByID(ctx, task.RoomID)
	if err != nil {
		return err
	}
	if room.Status == domain.RoomCleaningAssigned {
		if err := s.rooms.UpdateStatus(ctx, room.ID, domain.RoomCleaningAssigned, domain.RoomClean); err != nil {
			return err
		}
	}

	s.log.Info().Str("task_id", task.ID).Str("room_id", task.RoomID).Msg("cleaning completed")
	return nil
}
