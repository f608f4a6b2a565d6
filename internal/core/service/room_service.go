package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/aurora-hotel/inventory-system/internal/core/domain"
	"github.com/aurora-hotel/inventory-system/internal/core/ports"
)

// RoomService owns the room catalog: import with the category price policy,
// and inventory views.
type RoomService struct {
	rooms ports.RoomRepository
	log   zerolog.Logger
}

func NewRoomService(rooms ports.RoomRepository, log zerolog.Logger) *RoomService {
	return &RoomService{rooms: rooms, log: log}
}

// ImportCatalog inserts catalog rooms in the available state, mapping each
// category to its nightly price. Room numbers already present are skipped so
// repeated imports are harmless.
func (s *RoomService) ImportCatalog(ctx context.Context, entries []ports.CatalogEntry) (*ports.ImportResult, error) {
	result := &ports.ImportResult{}
	for _, entry := range entries {
		room := &domain.Room{
			Number:        entry.Number,
			Floor:         entry.Floor,
			Category:      entry.Category,
			PricePerNight: domain.PriceForCategory(entry.Category),
			Status:        domain.RoomAvailable,
		}
		if _, err := s.rooms.Create(ctx, room); err != nil {
			if errors.Is(err, domain.ErrRoomExists) {
				result.Skipped++
				continue
			}
			return nil, err
		}
		result.Imported++
	}

	s.log.Info().
		Int("imported", result.Imported).
		Int("skipped", result.Skipped).
		Msg("room catalog imported")
	return result, nil
}

// ListRooms returns rooms, optionally filtered by status.
func (s *RoomService) ListRooms(ctx context.Context, status domain.RoomStatus) ([]*domain.Room, error) {
	return s.rooms.List(ctx, status)
}
