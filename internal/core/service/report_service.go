package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/aurora-hotel/inventory-system/internal/core/domain"
	"github.com/aurora-hotel/inventory-system/internal/core/ports"
)

// ReportService computes the daily occupancy and revenue statistics.
//
// ADR here is revenue per occupied room for the single day, and RevPAR is
// revenue per available room for that day. These degenerate daily formulas
// are kept for behavioural compatibility with the system being replaced.
type ReportService struct {
	rooms    ports.RoomRepository
	bookings ports.BookingRepository
	payments ports.PaymentRepository
	log      zerolog.Logger
}

func NewReportService(
	rooms ports.RoomRepository,
	bookings ports.BookingRepository,
	payments ports.PaymentRepository,
	log zerolog.Logger,
) *ReportService {
	return &ReportService{rooms: rooms, bookings: bookings, payments: payments, log: log}
}

// Daily builds the report for one date. A room counts as occupied when an
// active booking's half-open interval covers the date; a booking checking out
// on the report date does not count.
func (s *ReportService) Daily(ctx context.Context, date time.Time) (*ports.DailyReport, error) {
	day := domain.DateOnly(date)

	totalRooms, err := s.rooms.Count(ctx)
	if err != nil {
		return nil, err
	}

	active, err := s.bookings.ListActiveOn(ctx, day)
	if err != nil {
		return nil, err
	}
	occupied := make(map[string]struct{}, len(active))
	for _, b := range active {
		occupied[b.RoomID] = struct{}{}
	}
	occupiedRooms := int64(len(occupied))

	revenue, err := s.payments.SumOn(ctx, day)
	if err != nil {
		return nil, err
	}

	report := &ports.DailyReport{
		Date:          day,
		TotalRooms:    totalRooms,
		OccupiedRooms: occupiedRooms,
		Revenue:       revenue,
	}
	if totalRooms > 0 {
		report.OccupancyRate = float64(occupiedRooms) / float64(totalRooms) * 100
		report.RevPAR = revenue / float64(totalRooms)
	}
	if occupiedRooms > 0 {
		report.ADR = revenue / float64(occupiedRooms)
	}

	s.log.Debug().
		Time("date", day).
		Int64("occupied", occupiedRooms).
		Int64("total", totalRooms).
		Float64("revenue", revenue).
		Msg("daily report computed")
	return report, nil
}
