package maintenance

import (
	"context"
	"fmt"
	"time"

	"github.com/keeslam/CarRentalManager-sub004/internal/fleet"
)

// ========================================
// Service
// ========================================

type Service struct {
	repo   fleet.RepositoryInterface
	engine *Engine
}

func NewService(repo fleet.RepositoryInterface) *Service {
	return &Service{
		repo:   repo,
		engine: NewEngine(),
	}
}

// CalendarEvents loads the current fleet snapshot and derives the complete
// maintenance event set from it. Nothing is cached; a change in the fleet
// shows up on the next call.
func (s *Service) CalendarEvents(ctx context.Context) ([]MaintenanceEvent, error) {
	vehicles, err := s.repo.ListVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	reservations, err := s.repo.ListReservations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	blocks, err := s.repo.ListMaintenanceBlocks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance blocks: %w", err)
	}

	start := time.Now()
	events := s.engine.GenerateEvents(vehicles, reservations, blocks)
	observeGeneration(events, time.Since(start).Seconds())

	return events, nil
}

// EventsForDate returns the events visible on one calendar day, narrowed by
// the given filter.
func (s *Service) EventsForDate(ctx context.Context, day time.Time, filter EventFilter) ([]MaintenanceEvent, error) {
	events, err := s.CalendarEvents(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.EventsForDate(events, day, filter), nil
}
