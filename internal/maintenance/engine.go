package maintenance

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/keeslam/CarRentalManager-sub004/internal/fleet"
)

// ========================================
// Engine
// ========================================

// Engine derives maintenance calendar events from fleet snapshots. It holds
// no state besides the clock, so every call recomputes events from scratch
// and the same inputs always yield the same output.
type Engine struct {
	now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// GenerateEvents builds the full event set for the given fleet snapshot:
// reminder triads for every vehicle with an APK or warranty deadline, plus
// one event per maintenance block reservation.
func (e *Engine) GenerateEvents(vehicles []fleet.Vehicle, reservations, blocks []fleet.Reservation) []MaintenanceEvent {
	today := dateOnly(e.now())
	events := make([]MaintenanceEvent, 0, len(vehicles)*3)

	for _, v := range vehicles {
		if v.APKDate != nil && !IsSuppressed(v.ID, DeadlineAPKInspection, blocks) {
			events = append(events, buildDeadlineEvents(v, DeadlineAPKInspection, dateOnly(*v.APKDate), today, reservations)...)
		}
		if v.WarrantyEndDate != nil && !IsSuppressed(v.ID, DeadlineWarrantyService, blocks) {
			events = append(events, buildDeadlineEvents(v, DeadlineWarrantyService, dateOnly(*v.WarrantyEndDate), today, reservations)...)
		}
	}

	vehicleByID := make(map[uuid.UUID]fleet.Vehicle, len(vehicles))
	for _, v := range vehicles {
		vehicleByID[v.ID] = v
	}
	for _, block := range blocks {
		if v, ok := vehicleByID[block.VehicleID]; ok {
			events = append(events, buildBlockEvent(v, block, today))
		}
	}

	return events
}

// buildBlockEvent turns a maintenance block reservation into a calendar
// event. A block whose window covers today is reported as in-service work
// rather than an upcoming appointment; the event identity stays the same
// either way.
func buildBlockEvent(v fleet.Vehicle, block fleet.Reservation, today time.Time) MaintenanceEvent {
	start := dateOnly(block.StartDate)
	var end *time.Time
	if block.EndDate != nil {
		d := dateOnly(*block.EndDate)
		end = &d
	}

	note := ClassifyNotes(block.Notes)

	inService := !today.Before(start) && (end == nil || !today.After(*end))

	ev := MaintenanceEvent{
		ID:        fmt.Sprintf("%s_%s", EventTypeScheduledMaintenance, block.ID),
		VehicleID: v.ID,
		Vehicle:   v,
		Type:      EventTypeScheduledMaintenance,
		Date:      start,
		StartDate: &start,
		EndDate:   end,
		Title:     fmt.Sprintf("%s: %s", note.Label, vehicleLabel(v)),
		Priority:  PriorityMedium,
	}
	if note.Detail != "" {
		ev.Description = note.Detail
	} else {
		ev.Description = fmt.Sprintf("%s scheduled for %s.", note.Label, vehicleLabel(v))
	}
	if inService {
		ev.Type = EventTypeInService
		ev.Priority = PriorityHigh
		ev.Title = fmt.Sprintf("In service: %s", vehicleLabel(v))
	}
	return ev
}

// EventsForDate filters a generated event set down to the events visible on
// one calendar day. Single-date events match by exact day; events carrying a
// window surface on their boundary days only, start and end.
func (e *Engine) EventsForDate(events []MaintenanceEvent, day time.Time, filter EventFilter) []MaintenanceEvent {
	day = dateOnly(day)
	matched := make([]MaintenanceEvent, 0)
	for _, ev := range events {
		if !eventOnDay(ev, day) {
			continue
		}
		if !filter.Matches(ev) {
			continue
		}
		matched = append(matched, ev)
	}
	return matched
}

func eventOnDay(ev MaintenanceEvent, day time.Time) bool {
	if ev.StartDate != nil {
		if sameDay(*ev.StartDate, day) {
			return true
		}
		return ev.EndDate != nil && sameDay(*ev.EndDate, day)
	}
	return sameDay(ev.Date, day)
}
