package maintenance

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/keeslam/CarRentalManager-sub004/internal/fleet"
)

// EventType identifies the kind of calendar event
type EventType string

const (
	EventTypeAPKDue               EventType = "apk_due"
	EventTypeAPKReminder2M        EventType = "apk_reminder_2m"
	EventTypeAPKReminder1M        EventType = "apk_reminder_1m"
	EventTypeWarrantyExpiring     EventType = "warranty_expiring"
	EventTypeWarrantyReminder2M   EventType = "warranty_reminder_2m"
	EventTypeWarrantyReminder1M   EventType = "warranty_reminder_1m"
	EventTypeScheduledMaintenance EventType = "scheduled_maintenance"
	EventTypeInService            EventType = "in_service"
)

// Priority represents the urgency of a calendar event
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// DeadlineType identifies the two reminder categories derived from
// vehicle deadline fields
type DeadlineType string

const (
	DeadlineAPKInspection   DeadlineType = "apk_inspection"
	DeadlineWarrantyService DeadlineType = "warranty_service"
)

// MaintenanceEvent is a derived calendar event. Events are value objects:
// they are recomputed on every query and never persisted. The ID is stable
// for a given vehicle, deadline type and reminder tier, so repeated
// computations over the same snapshot agree on identity.
type MaintenanceEvent struct {
	ID        string        `json:"id"`
	VehicleID uuid.UUID     `json:"vehicle_id"`
	Vehicle   fleet.Vehicle `json:"vehicle"`
	Type      EventType     `json:"type"`
	Date      time.Time     `json:"date"`

	// StartDate/EndDate are set for multi-day events (maintenance blocks)
	// only; Date mirrors StartDate for those.
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`

	NeedsSpareVehicle  bool `json:"needs_spare_vehicle"`
	HasUpcomingRentals bool `json:"has_upcoming_rentals"`

	// CurrentReservations carries the vehicle's full reservation snapshot
	// for display alongside the event; it is not date-filtered.
	CurrentReservations []fleet.Reservation `json:"current_reservations,omitempty"`
}

// EventFilter narrows an event set. Zero-valued fields are ignored; the
// populated ones are AND-combined.
type EventFilter struct {
	// Query matches case-insensitively against license plate, brand,
	// model and event title.
	Query string
	// VehicleType requires an exact (case-insensitive) vehicle type.
	VehicleType string
	// EventType requires an exact event type.
	EventType EventType
}

// Matches reports whether the event passes all populated filter fields
func (f *EventFilter) Matches(ev MaintenanceEvent) bool {
	if f == nil {
		return true
	}

	if f.EventType != "" && ev.Type != f.EventType {
		return false
	}

	if f.VehicleType != "" {
		if ev.Vehicle.VehicleType == nil || !strings.EqualFold(*ev.Vehicle.VehicleType, f.VehicleType) {
			return false
		}
	}

	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		haystack := strings.ToLower(strings.Join([]string{
			ev.Vehicle.LicensePlate,
			ev.Vehicle.Brand,
			ev.Vehicle.Model,
			ev.Title,
		}, " "))
		if !strings.Contains(haystack, q) {
			return false
		}
	}

	return true
}
