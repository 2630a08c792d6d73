package maintenance

import (
	"fmt"
	"time"

	"github.com/keeslam/CarRentalManager-sub004/internal/fleet"
)

const weekendShiftNote = " (Moved from weekend)"

// deadlineEventTypes maps a deadline type to the event types of its three
// reminder tiers.
var deadlineEventTypes = map[DeadlineType]struct {
	twoMonth EventType
	oneMonth EventType
	due      EventType
}{
	DeadlineAPKInspection: {
		twoMonth: EventTypeAPKReminder2M,
		oneMonth: EventTypeAPKReminder1M,
		due:      EventTypeAPKDue,
	},
	DeadlineWarrantyService: {
		twoMonth: EventTypeWarrantyReminder2M,
		oneMonth: EventTypeWarrantyReminder1M,
		due:      EventTypeWarrantyExpiring,
	},
}

// buildDeadlineEvents produces the reminder triad for one vehicle and one
// non-suppressed deadline: the two advance reminders and the due-date
// event itself. Pure; no error conditions.
func buildDeadlineEvents(v fleet.Vehicle, kind DeadlineType, due, today time.Time, reservations []fleet.Reservation) []MaintenanceEvent {
	types := deadlineEventTypes[kind]
	isOverdue := due.Before(today)
	vehicleReservations := fleet.ReservationsForVehicle(reservations, v.ID)

	events := make([]MaintenanceEvent, 0, 3)

	tiers := []struct {
		monthsBefore int
		eventType    EventType
		basePriority Priority
	}{
		{2, types.twoMonth, PriorityLow},
		{1, types.oneMonth, PriorityMedium},
	}

	for _, tier := range tiers {
		tierDate := due.AddDate(0, -tier.monthsBefore, 0)
		shifted, wasShifted := ShiftFromWeekend(tierDate)
		reminderPassed := shifted.Before(today)

		priority := tier.basePriority
		if isOverdue {
			// The deadline itself has passed: every remaining reminder
			// escalates, whatever its own date says.
			priority = PriorityUrgent
		}

		title, description := reminderText(v, kind, tier.monthsBefore, due, isOverdue, reminderPassed)
		if wasShifted {
			title += weekendShiftNote
		}

		events = append(events, MaintenanceEvent{
			ID:                  fmt.Sprintf("%s_%s", tier.eventType, v.ID),
			VehicleID:           v.ID,
			Vehicle:             v,
			Type:                tier.eventType,
			Date:                shifted,
			Title:               title,
			Description:         description,
			Priority:            priority,
			CurrentReservations: vehicleReservations,
		})
	}

	shiftedDue, wasShifted := ShiftFromWeekend(due)
	dueEvent := MaintenanceEvent{
		ID:                  fmt.Sprintf("%s_%s", types.due, v.ID),
		VehicleID:           v.ID,
		Vehicle:             v,
		Type:                types.due,
		Date:                shiftedDue,
		Priority:            PriorityHigh,
		CurrentReservations: vehicleReservations,
	}

	switch kind {
	case DeadlineAPKInspection:
		dueEvent.Priority = PriorityUrgent
		dueEvent.Title = "APK inspection due"
		dueEvent.Description = fmt.Sprintf("APK inspection for %s is due on %s.", vehicleLabel(v), formatDate(due))
		dueEvent.NeedsSpareVehicle, dueEvent.HasUpcomingRentals = DetectRentalConflicts(v.ID, shiftedDue, reservations)
	case DeadlineWarrantyService:
		dueEvent.Title = "Warranty expires"
		dueEvent.Description = fmt.Sprintf("The warranty of %s ends on %s.", vehicleLabel(v), formatDate(due))
	}
	if wasShifted {
		dueEvent.Title += weekendShiftNote
	}

	return append(events, dueEvent)
}

// reminderText selects one of three mutually exclusive phrasings for an
// advance reminder: the deadline is overdue, the reminder date itself has
// passed, or the reminder is still ahead.
func reminderText(v fleet.Vehicle, kind DeadlineType, months int, due time.Time, overdue, reminderPassed bool) (string, string) {
	label := vehicleLabel(v)
	dueStr := formatDate(due)

	if kind == DeadlineWarrantyService {
		switch {
		case overdue:
			return "Warranty expired",
				fmt.Sprintf("The warranty of %s expired on %s.", label, dueStr)
		case reminderPassed:
			return "Warranty expiry approaching",
				fmt.Sprintf("The %s warranty reminder for %s has passed; the warranty ends on %s.", monthsWord(months), label, dueStr)
		default:
			return fmt.Sprintf("Warranty expires in %s", monthsWord(months)),
				fmt.Sprintf("The warranty of %s ends on %s.", label, dueStr)
		}
	}

	switch {
	case overdue:
		return "APK inspection overdue",
			fmt.Sprintf("APK inspection for %s was due on %s.", label, dueStr)
	case reminderPassed:
		return "APK inspection approaching",
			fmt.Sprintf("The %s APK reminder for %s has passed; the inspection is due on %s.", monthsWord(months), label, dueStr)
	default:
		return fmt.Sprintf("APK inspection in %s", monthsWord(months)),
			fmt.Sprintf("APK inspection for %s is due on %s.", label, dueStr)
	}
}

func vehicleLabel(v fleet.Vehicle) string {
	return fmt.Sprintf("%s %s (%s)", v.Brand, v.Model, v.LicensePlate)
}

func monthsWord(months int) string {
	if months == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", months)
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
