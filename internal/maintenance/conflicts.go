package maintenance

import (
	"time"

	"github.com/google/uuid"
	"github.com/keeslam/CarRentalManager-sub004/internal/fleet"
)

// upcomingRentalWindow is how far past the due date a rental start still
// counts as "upcoming" for planning purposes.
const upcomingRentalWindow = 21 // days

// DetectRentalConflicts checks an inspection due date against the
// vehicle's rentals.
//
// needsSpareVehicle is true when the due date falls inside a non-cancelled
// rental window, boundaries inclusive; an open-ended rental counts as
// ongoing. hasUpcomingRentals is only evaluated when no spare vehicle is
// needed, and is true when any rental starts strictly after the due date
// but within the next three weeks.
func DetectRentalConflicts(vehicleID uuid.UUID, dueDate time.Time, reservations []fleet.Reservation) (needsSpareVehicle, hasUpcomingRentals bool) {
	for _, r := range reservations {
		if r.VehicleID != vehicleID || r.Status == fleet.ReservationStatusCancelled {
			continue
		}
		if !r.StartDate.After(dueDate) && (r.EndDate == nil || !r.EndDate.Before(dueDate)) {
			return true, false
		}
	}

	horizon := dueDate.AddDate(0, 0, upcomingRentalWindow)
	for _, r := range reservations {
		if r.VehicleID != vehicleID {
			continue
		}
		if r.StartDate.After(dueDate) && !r.StartDate.After(horizon) {
			return false, true
		}
	}

	return false, false
}
