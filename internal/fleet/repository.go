package fleet

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads fleet snapshots from Postgres.
// The vehicles and reservations tables are owned by the rental
// administration; this repository only ever reads them. Date columns are
// stored as text (kept as entered in the administration UI), so every date
// goes through ParseDate and malformed values degrade to absent.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new fleet repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// ListVehicles returns a snapshot of all fleet vehicles
func (r *Repository) ListVehicles(ctx context.Context) ([]Vehicle, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, license_plate, brand, model, vehicle_type, fuel_type,
			production_date, apk_date, warranty_end_date
		FROM vehicles
		ORDER BY license_plate`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []Vehicle
	for rows.Next() {
		var (
			v                                        Vehicle
			fuelType                                 *string
			productionDate, apkDate, warrantyEndDate *string
		)
		if err := rows.Scan(
			&v.ID, &v.LicensePlate, &v.Brand, &v.Model, &v.VehicleType, &fuelType,
			&productionDate, &apkDate, &warrantyEndDate,
		); err != nil {
			return nil, err
		}
		if fuelType != nil {
			ft := FuelType(*fuelType)
			v.FuelType = &ft
		}
		v.ProductionDate = ParseDate(productionDate)
		v.APKDate = ParseDate(apkDate)
		v.WarrantyEndDate = ParseDate(warrantyEndDate)
		vehicles = append(vehicles, v)
	}

	return vehicles, rows.Err()
}

// ListReservations returns a snapshot of all reservations
func (r *Repository) ListReservations(ctx context.Context) ([]Reservation, error) {
	return r.listReservations(ctx, `
		SELECT id, vehicle_id, start_date, end_date, status, type, notes
		FROM reservations
		ORDER BY start_date`)
}

// ListMaintenanceBlocks returns the reservations that hold a vehicle out
// of service for maintenance
func (r *Repository) ListMaintenanceBlocks(ctx context.Context) ([]Reservation, error) {
	return r.listReservations(ctx, `
		SELECT id, vehicle_id, start_date, end_date, status, type, notes
		FROM reservations
		WHERE type = 'maintenance_block'
		ORDER BY start_date`)
}

func (r *Repository) listReservations(ctx context.Context, query string) ([]Reservation, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []Reservation
	for rows.Next() {
		var (
			res                Reservation
			startDate, endDate *string
		)
		if err := rows.Scan(
			&res.ID, &res.VehicleID, &startDate, &endDate, &res.Status, &res.Type, &res.Notes,
		); err != nil {
			return nil, err
		}

		// A reservation without a usable start date is unplaceable on the
		// calendar; skip the record rather than failing the snapshot.
		start := ParseDate(startDate)
		if start == nil {
			continue
		}
		res.StartDate = *start
		res.EndDate = ParseDate(endDate)

		reservations = append(reservations, res)
	}

	return reservations, rows.Err()
}

// ReservationsForVehicle filters a reservation snapshot down to one vehicle
func ReservationsForVehicle(reservations []Reservation, vehicleID uuid.UUID) []Reservation {
	var out []Reservation
	for _, r := range reservations {
		if r.VehicleID == vehicleID {
			out = append(out, r)
		}
	}
	return out
}
