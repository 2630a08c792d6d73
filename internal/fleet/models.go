package fleet

import (
	"time"

	"github.com/google/uuid"
)

// FuelType represents the fuel type of a vehicle
type FuelType string

const (
	FuelTypeDiesel   FuelType = "diesel"
	FuelTypeLPG      FuelType = "lpg"
	FuelTypePetrol   FuelType = "petrol"
	FuelTypeElectric FuelType = "electric"
	FuelTypeOther    FuelType = "other"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusActive    ReservationStatus = "active"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// ReservationType distinguishes customer rentals from internal holds
type ReservationType string

const (
	ReservationTypeStandard         ReservationType = "standard"
	ReservationTypeMaintenanceBlock ReservationType = "maintenance_block"
	ReservationTypeReplacement      ReservationType = "replacement"
)

// Vehicle is a read-only snapshot of a fleet vehicle.
// Date fields are calendar dates; a nil value means the date is unknown
// or was unparseable in the source record.
type Vehicle struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	LicensePlate    string     `json:"license_plate" db:"license_plate"`
	Brand           string     `json:"brand" db:"brand"`
	Model           string     `json:"model" db:"model"`
	VehicleType     *string    `json:"vehicle_type,omitempty" db:"vehicle_type"`
	FuelType        *FuelType  `json:"fuel_type,omitempty" db:"fuel_type"`
	ProductionDate  *time.Time `json:"production_date,omitempty" db:"production_date"`
	APKDate         *time.Time `json:"apk_date,omitempty" db:"apk_date"`
	WarrantyEndDate *time.Time `json:"warranty_end_date,omitempty" db:"warranty_end_date"`
}

// Reservation is a read-only snapshot of a rental or maintenance hold.
// A nil EndDate means the reservation is open-ended.
type Reservation struct {
	ID        uuid.UUID         `json:"id" db:"id"`
	VehicleID uuid.UUID         `json:"vehicle_id" db:"vehicle_id"`
	StartDate time.Time         `json:"start_date" db:"start_date"`
	EndDate   *time.Time        `json:"end_date,omitempty" db:"end_date"`
	Status    ReservationStatus `json:"status" db:"status"`
	Type      ReservationType   `json:"type" db:"type"`
	Notes     *string           `json:"notes,omitempty" db:"notes"`
}
