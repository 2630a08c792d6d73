package maintenance

import (
	"math"
	"time"

	"github.com/keeslam/CarRentalManager-sub004/internal/fleet"
)

// daysPerYear is the average Gregorian year length used for age math.
const daysPerYear = 365.25

type fuelClass int

const (
	fuelClassDefault fuelClass = iota
	fuelClassHeavy             // diesel, LPG: first inspection at 3 years, then annual
	fuelClassLight             // petrol, electric: at 4 years, 2-yearly until 8, then annual
)

func classifyFuel(fuel *fleet.FuelType) fuelClass {
	if fuel == nil {
		return fuelClassDefault
	}
	switch fleet.FuelType(normalizeFuel(string(*fuel))) {
	case fleet.FuelTypeDiesel, fleet.FuelTypeLPG:
		return fuelClassHeavy
	case fleet.FuelTypePetrol, fleet.FuelTypeElectric:
		return fuelClassLight
	}
	return fuelClassDefault
}

// normalizeFuel folds legacy feed spellings onto the canonical fuel types
func normalizeFuel(s string) string {
	switch s {
	case "benzine":
		return string(fleet.FuelTypePetrol)
	}
	return s
}

// NextInspectionDate computes the next periodic inspection due date for a
// vehicle given the date its last inspection was completed. The interval
// depends on vehicle age and fuel type; vehicles with no known production
// or inspection date fall back to an annual interval. Total: it always
// returns a date.
func NextInspectionDate(v fleet.Vehicle, completed time.Time) time.Time {
	if v.ProductionDate == nil && v.APKDate == nil {
		return completed.AddDate(1, 0, 0)
	}

	var ageYears float64
	if v.ProductionDate != nil {
		ageYears = completed.Sub(*v.ProductionDate).Hours() / 24 / daysPerYear
	}

	switch classifyFuel(v.FuelType) {
	case fuelClassHeavy:
		if ageYears < 3 {
			return addFractionalYears(completed, 3-ageYears)
		}
		return completed.AddDate(1, 0, 0)
	case fuelClassLight:
		if ageYears < 4 {
			return addFractionalYears(completed, 4-ageYears)
		}
		if ageYears < 8 {
			return completed.AddDate(2, 0, 0)
		}
		return completed.AddDate(1, 0, 0)
	}

	return completed.AddDate(1, 0, 0)
}

// addFractionalYears advances a date by a fractional year count, rounding
// up to whole days so a first inspection never lands before the regulatory
// threshold.
func addFractionalYears(t time.Time, years float64) time.Time {
	return t.AddDate(0, 0, int(math.Ceil(years*daysPerYear)))
}
