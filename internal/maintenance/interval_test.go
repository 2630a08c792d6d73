package maintenance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/keeslam/CarRentalManager-sub004/internal/fleet"
)

// ========================================
// TEST HELPERS
// ========================================

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func fuelPtr(f fleet.FuelType) *fleet.FuelType {
	return &f
}

func stringPtr(s string) *string {
	return &s
}

// ========================================
// TESTS: NextInspectionDate
// ========================================

func TestNextInspectionDate(t *testing.T) {
	completed := date(2024, time.June, 1)

	tests := []struct {
		name    string
		vehicle fleet.Vehicle
		want    time.Time
	}{
		{
			name: "young diesel completes the three year first interval",
			vehicle: fleet.Vehicle{
				FuelType:       fuelPtr(fleet.FuelTypeDiesel),
				ProductionDate: datePtr(2022, time.January, 1),
			},
			want: date(2025, time.January, 1),
		},
		{
			name: "diesel past three years goes annual",
			vehicle: fleet.Vehicle{
				FuelType:       fuelPtr(fleet.FuelTypeDiesel),
				ProductionDate: datePtr(2015, time.March, 1),
			},
			want: date(2025, time.June, 1),
		},
		{
			name: "lpg follows the heavy schedule",
			vehicle: fleet.Vehicle{
				FuelType:       fuelPtr(fleet.FuelTypeLPG),
				ProductionDate: datePtr(2018, time.January, 1),
			},
			want: date(2025, time.June, 1),
		},
		{
			name: "five year old petrol gets a two year interval",
			vehicle: fleet.Vehicle{
				FuelType:       fuelPtr(fleet.FuelTypePetrol),
				ProductionDate: datePtr(2019, time.June, 1),
			},
			want: date(2026, time.June, 1),
		},
		{
			name: "young petrol completes the four year first interval",
			vehicle: fleet.Vehicle{
				FuelType:       fuelPtr(fleet.FuelTypePetrol),
				ProductionDate: datePtr(2023, time.January, 1),
			},
			want: date(2027, time.January, 1),
		},
		{
			name: "petrol beyond eight years goes annual",
			vehicle: fleet.Vehicle{
				FuelType:       fuelPtr(fleet.FuelTypePetrol),
				ProductionDate: datePtr(2010, time.January, 1),
			},
			want: date(2025, time.June, 1),
		},
		{
			name: "benzine spelling follows the petrol schedule",
			vehicle: fleet.Vehicle{
				FuelType:       fuelPtr(fleet.FuelType("benzine")),
				ProductionDate: datePtr(2019, time.June, 1),
			},
			want: date(2026, time.June, 1),
		},
		{
			name: "electric follows the light schedule",
			vehicle: fleet.Vehicle{
				FuelType:       fuelPtr(fleet.FuelTypeElectric),
				ProductionDate: datePtr(2019, time.June, 1),
			},
			want: date(2026, time.June, 1),
		},
		{
			name: "other fuel is annual regardless of age",
			vehicle: fleet.Vehicle{
				FuelType:       fuelPtr(fleet.FuelTypeOther),
				ProductionDate: datePtr(2023, time.January, 1),
			},
			want: date(2025, time.June, 1),
		},
		{
			name: "unknown fuel is annual regardless of age",
			vehicle: fleet.Vehicle{
				ProductionDate: datePtr(2023, time.January, 1),
			},
			want: date(2025, time.June, 1),
		},
		{
			name:    "no production date and no inspection date falls back to annual",
			vehicle: fleet.Vehicle{FuelType: fuelPtr(fleet.FuelTypeDiesel)},
			want:    date(2025, time.June, 1),
		},
		{
			name: "known inspection date but unknown production treats age as zero",
			vehicle: fleet.Vehicle{
				FuelType: fuelPtr(fleet.FuelTypeDiesel),
				APKDate:  datePtr(2024, time.June, 1),
			},
			want: date(2027, time.June, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextInspectionDate(tt.vehicle, completed)
			assert.Equal(t, tt.want, got)
		})
	}
}
