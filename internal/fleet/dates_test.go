package fleet

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestParseDate(t *testing.T) {
	midnight := func(year int, month time.Month, day int) *time.Time {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		return &d
	}

	tests := []struct {
		name  string
		value *string
		want  *time.Time
	}{
		{
			name:  "plain calendar date",
			value: strPtr("2024-03-10"),
			want:  midnight(2024, time.March, 10),
		},
		{
			name:  "rfc3339 timestamp truncates to the day",
			value: strPtr("2024-03-10T14:30:00Z"),
			want:  midnight(2024, time.March, 10),
		},
		{
			name:  "timestamp without zone truncates to the day",
			value: strPtr("2024-03-10T14:30:00"),
			want:  midnight(2024, time.March, 10),
		},
		{
			name:  "surrounding whitespace is tolerated",
			value: strPtr("  2024-03-10  "),
			want:  midnight(2024, time.March, 10),
		},
		{
			name:  "nil value",
			value: nil,
			want:  nil,
		},
		{
			name:  "empty string",
			value: strPtr(""),
			want:  nil,
		},
		{
			name:  "garbage",
			value: strPtr("next tuesday"),
			want:  nil,
		},
		{
			name:  "impossible date",
			value: strPtr("2024-13-40"),
			want:  nil,
		},
		{
			name:  "dutch day-first format is not accepted",
			value: strPtr("10-03-2024"),
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDate(tt.value))
		})
	}
}

func TestReservationsForVehicle(t *testing.T) {
	vehicleID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	otherID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	mine := Reservation{ID: uuid.New(), VehicleID: vehicleID, StartDate: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)}
	theirs := Reservation{ID: uuid.New(), VehicleID: otherID, StartDate: time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)}

	got := ReservationsForVehicle([]Reservation{mine, theirs, mine}, vehicleID)
	assert.Equal(t, []Reservation{mine, mine}, got)

	assert.Nil(t, ReservationsForVehicle([]Reservation{theirs}, vehicleID))
}
