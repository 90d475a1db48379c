package utils

import (
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/exceptions"
	"fmt"
	"time"
)

// SlotGrid returns the fixed daily booking grid: 37 labels from 09:00 to
// 18:00 in 15-minute steps. The grid is the complete universe of bookable
// times; anything outside it is rejected at validation time.
func SlotGrid() []string {
	grid := make([]string, 0, constvars.SlotGridSize)
	for i := 0; i < constvars.SlotGridSize; i++ {
		minutes := constvars.SlotGridStartHour*60 + i*constvars.SlotGridStepInMinutes
		grid = append(grid, fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
	}
	return grid
}

func IsGridSlot(label string) bool {
	parsed, err := time.Parse(constvars.AppointmentTimeLayout, label)
	if err != nil {
		return false
	}
	// time.Parse tolerates "9:00"; only the zero-padded spelling is a grid
	// label, anything else would be a distinct key in the slot unique index.
	if parsed.Format(constvars.AppointmentTimeLayout) != label {
		return false
	}
	minutes := parsed.Hour()*60 + parsed.Minute()
	start := constvars.SlotGridStartHour * 60
	end := constvars.SlotGridEndHour * 60
	if minutes < start || minutes > end {
		return false
	}
	return (minutes-start)%constvars.SlotGridStepInMinutes == 0
}

// StartOfToday returns midnight of the current local calendar date,
// expressed in UTC so it compares directly against parsed appointment
// dates. Truncating the instant instead would use the UTC day boundary and
// misjudge early-morning local times.
func StartOfToday() time.Time {
	return startOfDay(time.Now().In(time.Local))
}

func startOfDay(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ParseAppointmentDate(value string) (time.Time, error) {
	parsed, err := time.Parse(constvars.AppointmentDateLayout, value)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseDate(err)
	}
	return parsed, nil
}

// MonthBounds returns the first day of the given month and the first day of
// the next month, for half-open range queries.
func MonthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
