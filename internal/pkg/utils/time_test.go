package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlotGrid(t *testing.T) {
	grid := SlotGrid()

	assert.Len(t, grid, 37, "grid should hold 37 slots")
	assert.Equal(t, "09:00", grid[0], "grid should start at 09:00")
	assert.Equal(t, "18:00", grid[len(grid)-1], "grid should end at 18:00")
	assert.Equal(t, "09:15", grid[1])
	assert.Equal(t, "12:00", grid[12])
}

func TestIsGridSlot(t *testing.T) {
	t.Run("Grid Labels", func(t *testing.T) {
		for _, label := range SlotGrid() {
			assert.True(t, IsGridSlot(label), "label %s should be on the grid", label)
		}
	})

	t.Run("Off Grid Labels", func(t *testing.T) {
		offGrid := []string{"08:45", "18:15", "09:07", "12:01", "00:00", "23:59"}
		for _, label := range offGrid {
			assert.False(t, IsGridSlot(label), "label %s should not be on the grid", label)
		}
	})

	t.Run("Malformed Labels", func(t *testing.T) {
		for _, label := range []string{"", "9:00", "nine", "25:00", "12:60"} {
			assert.False(t, IsGridSlot(label), "label %q should be rejected", label)
		}
	})

	t.Run("Non Canonical Spellings", func(t *testing.T) {
		// time.Parse tolerates these, but as TEXT keys they would bypass
		// the slot unique index.
		for _, label := range []string{"9:15", "09:5", "9:5"} {
			assert.False(t, IsGridSlot(label), "label %q should be rejected", label)
		}
	})
}

func TestStartOfDay(t *testing.T) {
	manila := time.FixedZone("UTC+8", 8*60*60)

	// 01:00 local is still the previous day in UTC; the local calendar
	// date decides what "today" means.
	early := time.Date(2026, time.August, 30, 1, 0, 0, 0, manila)
	assert.Equal(t, time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC), startOfDay(early))

	late := time.Date(2026, time.August, 30, 23, 30, 0, 0, manila)
	assert.Equal(t, time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC), startOfDay(late))
}

func TestMonthBounds(t *testing.T) {
	from, to := MonthBounds(2025, 9)

	assert.Equal(t, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), to)

	t.Run("December Rolls Over", func(t *testing.T) {
		from, to := MonthBounds(2025, 12)
		assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), to)
	})
}

func TestParseAppointmentDate(t *testing.T) {
	parsed, err := ParseAppointmentDate("2025-09-16")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.September, 16, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseAppointmentDate("16-09-2025")
	assert.Error(t, err)
}
