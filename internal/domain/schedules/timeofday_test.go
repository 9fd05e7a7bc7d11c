package schedules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay_Strict(t *testing.T) {
	h, m, err := ParseTimeOfDay("08:30")
	require.NoError(t, err)
	assert.Equal(t, 8, h)
	assert.Equal(t, 30, m)

	for _, bad := range []string{"8:00", "24:00", "08:60", "0800", "08:00:00", ""} {
		_, _, err := ParseTimeOfDay(bad)
		assert.Error(t, err, bad)
	}
}

func TestDayWindow_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	now := time.Date(2025, 12, 24, 23, 30, 0, 0, loc)

	start, end := DayWindow(now)
	assert.Equal(t, time.Date(2025, 12, 24, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, 12, 25, 0, 0, 0, 0, loc), end)
}

func TestAt(t *testing.T) {
	day := time.Date(2025, 12, 24, 15, 4, 5, 0, time.UTC)

	got, err := At(day, "20:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 24, 20, 0, 0, 0, time.UTC), got)

	_, err = At(day, "9:00")
	assert.Error(t, err)
}

func TestSchedule_RunsOnAndHasTime(t *testing.T) {
	wed := time.Date(2025, 12, 24, 10, 0, 0, 0, time.UTC) // miércoles
	s := Schedule{Times: []string{"08:00", "20:00"}, DaysOfWeek: []string{"Tuesday", "Thursday"}}

	assert.Equal(t, "Wednesday", WeekdayName(wed))
	assert.False(t, s.RunsOn(wed))
	s.DaysOfWeek = append(s.DaysOfWeek, "Wednesday")
	assert.True(t, s.RunsOn(wed))

	assert.True(t, s.HasTime("08:00"))
	assert.False(t, s.HasTime("8:00"))
}
