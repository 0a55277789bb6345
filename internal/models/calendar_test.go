package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultHourWeights(t *testing.T) {
	cal := NewCalendar(DefaultHourWeights(), nil)

	assert.Equal(t, 165, cal.TotalWeight())
	// lunch and dinner peaks dominate the overnight floor
	assert.Equal(t, 15, cal.HourWeight(12))
	assert.Equal(t, 12, cal.HourWeight(18))
	assert.Equal(t, 2, cal.HourWeight(3))
}

func TestCalendarWeekendClassification(t *testing.T) {
	cal := NewCalendar(DefaultHourWeights(), nil)

	saturday := time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)

	assert.True(t, cal.IsWeekend(saturday))
	assert.True(t, cal.IsWeekend(sunday))
	assert.False(t, cal.IsWeekend(monday))
}

func TestCalendarHolidayLookup(t *testing.T) {
	cal := NewCalendar(DefaultHourWeights(), DefaultHolidays())

	hariBuruh := time.Date(2024, 5, 1, 13, 30, 0, 0, time.UTC)
	ordinary := time.Date(2024, 5, 2, 13, 30, 0, 0, time.UTC)

	assert.True(t, cal.IsHoliday(hariBuruh))
	assert.False(t, cal.IsHoliday(ordinary))
}
