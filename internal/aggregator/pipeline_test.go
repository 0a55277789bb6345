package aggregator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restunugroho/demand-forecast/internal/models"
	"github.com/restunugroho/demand-forecast/internal/simulator"
)

// Two-day synthetic range with a single outlet and a fixed seed: the created
// count must equal the sum of truncated per-hour allocations, and a second
// aggregation pass over the same events must reproduce the demand counts.
func TestTwoDayRoundTrip(t *testing.T) {
	weights := models.DefaultHourWeights()
	cfg := &models.Config{
		Seed:             42,
		WeekdayVolume:    400,
		WeekendVolume:    600,
		HolidayFactor:    1.5,
		TrendFactor:      0.2,
		CancellationRate: 0.1,
		IDStrategy:       models.IDStrategySequence,
		SequenceStart:    1000,
		AttributePolicy:  models.AttributePolicyCreationOnly,
		Workers:          1,
		Outlets:          []models.Outlet{{Name: "Outlet A", Location: "Palu Utara"}},
		MenuItems:        models.DefaultMenuItems(),
		OrderTypes:       models.DefaultOrderTypes(),
		HourWeights:      weights[:],
		Holidays:         models.DefaultHolidays(),
	}

	start := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)

	sc := simulator.NewScheduler(cfg, simulator.NewSequenceSource(1000), cfg.Outlets)
	events, err := sc.GenerateRange(start, end)
	require.NoError(t, err)

	cal := cfg.Calendar()
	wantCreated := 0
	for day := 0; day < 2; day++ {
		volume := sc.DailyVolume(start.AddDate(0, 0, day), day, 2)
		for hour := 0; hour < 24; hour++ {
			wantCreated += int(float64(volume) * float64(cal.HourWeight(hour)) / float64(cal.TotalWeight()))
		}
	}

	created := 0
	for _, ev := range events {
		if ev.Status == models.OrderStatusCreated {
			created++
		}
	}
	assert.Equal(t, wantCreated, created)

	first := Aggregate(events)
	second := Aggregate(events)
	require.Equal(t, first, second)

	var total int64
	for _, r := range first {
		assert.Equal(t, "Palu Utara", r.Location)
		total += r.Demand
	}
	assert.Equal(t, int64(created), total)
}
