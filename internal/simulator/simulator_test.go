package simulator

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restunugroho/demand-forecast/internal/models"
)

func testConfig() *models.Config {
	weights := models.DefaultHourWeights()
	return &models.Config{
		Seed:             42,
		WeekdayVolume:    5000,
		WeekendVolume:    7500,
		HolidayFactor:    1.5,
		TrendFactor:      0.2,
		CancellationRate: 0.1,
		IDStrategy:       models.IDStrategyCuid,
		SequenceStart:    1000,
		AttributePolicy:  models.AttributePolicyCreationOnly,
		Workers:          1,
		Outlets:          models.DefaultOutlets(),
		MenuItems:        models.DefaultMenuItems(),
		OrderTypes:       models.DefaultOrderTypes(),
		HourWeights:      weights[:],
		Holidays:         models.DefaultHolidays(),
	}
}

func testOutlet() models.Outlet {
	return models.Outlet{Name: "Outlet A", Location: "Palu Utara"}
}

func TestSimulateOrderCompletedLifecycle(t *testing.T) {
	cfg := testConfig()
	cfg.CancellationRate = 0 // force the completed branch
	sim := NewSimulator(cfg, rand.New(rand.NewSource(1)), CuidSource{})

	base := time.Date(2024, 5, 1, 12, 5, 0, 0, time.UTC)
	events := sim.SimulateOrder(testOutlet(), base)

	require.Len(t, events, 5)
	for i, status := range models.CanonicalStatuses {
		assert.Equal(t, status, events[i].Status)
	}
	assert.Equal(t, base.Unix(), events[0].Timestamp)

	for i := 1; i < len(events); i++ {
		gap := events[i].Timestamp - events[i-1].Timestamp
		assert.GreaterOrEqual(t, gap, int64(2*60), "status gap below 2 minutes")
		assert.LessOrEqual(t, gap, int64(5*60), "status gap above 5 minutes")
	}
}

func TestSimulateOrderCanceledBranch(t *testing.T) {
	cfg := testConfig()
	cfg.CancellationRate = 1 // force cancellation
	sim := NewSimulator(cfg, rand.New(rand.NewSource(1)), CuidSource{})

	base := time.Date(2024, 5, 1, 12, 5, 0, 0, time.UTC)
	events := sim.SimulateOrder(testOutlet(), base)

	require.Len(t, events, 2)
	assert.Equal(t, models.OrderStatusCreated, events[0].Status)
	assert.Equal(t, models.OrderStatusCanceled, events[1].Status)
	assert.Equal(t, events[0].Timestamp+60, events[1].Timestamp)
}

func TestSimulateOrderExactlyOneTerminalStatus(t *testing.T) {
	cfg := testConfig()
	sim := NewSimulator(cfg, rand.New(rand.NewSource(7)), CuidSource{})
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 500; i++ {
		events := sim.SimulateOrder(testOutlet(), base)
		terminals := 0
		for _, ev := range events {
			if ev.Status == models.OrderStatusDelivered || ev.Status == models.OrderStatusCanceled {
				terminals++
			}
		}
		require.Equal(t, 1, terminals, "order must end in exactly one terminal status")

		if events[len(events)-1].Status == models.OrderStatusCanceled {
			require.Len(t, events, 2, "canceled order must not emit intermediate statuses")
		} else {
			require.Len(t, events, 5)
		}

		for j := 1; j < len(events); j++ {
			require.Greater(t, events[j].Timestamp, events[j-1].Timestamp)
		}
	}
}

func TestSimulateOrderCreationOnlyAttributePolicy(t *testing.T) {
	cfg := testConfig()
	cfg.CancellationRate = 0
	sim := NewSimulator(cfg, rand.New(rand.NewSource(1)), CuidSource{})

	events := sim.SimulateOrder(testOutlet(), time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

	require.True(t, events[0].HasLocation())
	assert.Equal(t, "Palu Utara", *events[0].Location)
	assert.Equal(t, "Outlet A", *events[0].OutletName)
	assert.NotNil(t, events[0].MenuItem)
	assert.NotNil(t, events[0].OrderType)

	for _, ev := range events[1:] {
		assert.Nil(t, ev.OutletName)
		assert.Nil(t, ev.Location)
		assert.Nil(t, ev.MenuItem)
		assert.Nil(t, ev.OrderType)
	}
}

func TestSimulateOrderAllEventsAttributePolicy(t *testing.T) {
	cfg := testConfig()
	cfg.CancellationRate = 0
	cfg.AttributePolicy = models.AttributePolicyAllEvents
	sim := NewSimulator(cfg, rand.New(rand.NewSource(1)), CuidSource{})

	events := sim.SimulateOrder(testOutlet(), time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

	for _, ev := range events {
		require.NotNil(t, ev.Location)
		assert.Equal(t, "Palu Utara", *ev.Location)
		require.NotNil(t, ev.MenuItem)
		require.NotNil(t, ev.OrderType)
	}
}

func TestSimulateOrderDeterministicWithFixedSeed(t *testing.T) {
	cfg := testConfig()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	first := NewSimulator(cfg, rand.New(rand.NewSource(99)), NewSequenceSource(1000))
	second := NewSimulator(cfg, rand.New(rand.NewSource(99)), NewSequenceSource(1000))

	for i := 0; i < 50; i++ {
		require.Equal(t, first.SimulateOrder(testOutlet(), base), second.SimulateOrder(testOutlet(), base))
	}
}

func TestIDSourcesAreUnique(t *testing.T) {
	seq := NewSequenceSource(1000)
	assert.Equal(t, "1000", seq.Next())
	assert.Equal(t, "1001", seq.Next())

	seen := make(map[string]bool)
	cuids := CuidSource{}
	for i := 0; i < 10000; i++ {
		id := cuids.Next()
		require.False(t, seen[id], "duplicate cuid %s", id)
		seen[id] = true
	}
}

func TestNewIDSourceRejectsUnknownStrategy(t *testing.T) {
	cfg := testConfig()
	cfg.IDStrategy = "uuid7"
	_, err := NewIDSource(cfg)
	require.Error(t, err)
}
