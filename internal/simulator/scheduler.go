package simulator

import (
	"fmt"
	"log"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/restunugroho/demand-forecast/internal/models"
	"github.com/schollz/progressbar/v3"
)

// Scheduler turns a target daily order volume into simulated order lifecycles,
// spreading orders across hours according to the calendar's weight table and
// applying holiday and trend multipliers to the daily total.
type Scheduler struct {
	Config   *models.Config
	Calendar models.Calendar
	IDs      IDSource
	Outlets  []models.Outlet
}

func NewScheduler(cfg *models.Config, ids IDSource, outlets []models.Outlet) *Scheduler {
	return &Scheduler{
		Config:   cfg,
		Calendar: cfg.Calendar(),
		IDs:      ids,
		Outlets:  outlets,
	}
}

// DailyVolume computes the order count for one day: weekday/weekend base,
// then the holiday multiplier, then the linear trend ramp across the range.
// Both multiplications truncate to an integer.
func (sc *Scheduler) DailyVolume(date time.Time, dayIndex, totalDays int) int {
	volume := sc.Config.WeekdayVolume
	if sc.Calendar.IsWeekend(date) {
		volume = sc.Config.WeekendVolume
	}
	if sc.Calendar.IsHoliday(date) {
		volume = int(float64(volume) * sc.Config.HolidayFactor)
	}
	trend := 1 + float64(dayIndex)/float64(totalDays)*sc.Config.TrendFactor
	return int(float64(volume) * trend)
}

// GenerateDay simulates every order of one day. The per-hour allocation is
// volume * weight / totalWeight, truncated; the lost remainder is accepted,
// so the day's event count can undershoot the requested volume slightly.
func (sc *Scheduler) GenerateDay(date time.Time, dayIndex, totalDays int, rng *rand.Rand) []models.OrderEvent {
	volume := sc.DailyVolume(date, dayIndex, totalDays)
	totalWeight := sc.Calendar.TotalWeight()

	sim := NewSimulator(sc.Config, rng, sc.IDs)

	var events []models.OrderEvent
	for hour := 0; hour < 24; hour++ {
		hourCount := int(float64(volume) * float64(sc.Calendar.HourWeight(hour)) / float64(totalWeight))
		for i := 0; i < hourCount; i++ {
			outlet := sc.Outlets[rng.Intn(len(sc.Outlets))]
			baseTime := time.Date(date.Year(), date.Month(), date.Day(),
				hour, rng.Intn(60), rng.Intn(60), 0, time.UTC)
			events = append(events, sim.SimulateOrder(outlet, baseTime)...)
		}
	}
	return events
}

// GenerateRange simulates all days between start and end inclusive and
// returns the flat event list sorted by timestamp. Each day draws from its
// own seed-derived random source, so results are reproducible even when the
// days are generated by a worker pool.
func (sc *Scheduler) GenerateRange(start, end time.Time) ([]models.OrderEvent, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("invalid date range: end %s before start %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	totalDays := int(end.Sub(start).Hours()/24) + 1

	bar := progressbar.Default(int64(totalDays), "generating days")
	perDay := make([][]models.OrderEvent, totalDays)

	workers := sc.Config.Workers
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	days := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for dayIndex := range days {
				date := start.AddDate(0, 0, dayIndex)
				rng := rand.New(rand.NewSource(sc.Config.Seed + int64(dayIndex)))
				perDay[dayIndex] = sc.GenerateDay(date, dayIndex, totalDays, rng)
				_ = bar.Add(1)
			}
		}()
	}
	for dayIndex := 0; dayIndex < totalDays; dayIndex++ {
		days <- dayIndex
	}
	close(days)
	wg.Wait()

	var all []models.OrderEvent
	for dayIndex, events := range perDay {
		date := start.AddDate(0, 0, dayIndex)
		log.Printf("%s: %d events", date.Format("2006-01-02"), len(events))
		all = append(all, events...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Timestamp < all[j].Timestamp
	})
	return all, nil
}
