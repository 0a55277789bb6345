package models

import "time"

// Calendar bundles the static demand tables: the hourly weight distribution,
// the holiday date set and weekday/weekend classification. It is a value
// object passed into the scheduler and the feature builder instead of living
// in package-level globals, so runs stay deterministic and test-isolated.
type Calendar struct {
	hourWeights [24]int
	totalWeight int
	holidays    map[string]bool
}

const isoDate = "2006-01-02"

// NewCalendar builds a Calendar from a 24-bucket weight table and a list of
// holiday dates formatted as YYYY-MM-DD.
func NewCalendar(weights [24]int, holidayDates []string) Calendar {
	total := 0
	for _, w := range weights {
		total += w
	}
	holidays := make(map[string]bool, len(holidayDates))
	for _, d := range holidayDates {
		holidays[d] = true
	}
	return Calendar{hourWeights: weights, totalWeight: total, holidays: holidays}
}

// HourWeight returns the demand weight for an hour of day (0-23).
func (c Calendar) HourWeight(hour int) int {
	return c.hourWeights[hour]
}

// TotalWeight returns the sum over all 24 hourly weights.
func (c Calendar) TotalWeight() int {
	return c.totalWeight
}

// IsHoliday reports whether the date of t is in the holiday set.
func (c Calendar) IsHoliday(t time.Time) bool {
	return c.holidays[t.Format(isoDate)]
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func (c Calendar) IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DefaultHourWeights returns the built-in hourly demand distribution: low
// overnight, peaks at lunch (11-13) and dinner (17-19).
func DefaultHourWeights() [24]int {
	return [24]int{
		2, 2, 2, 2, 2, 2, // 00-05
		5,          // 06
		10, 10, 10, // 07-09
		6,          // 10
		15, 15, 15, // 11-13
		5, 5, 5, // 14-16
		12, 12, 12, // 17-19
		4, 4, 4, 4, // 20-23
	}
}

// DefaultHolidays returns the built-in Indonesian national holiday list.
func DefaultHolidays() []string {
	return []string{
		"2024-12-25",                             // Natal
		"2025-01-01",                             // Tahun Baru
		"2024-04-10", "2024-04-11", "2024-04-12", // long weekend
		"2024-05-01", // Hari Buruh
		"2024-06-17", // Idul Adha
	}
}
