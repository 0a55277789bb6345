// Package features completes the location x hour demand grid and derives the
// lag, weekly-recurrence and calendar features the demand model trains on.
package features

import (
	"fmt"
	"sort"
	"time"

	"github.com/restunugroho/demand-forecast/internal/models"
)

const (
	maxLagHours     = 24
	maxSameHourDays = 7
	secondsPerHour  = 3600

	// same_hour_7d_ago needs a full week of history, so the first 168 hours
	// of every location's series cannot form complete rows and are dropped.
	historyHours = 24 * maxSameHourDays
)

// FeatureColumns is the predictor column contract the external trainer
// consumes, in the order they appear in the feature table.
func FeatureColumns() []string {
	cols := make([]string, 0, maxLagHours+maxSameHourDays+6)
	for k := 1; k <= maxLagHours; k++ {
		cols = append(cols, fmt.Sprintf("lag_%d", k))
	}
	for d := 1; d <= maxSameHourDays; d++ {
		cols = append(cols, fmt.Sprintf("same_hour_%dd_ago", d))
	}
	return append(cols, "hour_of_day", "day_of_week", "is_weekend", "week_of_year", "month", "is_holiday")
}

// Build turns sparse hourly demand records into fully populated feature rows.
// The grid spans [min(hour), max(hour)] for every location that appears in
// the input; missing hours become zero demand. Rows are grouped by location,
// ascending in time.
func Build(records []models.DemandRecord, cal models.Calendar) ([]models.FeatureRow, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no demand records to build features from")
	}

	minHour, maxHour := records[0].Hour, records[0].Hour
	for _, r := range records {
		if r.Demand < 0 {
			return nil, fmt.Errorf("negative demand %d for %s at %s: invariant violation",
				r.Demand, r.Location, r.HourTime().Format(time.RFC3339))
		}
		if r.Hour%secondsPerHour != 0 {
			return nil, fmt.Errorf("hour %d for %s is not on an hour boundary", r.Hour, r.Location)
		}
		if r.Hour < minHour {
			minHour = r.Hour
		}
		if r.Hour > maxHour {
			maxHour = r.Hour
		}
	}
	span := int((maxHour-minHour)/secondsPerHour) + 1

	series := make(map[string][]int64)
	for _, r := range records {
		s, ok := series[r.Location]
		if !ok {
			s = make([]int64, span)
			series[r.Location] = s
		}
		s[(r.Hour-minHour)/secondsPerHour] = r.Demand
	}

	locations := make([]string, 0, len(series))
	for loc := range series {
		locations = append(locations, loc)
	}
	sort.Strings(locations)

	var rows []models.FeatureRow
	for _, loc := range locations {
		s := series[loc]
		for i := historyHours; i < span; i++ {
			ts := minHour + int64(i)*secondsPerHour
			row := models.FeatureRow{
				Location: loc,
				Datetime: ts,
				Demand:   s[i],
			}
			for k := 1; k <= maxLagHours; k++ {
				row.SetLag(k, s[i-k])
			}
			for d := 1; d <= maxSameHourDays; d++ {
				row.SetSameHour(d, s[i-24*d])
			}
			applyCalendar(&row, cal)
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// applyCalendar fills the features derived purely from the row's hour.
func applyCalendar(row *models.FeatureRow, cal models.Calendar) {
	t := time.Unix(row.Datetime, 0).UTC()
	// Monday=0 .. Sunday=6
	dayOfWeek := (int(t.Weekday()) + 6) % 7
	_, week := t.ISOWeek()

	row.HourOfDay = int32(t.Hour())
	row.DayOfWeek = int32(dayOfWeek)
	if dayOfWeek >= 5 {
		row.IsWeekend = 1
	}
	row.WeekOfYear = int32(week)
	row.Month = int32(t.Month())
	if cal.IsHoliday(t) {
		row.IsHoliday = 1
	}
}
