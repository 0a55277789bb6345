// Package aggregator turns the raw order event log into hourly demand counts
// per location.
package aggregator

import (
	"sort"

	"github.com/restunugroho/demand-forecast/internal/models"
)

const secondsPerHour = 3600

// FloorHour floors a unix timestamp to the start of its hour.
func FloorHour(ts int64) int64 {
	return ts - ts%secondsPerHour
}

// Aggregate counts events per (location, hour). Only rows carrying a
// non-missing location are counted: under the creation-only attribute policy
// that is exactly one row per order, at its creation timestamp. Silent hours
// produce no record here; the feature builder synthesizes the zeros.
func Aggregate(events []models.OrderEvent) []models.DemandRecord {
	type groupKey struct {
		location string
		hour     int64
	}

	counts := make(map[groupKey]int64)
	for _, ev := range events {
		if !ev.HasLocation() {
			continue
		}
		key := groupKey{location: *ev.Location, hour: FloorHour(ev.Timestamp)}
		counts[key]++
	}

	records := make([]models.DemandRecord, 0, len(counts))
	for key, demand := range counts {
		records = append(records, models.DemandRecord{
			Location: key.location,
			Hour:     key.hour,
			Demand:   demand,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Location != records[j].Location {
			return records[i].Location < records[j].Location
		}
		return records[i].Hour < records[j].Hour
	})
	return records
}
