package simulator

import (
	"math/rand"
	"time"

	"github.com/restunugroho/demand-forecast/internal/models"
)

// Simulator produces the ordered lifecycle event stream for single orders.
// Randomness comes from the injected source only, so a fixed seed yields a
// fully reproducible event log.
type Simulator struct {
	Config *models.Config
	Rng    *rand.Rand
	IDs    IDSource
}

func NewSimulator(cfg *models.Config, rng *rand.Rand, ids IDSource) *Simulator {
	return &Simulator{
		Config: cfg,
		Rng:    rng,
		IDs:    ids,
	}
}

// SimulateOrder generates the full event sequence for one order placed at an
// outlet at baseTime. A completed order walks the canonical status sequence
// with 2-5 minute gaps; a canceled order emits only "created" followed by
// "canceled" one minute later.
func (s *Simulator) SimulateOrder(outlet models.Outlet, baseTime time.Time) []models.OrderEvent {
	order := models.Order{
		ID:        s.IDs.Next(),
		Outlet:    outlet,
		MenuItem:  s.Config.MenuItems[s.Rng.Intn(len(s.Config.MenuItems))],
		OrderType: s.Config.OrderTypes[s.Rng.Intn(len(s.Config.OrderTypes))],
		Canceled:  s.Rng.Float64() < s.Config.CancellationRate,
	}

	events := make([]models.OrderEvent, 0, len(models.CanonicalStatuses))
	ts := baseTime
	for i, status := range models.CanonicalStatuses {
		if i > 0 {
			ts = ts.Add(time.Duration(2+s.Rng.Intn(4)) * time.Minute)
		}
		events = append(events, s.newEvent(order, status, ts))

		if order.Canceled && status == models.OrderStatusCreated {
			events = append(events, s.newEvent(order, models.OrderStatusCanceled, ts.Add(time.Minute)))
			break
		}
	}
	return events
}

// newEvent builds one event row, applying the attribute policy: under
// creation_only every status after "created" carries nil descriptive columns.
func (s *Simulator) newEvent(order models.Order, status string, ts time.Time) models.OrderEvent {
	ev := models.OrderEvent{
		OrderID:   order.ID,
		Status:    status,
		Timestamp: ts.Unix(),
	}
	if status == models.OrderStatusCreated || s.Config.AttributePolicy == models.AttributePolicyAllEvents {
		ev.OutletName = ptr(order.Outlet.Name)
		ev.Location = ptr(order.Outlet.Location)
		ev.MenuItem = ptr(order.MenuItem)
		ev.OrderType = ptr(order.OrderType)
	}
	return ev
}

func ptr(s string) *string {
	return &s
}
