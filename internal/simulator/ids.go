package simulator

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/lucsky/cuid"
	"github.com/restunugroho/demand-forecast/internal/models"
)

// IDSource allocates order identifiers. Global uniqueness across the run is
// the only invariant; implementations must be safe for concurrent use.
type IDSource interface {
	Next() string
}

// CuidSource issues collision-free random identifiers. It needs no shared
// state, so parallel day generation is safe without synchronization.
type CuidSource struct{}

func (CuidSource) Next() string {
	return cuid.New()
}

// SequenceSource issues monotonically increasing numeric identifiers starting
// at a fixed base. The counter is atomic so it stays safe under a worker pool.
type SequenceSource struct {
	next atomic.Int64
}

func NewSequenceSource(start int64) *SequenceSource {
	s := &SequenceSource{}
	s.next.Store(start)
	return s
}

func (s *SequenceSource) Next() string {
	return strconv.FormatInt(s.next.Add(1)-1, 10)
}

// NewIDSource builds the configured identifier source.
func NewIDSource(cfg *models.Config) (IDSource, error) {
	switch cfg.IDStrategy {
	case models.IDStrategyCuid:
		return CuidSource{}, nil
	case models.IDStrategySequence:
		return NewSequenceSource(cfg.SequenceStart), nil
	default:
		return nil, fmt.Errorf("unknown id_strategy: %q", cfg.IDStrategy)
	}
}
