// Package simulation depletes stored soil moisture over time to stand in for
// real sensor readings. The noise it injects is deliberate sensor-variability
// emulation, not a physical model.
package simulation

import (
	"math/rand"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/jsultonov/agrodale/internal/domain/models"
	"github.com/jsultonov/agrodale/internal/observability"
	"github.com/jsultonov/agrodale/internal/repository/croptable"
	"github.com/jsultonov/agrodale/internal/repository/memory"
)

// defaultDryOutRate applies to fields whose crop has no profile.
const defaultDryOutRate = 1.5

// minTickInterval debounces decay passes: ticks arriving closer together than
// this are ignored.
const minTickInterval = 5 * time.Second

// Simulator applies moisture decay to every field on each tick.
type Simulator struct {
	fields  memory.Repository
	table   *croptable.Table
	clock   clockwork.Clock
	rng     *rand.Rand
	metrics *observability.Metrics
	logger  *zap.Logger

	lastTick time.Time
}

// NewSimulator builds a decay simulator; the noise source seeds from the clock.
func NewSimulator(fields memory.Repository, table *croptable.Table, clock clockwork.Clock, metrics *observability.Metrics, logger *zap.Logger) *Simulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Simulator{
		fields:  fields,
		table:   table,
		clock:   clock,
		rng:     rand.New(rand.NewSource(clock.Now().UnixNano())),
		metrics: metrics,
		logger:  logger,
	}
}

// Tick runs one decay pass unless the previous pass was under the minimum
// interval ago. For each field the moisture drops by
// dryOutRate × daysSinceIrrigation / 10 plus uniform noise in [-0.5, 0.5),
// floored at zero.
func (s *Simulator) Tick() {
	now := s.clock.Now()
	if !s.lastTick.IsZero() && now.Sub(s.lastTick) < minTickInterval {
		if s.metrics != nil {
			s.metrics.DecaySkipped.Inc()
		}
		return
	}
	s.lastTick = now

	// Both endpoints collapse to UTC midnights so the day count stays a
	// calendar-date difference whatever zones the timestamps carry.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	for _, field := range s.fields.List() {
		rate := defaultDryOutRate
		if profile, err := s.table.Profile(field.Crop); err == nil {
			rate = profile.DryOutRate
		}

		last := field.LastIrrigated
		daysSince := int(today.Sub(time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, time.UTC)).Hours() / 24)
		if daysSince < 0 {
			daysSince = 0
		}

		noise := s.rng.Float64() - 0.5
		decay := rate*float64(daysSince)/10 + noise

		err := s.fields.Update(field.Name, func(f *models.Field) {
			f.SoilMoisture = f.SoilMoisture - decay
			if f.SoilMoisture < 0 {
				f.SoilMoisture = 0
			}
		})
		if err != nil {
			s.logger.Warn("decay update failed", zap.String("field", field.Name), zap.Error(err))
		}
	}

	if s.metrics != nil {
		s.metrics.DecayTicks.Inc()
		s.metrics.FieldsTracked.Set(float64(len(s.fields.List())))
	}
}
