// Package advisor implements the irrigation advisory engine: it evaluates
// field status, resolves weather and disease adjustments, and composes the
// forward irrigation schedule. Each evaluation pass is a pure, bounded
// computation over inputs materialized by the caller.
package advisor

import (
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/jsultonov/agrodale/internal/domain/models"
	"github.com/jsultonov/agrodale/internal/observability"
	"github.com/jsultonov/agrodale/internal/repository/croptable"
	"github.com/jsultonov/agrodale/internal/repository/memory"
)

// PlanRequest carries the caller-supplied inputs for one evaluation pass.
type PlanRequest struct {
	FieldName   string
	GrowthStage string
	// AreaSqMeters overrides the field's stored area when positive.
	AreaSqMeters float64
	Forecast     models.ForecastSeries
	Disease      *models.DiseaseReport
}

// FieldView is a field together with its evaluated status and map rendering
// hint.
type FieldView struct {
	Field     models.Field        `json:"field"`
	Status    *models.FieldStatus `json:"status,omitempty"`
	MapStatus models.MapStatus    `json:"map_status"`
}

// Service is the advisory engine facade. It owns no mutable state beyond the
// field repository it mutates on irrigation events.
type Service struct {
	table   *croptable.Table
	fields  memory.Repository
	clock   clockwork.Clock
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewService wires the engine with its reference table and field repository.
func NewService(table *croptable.Table, fields memory.Repository, clock clockwork.Clock, metrics *observability.Metrics, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{table: table, fields: fields, clock: clock, metrics: metrics, logger: logger}
}

// Plan runs one full evaluation pass and composes the irrigation schedule.
// Any upstream failure (unknown field, unresolvable crop profile) aborts the
// pass; no partial plan is computed.
func (s *Service) Plan(req PlanRequest) (models.IrrigationPlan, error) {
	plan, err := s.plan(req)
	if err != nil {
		if s.metrics != nil {
			s.metrics.PlanErrors.Inc()
		}
		return models.IrrigationPlan{}, err
	}
	if s.metrics != nil {
		s.metrics.PlansComputed.Inc()
	}
	return plan, nil
}

func (s *Service) plan(req PlanRequest) (models.IrrigationPlan, error) {
	field, err := s.fields.Get(req.FieldName)
	if err != nil {
		return models.IrrigationPlan{}, err
	}

	profile, err := s.table.Profile(field.Crop)
	if err != nil {
		return models.IrrigationPlan{}, fmt.Errorf("field %q: %w", field.Name, err)
	}

	stageReq, err := s.table.StageRequirement(field.Crop, req.GrowthStage)
	if errors.Is(err, croptable.ErrCropNotFound) {
		// The profile resolved but the stage table has no block for this
		// crop; plan against the default requirement.
		stageReq = croptable.DefaultRequirement
		stageReq.Crop = field.Crop
		stageReq.Stage = req.GrowthStage
	} else if err != nil {
		return models.IrrigationPlan{}, fmt.Errorf("field %q: %w", field.Name, err)
	}

	area := field.AreaSqMeters
	if req.AreaSqMeters > 0 {
		area = req.AreaSqMeters
	}

	today := s.clock.Now()
	status := EvaluateFieldStatus(field, profile, today)
	disease := ResolveDisease(req.Disease)

	plan := ComposeSchedule(status, disease, req.Forecast, stageReq, area, today)

	s.logger.Info("irrigation plan computed",
		zap.String("field", field.Name),
		zap.String("crop", field.Crop),
		zap.String("stage", stageReq.Stage),
		zap.String("urgency", string(status.Urgency)),
		zap.Float64("base_water", plan.BaseWater),
		zap.Float64("total_factor", plan.TotalAdjFactor))

	return plan, nil
}

// FieldView evaluates one field for display. Fields whose crop has no profile
// still render, with a gray marker and no status.
func (s *Service) FieldView(name string) (FieldView, error) {
	field, err := s.fields.Get(name)
	if err != nil {
		return FieldView{}, err
	}
	return s.buildView(field), nil
}

// FieldViews evaluates every registered field for the dashboard list.
func (s *Service) FieldViews() []FieldView {
	fields := s.fields.List()
	out := make([]FieldView, 0, len(fields))
	for _, f := range fields {
		out = append(out, s.buildView(f))
	}
	return out
}

func (s *Service) buildView(field models.Field) FieldView {
	profile, err := s.table.Profile(field.Crop)
	if err != nil {
		return FieldView{
			Field:     field,
			MapStatus: models.MapStatus{Color: "gray", Caption: "Ekin turi tanlanmagan"},
		}
	}
	status := EvaluateFieldStatus(field, profile, s.clock.Now())
	return FieldView{Field: field, Status: &status, MapStatus: MapStatusFor(status)}
}

// RecordIrrigation registers an irrigation event on a field: the last
// irrigation date becomes today and soil moisture resets to the crop optimum.
// Fields with an unknown crop reset to a generic 80%.
func (s *Service) RecordIrrigation(name string) (models.Field, error) {
	optimal := 80.0
	field, err := s.fields.Get(name)
	if err != nil {
		return models.Field{}, err
	}
	if profile, err := s.table.Profile(field.Crop); err == nil {
		optimal = profile.OptimalMoisture
	}

	today := dateOnly(s.clock.Now())
	err = s.fields.Update(name, func(f *models.Field) {
		f.LastIrrigated = today
		f.SoilMoisture = optimal
	})
	if err != nil {
		return models.Field{}, err
	}

	if s.metrics != nil {
		s.metrics.IrrigationsRecorded.Inc()
	}
	s.logger.Info("irrigation recorded", zap.String("field", name), zap.Float64("moisture", optimal))

	return s.fields.Get(name)
}
