package models

import (
	"encoding/json"
	"time"
)

// Field is one physical plot drawn by the user. The geometry blob is whatever
// the map widget produced; the engine never inspects it.
type Field struct {
	Name          string          `json:"name"`
	Crop          string          `json:"crop"`
	LastIrrigated time.Time       `json:"last_irrigated"`
	PlantingDate  *time.Time      `json:"planting_date,omitempty"`
	SoilMoisture  float64         `json:"soil_moisture"` // percent, floored at 0
	AreaSqMeters  float64         `json:"area_sq_meters"`
	Geometry      json.RawMessage `json:"geometry,omitempty"`
}

// Urgency classifies how overdue a field's irrigation is.
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// Score returns the numeric urgency score used by the schedule composer.
func (u Urgency) Score() int {
	switch u {
	case UrgencyHigh:
		return 3
	case UrgencyMedium:
		return 2
	default:
		return 1
	}
}

// FieldStatus is the evaluator's view of a single field at a point in time.
type FieldStatus struct {
	Crop                string    `json:"crop"`
	LastIrrigated       time.Time `json:"last_irrigated"`
	SoilMoisture        float64   `json:"soil_moisture"`
	MinMoisture         float64   `json:"min_moisture"`
	OptimalMoisture     float64   `json:"optimal_moisture"`
	DaysSinceIrrigation int       `json:"days_since_irrigation"`
	NextIrrigation      time.Time `json:"next_scheduled_irrigation"`
	DaysToNext          int       `json:"days_to_next_irrigation"` // negative means overdue
	Urgency             Urgency   `json:"irrigation_urgency"`
	UrgencyScore        int       `json:"urgency_score"`
	IrrigationDays      int       `json:"irrigation_interval_days"`

	// Maturity tracking, present only when the field has a planting date.
	DaysToMaturity *int `json:"days_to_maturity,omitempty"`
	Mature         bool `json:"mature"`
}

// MapStatus is the dashboard rendering hint for a field marker: a color and a
// short caption explaining it.
type MapStatus struct {
	Color   string `json:"color"`
	Caption string `json:"caption"`
}
