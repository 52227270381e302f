package models

import "time"

// ScheduleEntry is the summary form of one planned irrigation.
type ScheduleEntry struct {
	Number      int       `json:"irrigation_number"`
	Date        time.Time `json:"date"`
	WaterAmount float64   `json:"water_amount"` // m³, never negative
	DayFactor   float64   `json:"adjustment_factor"`
	// Per-day forecast context; nil when no forecast data was available.
	Temperature *float64 `json:"temperature,omitempty"`
	RainProb    *float64 `json:"rain_probability,omitempty"`
}

// DetailedScheduleEntry itemizes one planned irrigation by adjustment factor.
// Effects are absolute m³ contributions computed against the unscaled base
// water, so they are additive approximations around the base rather than
// compounding terms; TotalEffect is the exact final-minus-base difference.
type DetailedScheduleEntry struct {
	Number     int       `json:"irrigation_number"`
	Date       time.Time `json:"date"`
	BaseWater  float64   `json:"base_water"`
	FinalWater float64   `json:"final_water"`

	Temperature *float64 `json:"temperature,omitempty"`
	TempAdj     float64  `json:"temp_adjustment"`
	TempEffect  float64  `json:"temp_effect"`

	RainProb   *float64 `json:"rain_probability,omitempty"`
	RainAdj    float64  `json:"rain_adjustment"`
	RainEffect float64  `json:"rain_effect"`

	DiseaseAdj    float64 `json:"disease_adjustment"`
	DiseaseEffect float64 `json:"disease_effect"`

	SoilAdj    float64 `json:"soil_adjustment"`
	SoilEffect float64 `json:"soil_effect"`

	TotalAdj    float64 `json:"total_adjustment"`
	TotalEffect float64 `json:"total_effect"`
}

// IrrigationPlan is the composer's full output for one evaluation pass.
type IrrigationPlan struct {
	BaseWater       float64                 `json:"base_water_requirement"`     // m³/day before adjustments
	AdjustedWater   float64                 `json:"adjusted_water_requirement"` // m³/day after aggregate adjustments
	TempAdj         float64                 `json:"temperature_adjustment"`
	RainAdj         float64                 `json:"rain_adjustment"`
	DiseaseAdj      float64                 `json:"disease_adjustment"`
	SoilUrgencyAdj  float64                 `json:"soil_urgency_adjustment"`
	TotalAdjFactor  float64                 `json:"total_adjustment_factor"`
	Schedule        []ScheduleEntry         `json:"schedule"`
	Detailed        []DetailedScheduleEntry `json:"detailed_schedule"`
	Recommendations []string                `json:"recommendations"`
}
