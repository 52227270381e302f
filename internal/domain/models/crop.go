package models

// MillimetersToCubicMetersPerHectare converts a crop water requirement expressed
// in mm/day of water depth into irrigation volume: 1 mm/day over one hectare is
// 10 m³/day. Field areas are held in m², so callers divide by SquareMetersPerHectare.
const MillimetersToCubicMetersPerHectare = 10.0

// SquareMetersPerHectare is the area conversion used alongside the depth constant.
const SquareMetersPerHectare = 10000.0

// DaysPerMonth approximates a month when converting maturation durations to days.
const DaysPerMonth = 30

// CropProfile describes the irrigation characteristics of a crop. Profiles are
// static reference data and are never mutated at runtime.
type CropProfile struct {
	Name             string  `json:"name"`
	DisplayName      string  `json:"display_name"`
	IrrigationDays   int     `json:"irrigation_interval_days"`
	MaturationMonths int     `json:"maturation_months"`
	MinMoisture      float64 `json:"min_moisture"`
	OptimalMoisture  float64 `json:"optimal_moisture"`
	DryOutRate       float64 `json:"dry_out_rate"`
}

// Range is a numeric interval with a unit, parsed once at the data-loading
// boundary from the textual grammar "<min>-<max> <unit>" or "<value> <unit>".
type Range struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit"`
}

// Mean collapses the range to its arithmetic mean. This is the fixed rule for
// using a range in a calculation; the model is deliberately not stochastic.
func (r Range) Mean() float64 {
	return (r.Min + r.Max) / 2
}

// GrowthStageRequirement holds the water need of a crop during one named growth
// stage: a depth-per-day requirement and how long the stage lasts.
type GrowthStageRequirement struct {
	Crop         string `json:"crop"`
	Stage        string `json:"stage"`
	StageDisplay string `json:"stage_display,omitempty"`
	Water        Range  `json:"water_requirement"` // mm/day
	Duration     Range  `json:"duration"`          // days
}

// DailyWaterVolume converts the stage requirement into m³/day for a field of
// the given area in m².
func (g GrowthStageRequirement) DailyWaterVolume(areaSqMeters float64) float64 {
	perHectare := g.Water.Mean() * MillimetersToCubicMetersPerHectare
	return perHectare * (areaSqMeters / SquareMetersPerHectare)
}
