package croptable

import "github.com/jsultonov/agrodale/internal/domain/models"

// stageDisplayNames carries the localized (Uzbek) stage names shown on the
// dashboard. Missing entries fall back to the English stage name.
var stageDisplayNames = map[string]string{
	"Germination":     "Unib chiqish",
	"Tillering":       "Tuplanish",
	"Stem Elongation": "Poya cho'zilishi",
	"Flowering":       "Gullash",
	"Maturity":        "Pishish",
	"Vegetative":      "Vegetativ davr",
	"Tasseling":       "So'ta chiqarish",
	"Grain Filling":   "Don to'lishi",
	"Seedling":        "Ko'chat",
	"Fruiting":        "Meva tugish",
}

// builtinProfiles returns the static irrigation profiles per crop. Moisture
// values are percentages, the dry-out rate feeds the decay simulator.
func builtinProfiles() map[string]models.CropProfile {
	profiles := []models.CropProfile{
		{Name: "wheat", DisplayName: "Bug'doy", IrrigationDays: 10, MaturationMonths: 4, MinMoisture: 30, OptimalMoisture: 60, DryOutRate: 1.5},
		{Name: "corn", DisplayName: "Makkajo'xori", IrrigationDays: 7, MaturationMonths: 3, MinMoisture: 40, OptimalMoisture: 70, DryOutRate: 2.0},
		{Name: "rice", DisplayName: "Sholi", IrrigationDays: 4, MaturationMonths: 4, MinMoisture: 60, OptimalMoisture: 90, DryOutRate: 2.5},
		{Name: "cotton", DisplayName: "Paxta", IrrigationDays: 8, MaturationMonths: 5, MinMoisture: 35, OptimalMoisture: 65, DryOutRate: 1.8},
		{Name: "vegetables", DisplayName: "Sabzavotlar", IrrigationDays: 4, MaturationMonths: 2, MinMoisture: 45, OptimalMoisture: 75, DryOutRate: 2.2},
		{Name: "potatoes", DisplayName: "Kartoshka", IrrigationDays: 6, MaturationMonths: 3, MinMoisture: 40, OptimalMoisture: 70, DryOutRate: 1.7},
		{Name: "alfalfa", DisplayName: "Beda", IrrigationDays: 12, MaturationMonths: 2, MinMoisture: 35, OptimalMoisture: 65, DryOutRate: 1.4},
		{Name: "tomatoes", DisplayName: "Pomidor", IrrigationDays: 3, MaturationMonths: 3, MinMoisture: 50, OptimalMoisture: 80, DryOutRate: 2.3},
		{Name: "cucumbers", DisplayName: "Bodring", IrrigationDays: 2, MaturationMonths: 2, MinMoisture: 55, OptimalMoisture: 85, DryOutRate: 2.4},
	}

	out := make(map[string]models.CropProfile, len(profiles))
	for _, p := range profiles {
		out[p.Name] = p
	}
	return out
}

// builtinStages is the fallback stage dataset used when no CSV resource is
// available.
func builtinStages() map[string]map[string]models.GrowthStageRequirement {
	raw := map[string][]struct {
		stage string
		cell  string
	}{
		"Wheat": {
			{"Germination", "4-5 mm/day (7-10 days)"},
			{"Tillering", "5-7 mm/day (30-40 days)"},
			{"Stem Elongation", "7-8 mm/day (20-30 days)"},
			{"Flowering", "8-10 mm/day (10-15 days)"},
			{"Grain Filling", "6-8 mm/day (15-20 days)"},
			{"Maturity", "3-4 mm/day (10-15 days)"},
		},
		"Corn": {
			{"Germination", "4-6 mm/day (5-10 days)"},
			{"Vegetative", "6-8 mm/day (30-40 days)"},
			{"Tasseling", "8-10 mm/day (15-20 days)"},
			{"Grain Filling", "7-9 mm/day (20-30 days)"},
			{"Maturity", "5-6 mm/day (10-15 days)"},
		},
		"Tomatoes": {
			{"Seedling", "3-4 mm/day (10-15 days)"},
			{"Vegetative", "5-6 mm/day (20-30 days)"},
			{"Flowering", "6-8 mm/day (15-20 days)"},
			{"Fruiting", "7-9 mm/day (30-45 days)"},
			{"Maturity", "5-7 mm/day (15-20 days)"},
		},
	}

	out := make(map[string]map[string]models.GrowthStageRequirement, len(raw))
	for crop, entries := range raw {
		stages := make(map[string]models.GrowthStageRequirement, len(entries))
		for _, e := range entries {
			req, err := parseRequirementCell(crop, e.stage, e.cell)
			if err != nil {
				req = DefaultRequirement
				req.Crop = crop
				req.Stage = e.stage
			}
			stages[normalize(e.stage)] = req
		}
		out[normalize(crop)] = stages
	}
	return out
}
