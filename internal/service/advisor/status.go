package advisor

import (
	"time"

	"github.com/jsultonov/agrodale/internal/domain/models"
)

// EvaluateFieldStatus derives the irrigation urgency and timing for one field
// from its crop profile, as of the given day.
//
// Urgency is classified strictly from soil moisture against the crop minimum:
// below the minimum is high, below 1.2× the minimum is medium, otherwise low.
// A field past its scheduled irrigation date is never classified lower than
// medium.
func EvaluateFieldStatus(field models.Field, profile models.CropProfile, today time.Time) models.FieldStatus {
	today = dateOnly(today)
	lastIrrigated := dateOnly(field.LastIrrigated)

	daysSince := daysBetween(lastIrrigated, today)
	if daysSince < 0 {
		// A recorded irrigation date in the future is treated as "just watered".
		daysSince = 0
	}

	urgency := models.UrgencyLow
	switch {
	case field.SoilMoisture < profile.MinMoisture:
		urgency = models.UrgencyHigh
	case field.SoilMoisture < profile.MinMoisture*1.2:
		urgency = models.UrgencyMedium
	}

	nextIrrigation := lastIrrigated.AddDate(0, 0, profile.IrrigationDays)
	daysToNext := daysBetween(today, nextIrrigation)

	if daysToNext < 0 && urgency == models.UrgencyLow {
		urgency = models.UrgencyMedium
	}

	status := models.FieldStatus{
		Crop:                field.Crop,
		LastIrrigated:       lastIrrigated,
		SoilMoisture:        field.SoilMoisture,
		MinMoisture:         profile.MinMoisture,
		OptimalMoisture:     profile.OptimalMoisture,
		DaysSinceIrrigation: daysSince,
		NextIrrigation:      nextIrrigation,
		DaysToNext:          daysToNext,
		Urgency:             urgency,
		UrgencyScore:        urgency.Score(),
		IrrigationDays:      profile.IrrigationDays,
	}

	if field.PlantingDate != nil {
		maturationDays := profile.MaturationMonths * models.DaysPerMonth
		elapsed := daysBetween(dateOnly(*field.PlantingDate), today)
		remaining := maturationDays - elapsed
		status.DaysToMaturity = &remaining
		status.Mature = remaining <= 0
	}

	return status
}

// MapStatusFor translates a field status into the dashboard marker color and
// caption, mirroring the field-coloring rules of the map view.
func MapStatusFor(status models.FieldStatus) models.MapStatus {
	switch {
	case status.SoilMoisture < status.MinMoisture && status.DaysSinceIrrigation >= status.IrrigationDays:
		return models.MapStatus{Color: "red", Caption: "Tezda sug'orish kerak"}
	case status.SoilMoisture < status.MinMoisture*1.2 && status.DaysSinceIrrigation >= status.IrrigationDays-2:
		return models.MapStatus{Color: "orange", Caption: "Sug'orish kuni yaqinlashmoqda"}
	case status.SoilMoisture > status.OptimalMoisture*0.8 && status.DaysSinceIrrigation < status.IrrigationDays:
		return models.MapStatus{Color: "green", Caption: "Yaqinda sug'orilgan"}
	case status.Mature:
		return models.MapStatus{Color: "purple", Caption: "Ekin hosilga tayyor"}
	default:
		return models.MapStatus{Color: "blue", Caption: "Normal holat"}
	}
}

// dateOnly truncates a timestamp to its calendar date as a UTC midnight.
// Engine arithmetic works on dates without time-of-day; rebuilding every
// timestamp in one zone keeps day differences exact when inputs arrive with
// mixed zones (parsed UTC dates vs local wall clock).
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
