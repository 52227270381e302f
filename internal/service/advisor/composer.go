package advisor

import (
	"fmt"
	"time"

	"github.com/jsultonov/agrodale/internal/domain/models"
)

// scheduleLength is the fixed number of forward irrigation events in a plan.
const scheduleLength = 5

// ComposeSchedule combines the upstream assessments into the forward
// irrigation plan. All inputs must already be resolved; the composer itself
// cannot fail.
//
// The aggregate weather adjustments, the disease adjustment and the soil
// urgency adjustment form the baseline multiplier. Each scheduled event then
// re-derives a day-specific multiplier from the finer per-day weather tables,
// so the plan is not a flat scaling of one number. High urgency overrides the
// computed wait and schedules the first event today.
func ComposeSchedule(
	status models.FieldStatus,
	disease models.DiseaseAssessment,
	series models.ForecastSeries,
	stageReq models.GrowthStageRequirement,
	areaSqMeters float64,
	today time.Time,
) models.IrrigationPlan {
	today = dateOnly(today)

	baseWater := stageReq.DailyWaterVolume(areaSqMeters)

	tempAdj := aggregateTempAdjustment(series.AvgTemp)
	rainAdj := aggregateRainAdjustment(series.AvgRainProb)

	urgencyAdj := 0.0
	startOffset := status.DaysToNext
	switch status.Urgency {
	case models.UrgencyHigh:
		urgencyAdj = 0.10
		startOffset = 0 // irrigate immediately
	case models.UrgencyLow:
		urgencyAdj = -0.10
	}

	totalFactor := 1 + tempAdj + rainAdj + disease.Adjustment + urgencyAdj
	adjustedWater := baseWater * totalFactor

	currentDate := today
	if startOffset > 0 {
		currentDate = today.AddDate(0, 0, startOffset)
	}

	plan := models.IrrigationPlan{
		BaseWater:      baseWater,
		AdjustedWater:  adjustedWater,
		TempAdj:        tempAdj,
		RainAdj:        rainAdj,
		DiseaseAdj:     disease.Adjustment,
		SoilUrgencyAdj: urgencyAdj,
		TotalAdjFactor: totalFactor,
		Schedule:       make([]models.ScheduleEntry, 0, scheduleLength),
		Detailed:       make([]models.DetailedScheduleEntry, 0, scheduleLength),
	}

	for i := 0; i < scheduleLength; i++ {
		tempDayAdj, rainDayAdj, day, ok := dayAdjustments(series, i)

		dayFactor := 1.0
		var temperature, rainProb *float64
		if ok {
			dayFactor = 1 + tempDayAdj + rainDayAdj
			t, p := day.Temperature, day.RainProb
			temperature, rainProb = &t, &p
		}

		finalWater := adjustedWater * dayFactor
		if finalWater < 0 {
			finalWater = 0
		}

		plan.Schedule = append(plan.Schedule, models.ScheduleEntry{
			Number:      i + 1,
			Date:        currentDate,
			WaterAmount: finalWater,
			DayFactor:   dayFactor,
			Temperature: temperature,
			RainProb:    rainProb,
		})

		plan.Detailed = append(plan.Detailed, models.DetailedScheduleEntry{
			Number:        i + 1,
			Date:          currentDate,
			BaseWater:     baseWater,
			FinalWater:    finalWater,
			Temperature:   temperature,
			TempAdj:       tempDayAdj,
			TempEffect:    baseWater * tempDayAdj,
			RainProb:      rainProb,
			RainAdj:       rainDayAdj,
			RainEffect:    baseWater * rainDayAdj,
			DiseaseAdj:    disease.Adjustment,
			DiseaseEffect: baseWater * disease.Adjustment,
			SoilAdj:       urgencyAdj,
			SoilEffect:    baseWater * urgencyAdj,
			TotalAdj:      dayFactor + disease.Adjustment + urgencyAdj - 1.0,
			TotalEffect:   finalWater - baseWater,
		})

		currentDate = currentDate.AddDate(0, 0, status.IrrigationDays)
	}

	plan.Recommendations = recommendations(tempAdj, rainAdj, disease, status.Urgency)
	return plan
}

// recommendations assembles the user-facing advice strings for every non-zero
// adjustment that shaped the plan.
func recommendations(tempAdj, rainAdj float64, disease models.DiseaseAssessment, urgency models.Urgency) []string {
	var out []string

	if tempAdj > 0 {
		out = append(out, "Harorat yuqori bo'lgani uchun sug'orish miqdori oshirildi")
	}
	if tempAdj < 0 {
		out = append(out, "Harorat past bo'lgani uchun sug'orish miqdori kamaytirildi")
	}
	if rainAdj < 0 {
		out = append(out, "Yomg'ir ehtimoli yuqori bo'lgani uchun sug'orish miqdori kamaytirildi")
	}
	if disease.RequiresReducedWater {
		out = append(out, fmt.Sprintf("%s kasalligi tufayli sug'orish miqdori kamaytirildi", disease.DiseaseName))
	}
	if urgency == models.UrgencyHigh {
		out = append(out, "Tuproq namligi juda past, tezda sug'orish tavsiya etiladi")
	}

	return out
}
