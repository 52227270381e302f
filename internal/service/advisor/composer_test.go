package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsultonov/agrodale/internal/domain/models"
)

var testStageReq = models.GrowthStageRequirement{
	Crop:     "wheat",
	Stage:    "Tillering",
	Water:    models.Range{Min: 5, Max: 7, Unit: "mm/day"},
	Duration: models.Range{Min: 10, Max: 15, Unit: "days"},
}

func flatSeries(days int, temp, rainProb float64) models.ForecastSeries {
	series := models.ForecastSeries{AvgTemp: temp, AvgRainProb: rainProb}
	for i := 0; i < days; i++ {
		series.Days = append(series.Days, models.ForecastDay{
			Date:        testDay().AddDate(0, 0, i),
			Temperature: temp,
			RainProb:    rainProb,
		})
	}
	return series
}

func TestComposeSchedule_MildWeatherLowUrgency(t *testing.T) {
	status := EvaluateFieldStatus(fieldWith(55, 3), testProfile, testDay())
	require.Equal(t, models.UrgencyLow, status.Urgency)

	plan := ComposeSchedule(status, ResolveDisease(nil), flatSeries(5, 25, 10), testStageReq, 1000, testDay())

	// mean(5,7)=6 mm/day -> 60 m³/ha -> 6 m³ on 1000 m².
	assert.InDelta(t, 6.0, plan.BaseWater, 1e-9)
	assert.Zero(t, plan.TempAdj)
	assert.Zero(t, plan.RainAdj)
	assert.Zero(t, plan.DiseaseAdj)
	assert.Equal(t, -0.10, plan.SoilUrgencyAdj)
	assert.InDelta(t, 0.9, plan.TotalAdjFactor, 1e-9)
	assert.InDelta(t, 5.4, plan.AdjustedWater, 1e-9)

	require.Len(t, plan.Schedule, 5)
	first := plan.Schedule[0]
	assert.InDelta(t, 5.4, first.WaterAmount, 1e-9)
	assert.Equal(t, status.NextIrrigation, first.Date)

	// Events are spaced by the crop's irrigation interval.
	for i := 1; i < 5; i++ {
		assert.Equal(t, plan.Schedule[i-1].Date.AddDate(0, 0, 10), plan.Schedule[i].Date)
	}
}

func TestComposeSchedule_HotWetDiseasedField(t *testing.T) {
	status := EvaluateFieldStatus(fieldWith(55, 3), testProfile, testDay())
	disease := ResolveDisease(&models.DiseaseReport{Name: "Late Blight"})
	require.True(t, disease.RequiresReducedWater)

	plan := ComposeSchedule(status, disease, flatSeries(5, 32, 80), testStageReq, 1000, testDay())

	// 1 + 0.20 (hot) - 0.30 (rain) - 0.30 (blight) - 0.10 (low urgency).
	assert.InDelta(t, 0.5, plan.TotalAdjFactor, 1e-9)
	assert.InDelta(t, 3.0, plan.AdjustedWater, 1e-9)

	// Per-day track uses the finer steps: 1 + 0.15 - 0.40.
	require.Len(t, plan.Schedule, 5)
	assert.InDelta(t, 0.75, plan.Schedule[0].DayFactor, 1e-9)
	assert.InDelta(t, 2.25, plan.Schedule[0].WaterAmount, 1e-9)

	assert.Contains(t, plan.Recommendations, "Late Blight kasalligi tufayli sug'orish miqdori kamaytirildi")
}

func TestComposeSchedule_HighUrgencyStartsToday(t *testing.T) {
	status := EvaluateFieldStatus(fieldWith(20, 3), testProfile, testDay())
	require.Equal(t, models.UrgencyHigh, status.Urgency)

	plan := ComposeSchedule(status, ResolveDisease(nil), flatSeries(5, 25, 10), testStageReq, 1000, testDay())

	assert.Equal(t, 0.10, plan.SoilUrgencyAdj)
	assert.Equal(t, testDay(), plan.Schedule[0].Date)
	assert.Contains(t, plan.Recommendations, "Tuproq namligi juda past, tezda sug'orish tavsiya etiladi")
}

func TestComposeSchedule_OverdueStartClampsToToday(t *testing.T) {
	status := EvaluateFieldStatus(fieldWith(55, 14), testProfile, testDay())
	require.Negative(t, status.DaysToNext)
	require.NotEqual(t, models.UrgencyHigh, status.Urgency)

	plan := ComposeSchedule(status, ResolveDisease(nil), flatSeries(5, 25, 10), testStageReq, 1000, testDay())

	assert.Equal(t, testDay(), plan.Schedule[0].Date)
}

func TestComposeSchedule_AlwaysFiveEntries(t *testing.T) {
	status := EvaluateFieldStatus(fieldWith(55, 3), testProfile, testDay())

	for _, days := range []int{0, 1, 3, 5, 7} {
		series := flatSeries(days, 25, 10)
		plan := ComposeSchedule(status, ResolveDisease(nil), series, testStageReq, 1000, testDay())

		assert.Len(t, plan.Schedule, 5, "series length %d", days)
		assert.Len(t, plan.Detailed, 5, "series length %d", days)
	}
}

func TestComposeSchedule_EmptySeriesMarksWeatherUnavailable(t *testing.T) {
	status := EvaluateFieldStatus(fieldWith(55, 3), testProfile, testDay())

	plan := ComposeSchedule(status, ResolveDisease(nil), models.ForecastSeries{}, testStageReq, 1000, testDay())

	for _, entry := range plan.Schedule {
		assert.Nil(t, entry.Temperature)
		assert.Nil(t, entry.RainProb)
		assert.Equal(t, 1.0, entry.DayFactor)
	}
}

func TestComposeSchedule_ShortSeriesClampsToLastDay(t *testing.T) {
	status := EvaluateFieldStatus(fieldWith(55, 3), testProfile, testDay())
	series := flatSeries(2, 25, 10)
	series.Days[1].Temperature = 32
	series.Days[1].RainProb = 80

	plan := ComposeSchedule(status, ResolveDisease(nil), series, testStageReq, 1000, testDay())

	// Entries 2 through 5 all see the last forecast day.
	for i := 1; i < 5; i++ {
		require.NotNil(t, plan.Schedule[i].Temperature)
		assert.Equal(t, 32.0, *plan.Schedule[i].Temperature)
		assert.InDelta(t, 0.75, plan.Schedule[i].DayFactor, 1e-9)
	}
}

func TestComposeSchedule_WaterNeverNegative(t *testing.T) {
	// Stack every reduction at once: cool, rainy, diseased, low urgency.
	status := EvaluateFieldStatus(fieldWith(55, 3), testProfile, testDay())
	disease := ResolveDisease(&models.DiseaseReport{Name: "fusarium wilt"})

	plan := ComposeSchedule(status, disease, flatSeries(5, 5, 95), testStageReq, 1000, testDay())

	for _, entry := range plan.Schedule {
		assert.GreaterOrEqual(t, entry.WaterAmount, 0.0)
	}
	for _, entry := range plan.Detailed {
		assert.GreaterOrEqual(t, entry.FinalWater, 0.0)
	}
}

func TestComposeSchedule_DetailedBreakdown(t *testing.T) {
	status := EvaluateFieldStatus(fieldWith(55, 3), testProfile, testDay())
	disease := ResolveDisease(&models.DiseaseReport{Name: "Late Blight"})

	plan := ComposeSchedule(status, disease, flatSeries(5, 32, 80), testStageReq, 1000, testDay())

	require.Len(t, plan.Detailed, 5)
	entry := plan.Detailed[0]

	assert.InDelta(t, 6.0, entry.BaseWater, 1e-9)
	// Effects are absolute contributions against the unscaled base.
	assert.InDelta(t, 6.0*0.15, entry.TempEffect, 1e-9)
	assert.InDelta(t, 6.0*-0.40, entry.RainEffect, 1e-9)
	assert.InDelta(t, 6.0*-0.30, entry.DiseaseEffect, 1e-9)
	assert.InDelta(t, 6.0*-0.10, entry.SoilEffect, 1e-9)
	assert.InDelta(t, entry.FinalWater-entry.BaseWater, entry.TotalEffect, 1e-9)
	// dayFactor 0.75 + disease -0.30 + urgency -0.10 - 1.
	assert.InDelta(t, -0.65, entry.TotalAdj, 1e-9)
}
