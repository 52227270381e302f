package advisor

import "github.com/jsultonov/agrodale/internal/domain/models"

// The weather influence on irrigation volume is a pair of fixed monotone step
// functions over temperature and precipitation probability, with no
// interpolation. The aggregate track sets the schedule's baseline multiplier
// from the series means; the per-day track re-derives a multiplier for each
// scheduled event so the plan follows each day's own forecast. All thresholds
// are strict inequalities: 30.0°C and 70% sit on the zero side.

// aggregateTempAdjustment maps the series mean temperature to a fractional
// volume adjustment.
func aggregateTempAdjustment(temp float64) float64 {
	switch {
	case temp > 30:
		return 0.20
	case temp < 15:
		return -0.10
	default:
		return 0
	}
}

// aggregateRainAdjustment maps the series mean precipitation probability to a
// fractional volume adjustment.
func aggregateRainAdjustment(prob float64) float64 {
	switch {
	case prob > 70:
		return -0.30
	case prob > 40:
		return -0.15
	default:
		return 0
	}
}

// dailyTempAdjustment is the finer-grained per-forecast-day temperature step.
func dailyTempAdjustment(temp float64) float64 {
	switch {
	case temp > 30:
		return 0.15
	case temp < 15:
		return -0.10
	default:
		return 0
	}
}

// dailyRainAdjustment is the finer-grained per-forecast-day precipitation step.
func dailyRainAdjustment(prob float64) float64 {
	switch {
	case prob > 70:
		return -0.40
	case prob > 40:
		return -0.20
	default:
		return 0
	}
}

// dayAdjustments resolves the per-day deltas for schedule index i, clamping to
// the last forecast day when the series is shorter than the schedule. With no
// forecast at all both deltas are zero and the day sample is unavailable.
func dayAdjustments(series models.ForecastSeries, i int) (tempAdj, rainAdj float64, day models.ForecastDay, ok bool) {
	day, ok = series.DayAt(i)
	if !ok {
		return 0, 0, models.ForecastDay{}, false
	}
	return dailyTempAdjustment(day.Temperature), dailyRainAdjustment(day.RainProb), day, true
}
