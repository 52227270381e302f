package models

import "time"

// ForecastDay is one daily sample of the forward forecast.
type ForecastDay struct {
	Date        time.Time `json:"date"`
	Temperature float64   `json:"temperature"`      // °C
	RainProb    float64   `json:"rain_probability"` // 0-100 %
	Humidity    float64   `json:"humidity,omitempty"`
	WindSpeed   float64   `json:"wind_speed,omitempty"`
	Icon        string    `json:"icon,omitempty"`
}

// ForecastSeries is the weather supplier's output for one region: an ordered
// run of daily samples plus precomputed aggregate means over the series. It is
// read-only for the duration of one evaluation pass.
type ForecastSeries struct {
	Region      string        `json:"region"`
	Days        []ForecastDay `json:"days"`
	AvgTemp     float64       `json:"avg_temp"`
	AvgRainProb float64       `json:"avg_rain_probability"`
}

// DayAt returns the sample for index i, clamping to the last available day
// when the series is shorter than requested. ok is false for an empty series.
func (s ForecastSeries) DayAt(i int) (day ForecastDay, ok bool) {
	if len(s.Days) == 0 {
		return ForecastDay{}, false
	}
	if i >= len(s.Days) {
		i = len(s.Days) - 1
	}
	return s.Days[i], true
}
