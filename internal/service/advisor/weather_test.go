package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsultonov/agrodale/internal/domain/models"
)

func TestAggregateTempAdjustment(t *testing.T) {
	tests := []struct {
		name string
		temp float64
		want float64
	}{
		{"hot weather increases water", 35, 0.20},
		{"boundary 30.0 is not hot", 30.0, 0},
		{"just above boundary is hot", 30.01, 0.20},
		{"mild weather is neutral", 25, 0},
		{"boundary 15.0 is not cool", 15.0, 0},
		{"cool weather decreases water", 10, -0.10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, aggregateTempAdjustment(tt.temp))
		})
	}
}

func TestAggregateRainAdjustment(t *testing.T) {
	tests := []struct {
		name string
		prob float64
		want float64
	}{
		{"high rain probability", 80, -0.30},
		{"boundary 70.0 stays medium", 70.0, -0.15},
		{"just above 70 is high", 70.01, -0.30},
		{"medium rain probability", 50, -0.15},
		{"boundary 40.0 is neutral", 40.0, 0},
		{"dry forecast", 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, aggregateRainAdjustment(tt.prob))
		})
	}
}

func TestDailyAdjustments(t *testing.T) {
	assert.Equal(t, 0.15, dailyTempAdjustment(31))
	assert.Equal(t, 0.0, dailyTempAdjustment(30))
	assert.Equal(t, -0.10, dailyTempAdjustment(14))

	assert.Equal(t, -0.40, dailyRainAdjustment(71))
	assert.Equal(t, -0.20, dailyRainAdjustment(70))
	assert.Equal(t, -0.20, dailyRainAdjustment(41))
	assert.Equal(t, 0.0, dailyRainAdjustment(40))
}

func TestDayAdjustments_ClampsToLastForecastDay(t *testing.T) {
	series := models.ForecastSeries{
		Days: []models.ForecastDay{
			{Temperature: 20, RainProb: 10},
			{Temperature: 32, RainProb: 80},
		},
	}

	tempAdj, rainAdj, day, ok := dayAdjustments(series, 4)
	assert.True(t, ok)
	assert.Equal(t, 32.0, day.Temperature)
	assert.Equal(t, 0.15, tempAdj)
	assert.Equal(t, -0.40, rainAdj)
}

func TestDayAdjustments_EmptySeries(t *testing.T) {
	tempAdj, rainAdj, _, ok := dayAdjustments(models.ForecastSeries{}, 0)
	assert.False(t, ok)
	assert.Zero(t, tempAdj)
	assert.Zero(t, rainAdj)
}
