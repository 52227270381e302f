// Package weather fetches forward forecasts from OpenWeatherMap and condenses
// the 3-hourly feed into the daily series the advisory engine consumes.
package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/jsultonov/agrodale/internal/config"
	"github.com/jsultonov/agrodale/internal/domain/models"
	"github.com/jsultonov/agrodale/internal/observability"
)

// forecastSamples is how many 3-hour samples to request: 40 covers 5 days,
// which is also the window the aggregate means are computed over.
const forecastSamples = 40

// maxForecastDays caps the condensed daily series.
const maxForecastDays = 7

const timestampLayout = "2006-01-02 15:04:05"

// ErrNoForecast reports an empty or unusable supplier response.
var ErrNoForecast = errors.New("no forecast data available")

// Supplier is the forecast operation the engine depends on.
type Supplier interface {
	Forecast(ctx context.Context, region string) (models.ForecastSeries, error)
}

// APIClient is a resty-backed OpenWeatherMap Supplier.
type APIClient struct {
	httpClient *resty.Client
	apiKey     string
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewClient builds a weather client from configuration.
func NewClient(cfg config.WeatherConfig, metrics *observability.Metrics, logger *zap.Logger) *APIClient {
	if logger == nil {
		logger = zap.NewNop()
	}

	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &APIClient{
		httpClient: restyClient,
		apiKey:     cfg.APIKey,
		metrics:    metrics,
		logger:     logger,
	}
}

// forecastResponse mirrors the subset of the OpenWeatherMap 5-day forecast
// payload the engine uses.
type forecastResponse struct {
	List []struct {
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Icon string `json:"icon"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Pop   float64 `json:"pop"` // precipitation probability, 0-1
		DtTxt string  `json:"dt_txt"`
	} `json:"list"`
}

type apiError struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}

// Forecast returns the condensed daily series for a region: one sample per
// day (preferring the around-noon reading), plus means over the raw samples.
func (c *APIClient) Forecast(ctx context.Context, region string) (models.ForecastSeries, error) {
	city, err := cityQuery(region)
	if err != nil {
		return models.ForecastSeries{}, err
	}

	result := new(forecastResponse)
	errPayload := new(apiError)

	start := time.Now()
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":     city + ",UZ",
			"appid": c.apiKey,
			"units": "metric",
			"cnt":   fmt.Sprintf("%d", forecastSamples),
		}).
		SetResult(result).
		SetError(errPayload).
		Get("/data/2.5/forecast")
	if c.metrics != nil {
		c.metrics.ForecastDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		c.countOutcome("error")
		return models.ForecastSeries{}, fmt.Errorf("fetch forecast: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		c.countOutcome("error")
		return models.ForecastSeries{}, fmt.Errorf("weather api error: status=%d, message=%s", resp.StatusCode(), errPayload.Message)
	}

	series, err := condense(region, result)
	if err != nil {
		c.countOutcome("error")
		return models.ForecastSeries{}, err
	}

	c.countOutcome("success")
	c.logger.Debug("forecast fetched",
		zap.String("region", region),
		zap.Int("days", len(series.Days)),
		zap.Float64("avg_temp", series.AvgTemp))
	return series, nil
}

func (c *APIClient) countOutcome(outcome string) {
	if c.metrics != nil {
		c.metrics.ForecastRequests.WithLabelValues(outcome).Inc()
	}
}

// condense groups the 3-hourly samples by calendar day, picks the around-noon
// sample for each day (or the day's first when noon is absent), and computes
// the aggregate means over the raw feed.
func condense(region string, raw *forecastResponse) (models.ForecastSeries, error) {
	if len(raw.List) == 0 {
		return models.ForecastSeries{}, ErrNoForecast
	}

	type sample struct {
		at       time.Time
		temp     float64
		rainProb float64
		humidity float64
		wind     float64
		icon     string
	}

	samples := make([]sample, 0, len(raw.List))
	var tempSum, rainSum float64

	for _, entry := range raw.List {
		at, err := time.Parse(timestampLayout, entry.DtTxt)
		if err != nil {
			return models.ForecastSeries{}, fmt.Errorf("parse forecast timestamp %q: %w", entry.DtTxt, err)
		}

		icon := ""
		if len(entry.Weather) > 0 {
			icon = entry.Weather[0].Icon
		}

		smp := sample{
			at:       at,
			temp:     entry.Main.Temp,
			rainProb: entry.Pop * 100,
			humidity: entry.Main.Humidity,
			wind:     entry.Wind.Speed,
			icon:     icon,
		}
		samples = append(samples, smp)
		tempSum += smp.temp
		rainSum += smp.rainProb
	}

	firstDay := samples[0].at.Truncate(24 * time.Hour)
	byDay := make(map[time.Time][]sample)
	for _, smp := range samples {
		day := smp.at.Truncate(24 * time.Hour)
		byDay[day] = append(byDay[day], smp)
	}

	series := models.ForecastSeries{
		Region:      region,
		AvgTemp:     tempSum / float64(len(samples)),
		AvgRainProb: rainSum / float64(len(samples)),
	}

	for i := 0; i < maxForecastDays; i++ {
		daySamples, ok := byDay[firstDay.AddDate(0, 0, i)]
		if !ok {
			continue
		}

		chosen := daySamples[0]
		for _, smp := range daySamples {
			if h := smp.at.Hour(); h >= 11 && h <= 14 {
				chosen = smp
				break
			}
		}

		series.Days = append(series.Days, models.ForecastDay{
			Date:        chosen.at,
			Temperature: chosen.temp,
			RainProb:    chosen.rainProb,
			Humidity:    chosen.humidity,
			WindSpeed:   chosen.wind,
			Icon:        chosen.icon,
		})
	}

	return series, nil
}
