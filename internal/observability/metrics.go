package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments for the advisory service.
type Metrics struct {
	PlansComputed       prometheus.Counter
	PlanErrors          prometheus.Counter
	IrrigationsRecorded prometheus.Counter
	FieldsTracked       prometheus.Gauge

	// Decay simulation metrics.
	DecayTicks   prometheus.Counter
	DecaySkipped prometheus.Counter

	// Weather supplier metrics.
	ForecastRequests *prometheus.CounterVec // labels: outcome={success,error}
	ForecastDuration prometheus.Histogram
}

func newMetrics() *Metrics {
	return &Metrics{
		PlansComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "agrodale",
			Name:      "plans_computed_total",
			Help:      "Total irrigation plans computed successfully.",
		}),
		PlanErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "agrodale",
			Name:      "plan_errors_total",
			Help:      "Total evaluation passes aborted by an upstream error.",
		}),
		IrrigationsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "agrodale",
			Name:      "irrigations_recorded_total",
			Help:      "Total irrigation events recorded against fields.",
		}),
		FieldsTracked: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "agrodale",
			Name:      "fields_tracked",
			Help:      "Number of fields currently held in the session repository.",
		}),
		DecayTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "agrodale",
			Name:      "decay_ticks_total",
			Help:      "Total soil-moisture decay passes applied.",
		}),
		DecaySkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "agrodale",
			Name:      "decay_ticks_skipped_total",
			Help:      "Decay passes skipped by the minimum-interval debounce.",
		}),
		ForecastRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agrodale",
			Name:      "forecast_requests_total",
			Help:      "Weather supplier requests by outcome.",
		}, []string{"outcome"}),
		ForecastDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "agrodale",
			Name:      "forecast_request_duration_seconds",
			Help:      "Weather supplier request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// NewMetrics creates and registers all instruments with the default registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.PlansComputed,
		m.PlanErrors,
		m.IrrigationsRecorded,
		m.FieldsTracked,
		m.DecayTicks,
		m.DecaySkipped,
		m.ForecastRequests,
		m.ForecastDuration,
	)
	return m
}

// NewMetricsForTesting creates unregistered instruments so parallel tests do
// not trip the default registry's duplicate check.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
