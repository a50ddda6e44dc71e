package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeGenerated = "generated"
	OutcomeCached    = "cached"
	OutcomeFallback  = "fallback"

	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
)

// Recorder holds the application metrics. A nil *Recorder is valid and
// records nothing.
type Recorder struct {
	generations        *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
	projections        *prometheus.CounterVec
	projectedROI       prometheus.Gauge
	mailsSent          *prometheus.CounterVec
}

// New registers the metrics with reg. Use prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		generations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smokyhost_generations_total",
				Help: "Text generation requests by feature and outcome",
			},
			[]string{"feature", "outcome"},
		),
		generationDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "smokyhost_generation_duration_seconds",
				Help:    "Latency of calls to the text generation provider",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"feature"},
		),
		projections: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smokyhost_projections_total",
				Help: "Revenue projections by outcome",
			},
			[]string{"outcome"},
		),
		projectedROI: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "smokyhost_projected_roi_percent",
				Help: "Cash-on-cash return of the last successful projection",
			},
		),
		mailsSent: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smokyhost_mails_total",
				Help: "Outgoing pitch emails by outcome",
			},
			[]string{"outcome"},
		),
	}
}

func (r *Recorder) RecordGeneration(feature, outcome string) {
	if r == nil {
		return
	}
	r.generations.WithLabelValues(feature, outcome).Inc()
}

func (r *Recorder) RecordGenerationLatency(feature string, seconds float64) {
	if r == nil {
		return
	}
	r.generationDuration.WithLabelValues(feature).Observe(seconds)
}

func (r *Recorder) RecordProjection(outcome string, roi float64) {
	if r == nil {
		return
	}
	r.projections.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		r.projectedROI.Set(roi)
	}
}

func (r *Recorder) RecordMail(outcome string) {
	if r == nil {
		return
	}
	r.mailsSent.WithLabelValues(outcome).Inc()
}
