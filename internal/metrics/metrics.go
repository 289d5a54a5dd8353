package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline outcome labels.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// Pipeline holds the ingestion pipeline's Prometheus instruments.
type Pipeline struct {
	Outcomes *prometheus.CounterVec
	Duration prometheus.Histogram
}

// NewPipeline registers the pipeline metrics on reg. Pass
// prometheus.DefaultRegisterer in production wiring.
func NewPipeline(reg prometheus.Registerer) *Pipeline {
	factory := promauto.With(reg)
	return &Pipeline{
		Outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carbontracker",
			Subsystem: "pipeline",
			Name:      "stage_outcomes_total",
			Help:      "Pipeline stage outcomes by stage and result.",
		}, []string{"stage", "result"}),
		Duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "carbontracker",
			Subsystem: "pipeline",
			Name:      "scan_duration_seconds",
			Help:      "Wall time of a full bill scan, upload to persisted record.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// Observe is a nil-safe counter increment so the pipeline can run unmetered
// in tests and one-shot CLIs.
func (p *Pipeline) Observe(stage, result string) {
	if p == nil {
		return
	}
	p.Outcomes.WithLabelValues(stage, result).Inc()
}

// ObserveDuration is a nil-safe duration observation.
func (p *Pipeline) ObserveDuration(seconds float64) {
	if p == nil {
		return
	}
	p.Duration.Observe(seconds)
}
