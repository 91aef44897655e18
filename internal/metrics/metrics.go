// Package metrics exposes Prometheus collectors for term lookups and searches.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels
const (
	OutcomeHit   = "hit"
	OutcomeMiss  = "miss"
	OutcomeError = "error"
)

// Operation labels
const (
	OpLookup = "lookup"
	OpSearch = "search"
)

// Recorder collects request outcomes and store latency
type Recorder struct {
	requests     *prometheus.CounterVec
	storeLatency *prometheus.HistogramVec
	results      prometheus.Histogram
}

// New creates a recorder and registers its collectors with reg.
// A nil registerer leaves the collectors unregistered.
func New(namespace string, reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "term_requests_total",
				Help:      "Term lookups and searches by outcome",
			},
			[]string{"operation", "outcome"},
		),
		storeLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "store_latency_seconds",
				Help:      "Latency of the single store call made per request",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		results: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_results",
				Help:      "Number of records returned by a search",
				Buckets:   []float64{0, 1, 5, 10, 50, 100, 500, 1000},
			},
		),
	}

	if reg != nil {
		reg.MustRegister(r.requests, r.storeLatency, r.results)
	}
	return r
}

// ObserveLookup records a TermLookup outcome
func (r *Recorder) ObserveLookup(outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(OpLookup, outcome).Inc()
	r.storeLatency.WithLabelValues(OpLookup).Observe(elapsed.Seconds())
}

// ObserveSearch records a TermSearch outcome and its result size
func (r *Recorder) ObserveSearch(outcome string, results int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(OpSearch, outcome).Inc()
	r.storeLatency.WithLabelValues(OpSearch).Observe(elapsed.Seconds())
	if outcome != OutcomeError {
		r.results.Observe(float64(results))
	}
}
