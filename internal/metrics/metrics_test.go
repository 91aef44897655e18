package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New("cloud_dictionary", reg)

	r.ObserveLookup(OutcomeHit, 5*time.Millisecond)
	r.ObserveLookup(OutcomeMiss, time.Millisecond)
	r.ObserveLookup(OutcomeMiss, time.Millisecond)
	r.ObserveSearch(OutcomeHit, 3, 10*time.Millisecond)
	r.ObserveSearch(OutcomeError, 0, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.requests.WithLabelValues(OpLookup, OutcomeHit)))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.requests.WithLabelValues(OpLookup, OutcomeMiss)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.requests.WithLabelValues(OpSearch, OutcomeError)))

	count, err := testutil.GatherAndCount(reg, "cloud_dictionary_term_requests_total")
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObserveLookup(OutcomeHit, time.Millisecond)
		r.ObserveSearch(OutcomeMiss, 0, time.Millisecond)
	})
}
