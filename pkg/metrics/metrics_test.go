package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveGeneration(t *testing.T) {
	m := NewMetrics("notes_test")

	m.ObserveGeneration(OutcomeSuccess, 2*time.Second)
	m.ObserveGeneration(OutcomeSuccess, time.Second)
	m.ObserveGeneration("GenerationError", time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.GenerationTotal.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationTotal.WithLabelValues("GenerationError")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := NewMetrics("notes_test")
	m.NotesListed.Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "notes_test_listing_requests_total 1")
}

func TestInstancesDoNotCollide(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics("dup")
		NewMetrics("dup")
	})
}
