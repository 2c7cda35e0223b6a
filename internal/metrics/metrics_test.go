package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	reg := prometheus.NewRegistry()

	r, err := New(reg)
	require.NoError(t, err)

	r.Observe(http.MethodPost, "user/login", http.StatusOK, 10*time.Millisecond)
	r.Observe(http.MethodPost, "user/login", http.StatusOK, 20*time.Millisecond)
	r.Observe(http.MethodGet, "user/profile", 0, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.requests.WithLabelValues(http.MethodPost, "user/login", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.requests.WithLabelValues(http.MethodGet, "user/profile", StatusError)))
	assert.Equal(t, 2, testutil.CollectAndCount(r.latency))
}

func TestNewReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()

	first, err := New(reg)
	require.NoError(t, err)

	second, err := New(reg)
	require.NoError(t, err)

	second.Observe(http.MethodPost, "user/logout", http.StatusNoContent, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(first.requests.WithLabelValues(http.MethodPost, "user/logout", "204")))
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder

	assert.NotPanics(t, func() {
		r.Observe(http.MethodGet, "user/profile", http.StatusOK, time.Millisecond)
	})
}
