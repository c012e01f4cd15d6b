package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer("gym-booking", prometheus.NewRegistry())

	m.IncConflict("booking")
	m.IncConflict("booking")
	m.IncCalendarCache("hit")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.OccupancyConflicts.WithLabelValues("gym-booking", "booking")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CalendarCache.WithLabelValues("gym-booking", "hit")))
	assert.Equal(t, "gym-booking", m.ServiceName())
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncConflict("booking")
		m.IncCalendarCache("miss")
	})
	assert.Equal(t, "", m.ServiceName())
}
