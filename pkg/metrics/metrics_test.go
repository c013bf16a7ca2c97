package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTP("GET", "/x", "200", 0.1)
		m.ObserveQuery("select", 0.1, errors.New("x"))
		m.SetPoolStats(1, 1, 0, 0)
		m.AddBookingsCreated(2)
		m.IncBookingFailure("conflict")
		m.IncBookingsCancelled()
		m.AddSlotsGenerated(14)
		m.AddSlotsPurged(3)
		m.AddBookingsReconciled(1)
	})
}

func TestMetrics_DomainCounters(t *testing.T) {
	m := NewWithRegisterer("any-venue", prometheus.NewRegistry())

	m.AddBookingsCreated(2)
	m.AddBookingsCreated(0)
	m.IncBookingFailure("conflict")
	m.IncBookingFailure("conflict")
	m.AddSlotsGenerated(14)
	m.ObserveQuery("insert", 0.01, errors.New("boom"))

	assert.Equal(t, float64(2), testutil.ToFloat64(m.BookingsCreated.WithLabelValues("any-venue")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.BookingFailures.WithLabelValues("any-venue", "conflict")))
	assert.Equal(t, float64(14), testutil.ToFloat64(m.SlotsGenerated.WithLabelValues("any-venue")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("any-venue", "insert")))
}
