package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus коллекторов сервиса.
// Все методы безопасно вызывать на nil (метрики выключены).
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBQueryErrors     *prometheus.CounterVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec
	DBWaitCount       *prometheus.GaugeVec

	BookingsCreated    *prometheus.CounterVec
	BookingFailures    *prometheus.CounterVec
	BookingsCancelled  *prometheus.CounterVec
	SlotsGenerated     *prometheus.CounterVec
	SlotsPurged        *prometheus.CounterVec
	BookingsReconciled *prometheus.CounterVec

	service string
}

// New registers collectors in the default prometheus registry.
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers collectors in reg.
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		service: serviceName,

		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		DBQueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),

		DBQueryErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),

		DBOpenConnections: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established connections",
		}, []string{"service"}),

		DBInUse: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),

		DBIdle: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle connections",
		}, []string{"service"}),

		DBWaitCount: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),

		BookingsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Bookings created",
		}, []string{"service"}),

		BookingFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_failures_total",
			Help: "Per-slot booking failures by reason",
		}, []string{"service", "reason"}),

		BookingsCancelled: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_cancelled_total",
			Help: "Bookings cancelled by users",
		}, []string{"service"}),

		SlotsGenerated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "slots_generated_total",
			Help: "Booking slots materialized",
		}, []string{"service"}),

		SlotsPurged: f.NewCounterVec(prometheus.CounterOpts{
			Name: "slots_purged_total",
			Help: "Past booking slots deleted by the sweep",
		}, []string{"service"}),

		BookingsReconciled: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_reconciled_total",
			Help: "Bookings removed from expired slots",
		}, []string{"service"}),
	}
}

func (m *Metrics) ObserveHTTP(method, path, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.service, method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.service, method, path).Observe(seconds)
}

func (m *Metrics) ObserveQuery(operation string, seconds float64, err error) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(m.service, operation).Observe(seconds)
	if err != nil {
		m.DBQueryErrors.WithLabelValues(m.service, operation).Inc()
	}
}

func (m *Metrics) SetPoolStats(open, inUse, idle int, waitCount int64) {
	if m == nil {
		return
	}
	m.DBOpenConnections.WithLabelValues(m.service).Set(float64(open))
	m.DBInUse.WithLabelValues(m.service).Set(float64(inUse))
	m.DBIdle.WithLabelValues(m.service).Set(float64(idle))
	m.DBWaitCount.WithLabelValues(m.service).Set(float64(waitCount))
}

func (m *Metrics) AddBookingsCreated(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.BookingsCreated.WithLabelValues(m.service).Add(float64(n))
}

func (m *Metrics) IncBookingFailure(reason string) {
	if m == nil {
		return
	}
	m.BookingFailures.WithLabelValues(m.service, reason).Inc()
}

func (m *Metrics) IncBookingsCancelled() {
	if m == nil {
		return
	}
	m.BookingsCancelled.WithLabelValues(m.service).Inc()
}

func (m *Metrics) AddSlotsGenerated(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.SlotsGenerated.WithLabelValues(m.service).Add(float64(n))
}

func (m *Metrics) AddSlotsPurged(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.SlotsPurged.WithLabelValues(m.service).Add(float64(n))
}

func (m *Metrics) AddBookingsReconciled(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.BookingsReconciled.WithLabelValues(m.service).Add(float64(n))
}
