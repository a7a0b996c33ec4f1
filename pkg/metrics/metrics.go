package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics prometheus collectors shared by the HTTP, DB and domain layers
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBQueryErrorsTotal *prometheus.CounterVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec

	ReservationsTotal  *prometheus.CounterVec
	NotificationsTotal *prometheus.CounterVec
	JobRunsTotal       *prometheus.CounterVec

	serviceName string
}

// New registers collectors in the default prometheus registry
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers collectors in reg; tests pass a fresh prometheus.NewRegistry()
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),
		DBQueryErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Database query errors",
		}, []string{"service", "operation"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Open database connections",
		}, []string{"service"}),
		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Database connections in use",
		}, []string{"service"}),
		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Idle database connections",
		}, []string{"service"}),
		ReservationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reservations_total",
			Help: "Reservation creation attempts by outcome",
		}, []string{"service", "outcome", "reason"}),
		NotificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Notification deliveries by kind and result",
		}, []string{"service", "kind", "result"}),
		JobRunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduled_job_runs_total",
			Help: "Scheduled job runs by result",
		}, []string{"service", "job", "result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrorsTotal,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.ReservationsTotal,
		m.NotificationsTotal,
		m.JobRunsTotal,
	)

	return m
}

// ServiceName returns the service label value
func (m *Metrics) ServiceName() string {
	return m.serviceName
}

// ObserveReservation counts a reservation creation attempt
func (m *Metrics) ObserveReservation(outcome, reason string) {
	m.ReservationsTotal.WithLabelValues(m.serviceName, outcome, reason).Inc()
}

// ObserveNotification counts a notification delivery
func (m *Metrics) ObserveNotification(kind, result string) {
	m.NotificationsTotal.WithLabelValues(m.serviceName, kind, result).Inc()
}

// ObserveJobRun counts a scheduled job execution
func (m *Metrics) ObserveJobRun(job, result string) {
	m.JobRunsTotal.WithLabelValues(m.serviceName, job, result).Inc()
}
