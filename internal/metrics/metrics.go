// Package metrics holds the Prometheus collectors exported on /metrics.
// All recording methods are safe to call on a nil *Metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vaccination"

type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	AppointmentsBooked   prometheus.Counter
	AppointmentDecisions *prometheus.CounterVec
	VaccinationsRecorded prometheus.Counter
	LoginFailures        prometheus.Counter
	LoginLockouts        prometheus.Counter
}

// New registers every collector on a private registry, so tests can build
// several instances without clashing on the global one.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		AppointmentsBooked: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_booked_total",
			Help:      "Total number of appointments booked by citizens",
		}),
		AppointmentDecisions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointment_decisions_total",
			Help:      "Total number of admin status decisions, by resulting status",
		}, []string{"status"}),
		VaccinationsRecorded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vaccinations_recorded_total",
			Help:      "Total number of administered doses recorded",
		}),
		LoginFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_failures_total",
			Help:      "Total number of failed login attempts",
		}),
		LoginLockouts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_lockouts_total",
			Help:      "Total number of login attempts refused by the lockout",
		}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) IncAppointmentsBooked() {
	if m == nil {
		return
	}
	m.AppointmentsBooked.Inc()
}

func (m *Metrics) IncAppointmentDecision(status string) {
	if m == nil {
		return
	}
	m.AppointmentDecisions.WithLabelValues(status).Inc()
}

func (m *Metrics) IncVaccinationsRecorded() {
	if m == nil {
		return
	}
	m.VaccinationsRecorded.Inc()
}

func (m *Metrics) IncLoginFailures() {
	if m == nil {
		return
	}
	m.LoginFailures.Inc()
}

func (m *Metrics) IncLoginLockouts() {
	if m == nil {
		return
	}
	m.LoginLockouts.Inc()
}
