// Package metrics exposes Prometheus instrumentation for the HTTP API and account operations.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"
	"time"

	domainerrors "vitae/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vitae"

// Account operations counted by ObserveAuth.
const (
	OperationSignup       = "signup"
	OperationLogin        = "login"
	OperationAuthenticate = "authenticate"
)

// OutcomeSuccess labels operations that returned no error.
const OutcomeSuccess = "success"

// Metrics owns a private registry so that independent instances never collide.
// A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight        prometheus.Gauge
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	authOutcomesTotal   *prometheus.CounterVec
}

// New creates the collectors and registers them with Go runtime and process metrics.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_in_flight_requests",
			Help:      "In-flight HTTP requests.",
		}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		authOutcomesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_outcomes_total",
			Help:      "Signup, login and token authentication attempts by outcome.",
		}, []string{"operation", "outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpInFlight,
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.authOutcomesTotal,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveDB exports the connection pool statistics of db, labelled db_name=name.
func (m *Metrics) ObserveDB(db *sql.DB, name string) error {
	if m == nil || db == nil {
		return nil
	}

	return errors.Wrap(m.registry.Register(collectors.NewDBStatsCollector(db, name)), "failed to register database pool collector")
}

// StartRequest marks a request as in flight. The returned func records its completion.
// route must be the route template, not the raw path, to keep label cardinality bounded.
func (m *Metrics) StartRequest() func(method, route string, status int) {
	if m == nil {
		return func(string, string, int) {}
	}

	m.httpInFlight.Inc()
	start := time.Now()

	return func(method, route string, status int) {
		m.httpInFlight.Dec()

		code := strconv.Itoa(status)
		m.httpRequestsTotal.WithLabelValues(method, route, code).Inc()
		m.httpRequestDuration.WithLabelValues(method, route, code).Observe(time.Since(start).Seconds())
	}
}

// ObserveAuth counts one attempt of operation with the outcome derived from err.
func (m *Metrics) ObserveAuth(operation string, err error) {
	if m == nil {
		return
	}

	m.authOutcomesTotal.WithLabelValues(operation, Outcome(err)).Inc()
}

// Outcome labels err by its business error code, e.g. "invalid_credentials".
func Outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return strings.ToLower(appErr.ErrorCode())
	}

	return "error"
}
