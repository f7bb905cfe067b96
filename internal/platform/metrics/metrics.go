package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "erp_ledger"

// Metrics holds the Prometheus collectors of the service. A nil *Metrics is valid and records nothing.
type Metrics struct {
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	journalPostings   *prometheus.CounterVec
	journalRejections *prometheus.CounterVec
	payrollRuns       *prometheus.CounterVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		journalPostings: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "journal_entries_total",
			Help:      "Committed journal entry mutations by operation.",
		}, []string{"operation"}),
		journalRejections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "journal_entries_rejected_total",
			Help:      "Journal entries rejected by validation, by operation.",
		}, []string{"operation"}),
		payrollRuns: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payroll_runs_total",
			Help:      "Payroll generation attempts by outcome.",
		}, []string{"outcome"}),
	}
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// JournalCommitted counts a committed create, replace or delete.
func (m *Metrics) JournalCommitted(operation string) {
	if m == nil {
		return
	}
	m.journalPostings.WithLabelValues(operation).Inc()
}

// JournalRejected counts an entry refused by validation.
func (m *Metrics) JournalRejected(operation string) {
	if m == nil {
		return
	}
	m.journalRejections.WithLabelValues(operation).Inc()
}

// PayrollRun counts a generation attempt; outcome is "created", "duplicate" or "failed".
func (m *Metrics) PayrollRun(outcome string) {
	if m == nil {
		return
	}
	m.payrollRuns.WithLabelValues(outcome).Inc()
}
