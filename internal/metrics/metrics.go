// Package metrics defines the Prometheus collectors exported by the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tooldir"

// Metrics groups every collector the service exports.
type Metrics struct {
	CacheEvents          *prometheus.CounterVec
	SubmissionDecisions  *prometheus.CounterVec
	NotificationsSent    *prometheus.CounterVec
	NotificationsFailed  *prometheus.CounterVec
	NotificationsDropped prometheus.Counter
	HTTPRequestDuration  *prometheus.HistogramVec
}

// New registers all collectors on reg. Pass prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CacheEvents: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_events_total",
			Help:      "Cache lookups and evictions by cache and event (hit, miss, eviction)",
		}, []string{"cache", "event"}),
		SubmissionDecisions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submission_decisions_total",
			Help:      "Committed review decisions by resulting status",
		}, []string{"status"}),
		NotificationsSent: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_sent_total",
			Help:      "Notification emails delivered by kind",
		}, []string{"kind"}),
		NotificationsFailed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_failed_total",
			Help:      "Notification emails that exhausted their retries by kind",
		}, []string{"kind"}),
		NotificationsDropped: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_dropped_total",
			Help:      "Notifications dropped because the queue was full",
		}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern, method and status",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"route", "method", "status"}),
	}
}

// CacheObserver returns a cache.Observer that reports under the given cache name.
func (m *Metrics) CacheObserver(name string) *CacheObserver {
	return &CacheObserver{
		hit:      m.CacheEvents.WithLabelValues(name, "hit"),
		miss:     m.CacheEvents.WithLabelValues(name, "miss"),
		eviction: m.CacheEvents.WithLabelValues(name, "eviction"),
	}
}

// CacheObserver counts cache events.
type CacheObserver struct {
	hit, miss, eviction prometheus.Counter
}

func (o *CacheObserver) CacheHit()      { o.hit.Inc() }
func (o *CacheObserver) CacheMiss()     { o.miss.Inc() }
func (o *CacheObserver) CacheEviction() { o.eviction.Inc() }

// IncrementDecision records a committed submission transition.
func (m *Metrics) IncrementDecision(status string) {
	m.SubmissionDecisions.WithLabelValues(status).Inc()
}

// NotificationSent records a delivered notification.
func (m *Metrics) NotificationSent(kind string) {
	m.NotificationsSent.WithLabelValues(kind).Inc()
}

// NotificationFailed records a notification that gave up retrying.
func (m *Metrics) NotificationFailed(kind string) {
	m.NotificationsFailed.WithLabelValues(kind).Inc()
}

// NotificationDropped records a notification rejected by a full queue.
func (m *Metrics) NotificationDropped() {
	m.NotificationsDropped.Inc()
}

// ObserveHTTPRequest records the latency of a served request.
// Call with time.Now() taken at the start of the request.
func (m *Metrics) ObserveHTTPRequest(route, method, status string, start time.Time) {
	m.HTTPRequestDuration.WithLabelValues(route, method, status).Observe(time.Since(start).Seconds())
}
