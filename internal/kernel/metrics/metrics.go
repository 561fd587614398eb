package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the kernel service's Prometheus collectors. All methods are
// safe to call on a nil receiver so services can run without metrics.
type Metrics struct {
	RoutesTotal          *prometheus.CounterVec
	PrivacyDecisions     *prometheus.CounterVec
	SuggestionsEmitted   *prometheus.CounterVec
	AuditSinkFailures    prometheus.Counter
	ClassifierConfidence prometheus.Histogram
	RouteDuration        prometheus.Histogram
}

// New registers the collectors with the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the collectors with reg. Tests pass a fresh
// prometheus.NewRegistry() to avoid duplicate registration panics.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RoutesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "actionkernel_routes_total",
			Help: "Voice routing attempts by outcome and deny reason",
		}, []string{"outcome", "reason"}),
		PrivacyDecisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "actionkernel_privacy_decisions_total",
			Help: "Privacy kernel evaluations by decision and reason",
		}, []string{"decision", "reason"}),
		SuggestionsEmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "actionkernel_suggestions_emitted_total",
			Help: "Advisory interaction suggestions emitted by category",
		}, []string{"category"}),
		AuditSinkFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "actionkernel_audit_sink_failures_total",
			Help: "Audit events the sink refused; each one aborted its call",
		}),
		ClassifierConfidence: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "actionkernel_classifier_confidence",
			Help:    "Combined confidence of classified voice commands",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		}),
		RouteDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "actionkernel_route_duration_seconds",
			Help:    "Time to classify, route and audit one transcript",
			Buckets: prometheus.ExponentialBuckets(0.00005, 2, 12),
		}),
	}
}

func (m *Metrics) ObserveRoute(accepted bool, reason string, seconds float64) {
	if m == nil {
		return
	}
	outcome := "denied"
	if accepted {
		outcome = "accepted"
	}
	m.RoutesTotal.WithLabelValues(outcome, reason).Inc()
	m.RouteDuration.Observe(seconds)
}

func (m *Metrics) ObservePrivacyDecision(decision, reason string) {
	if m == nil {
		return
	}
	m.PrivacyDecisions.WithLabelValues(decision, reason).Inc()
}

func (m *Metrics) ObserveConfidence(confidence float64) {
	if m == nil {
		return
	}
	m.ClassifierConfidence.Observe(confidence)
}

func (m *Metrics) AddSuggestions(category string, n int) {
	if m == nil {
		return
	}
	m.SuggestionsEmitted.WithLabelValues(category).Add(float64(n))
}

func (m *Metrics) IncAuditSinkFailures() {
	if m == nil {
		return
	}
	m.AuditSinkFailures.Inc()
}
