package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// QuoteMetrics records form analytics events and quote submission latency.
type QuoteMetrics struct {
	events     *prometheus.CounterVec
	submission *prometheus.HistogramVec
}

// NewQuoteMetrics registers the quote metrics on the provided registerer.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		return &QuoteMetrics{}
	}
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cpq_events_total",
		Help: "Quote form analytics events by name.",
	}, []string{"event"})
	submission := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cpq_submission_duration_seconds",
		Help:    "Duration of quote submissions to the PDF backend.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	reg.MustRegister(events, submission)
	return &QuoteMetrics{events: events, submission: submission}
}

// IncEvent increments the counter for the named event.
func (m *QuoteMetrics) IncEvent(event string) {
	if m == nil || m.events == nil {
		return
	}
	m.events.WithLabelValues(normalizeLabel(event)).Inc()
}

// ObserveSubmission records how long a submission took and how it ended.
func (m *QuoteMetrics) ObserveSubmission(outcome string, duration time.Duration) {
	if m == nil || m.submission == nil {
		return
	}
	m.submission.WithLabelValues(normalizeLabel(outcome)).Observe(duration.Seconds())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
