// Package events delivers quote analytics events to logs and metrics.
package events

import (
	"context"

	"cpq_quote/internal/domain/entities"
	"cpq_quote/internal/usecase/interfaces"
	"cpq_quote/pkg/logger"
	"cpq_quote/pkg/metrics"
)

// LogSink writes every event as a structured log line.
type LogSink struct {
	log *logger.Logger
}

var _ interfaces.IEventSink = (*LogSink)(nil)

func NewLogSink(log *logger.Logger) *LogSink {
	if log == nil {
		log = logger.Nop()
	}
	return &LogSink{log: log}
}

func (s *LogSink) Push(ctx context.Context, e entities.QuoteEvent) {
	fields := map[string]any{"event": e.Name}
	if e.SessionID != "" {
		fields["session_id"] = e.SessionID
	}
	if e.LeadID != "" {
		fields["lead_id"] = e.LeadID
	}
	if e.Message != "" {
		fields["message"] = e.Message
	}
	s.log.Info(s.log.WithFields(ctx, fields), "[quote][events] event")
}

// MetricsSink counts events by name.
type MetricsSink struct {
	metrics *metrics.QuoteMetrics
}

var _ interfaces.IEventSink = (*MetricsSink)(nil)

func NewMetricsSink(m *metrics.QuoteMetrics) *MetricsSink {
	return &MetricsSink{metrics: m}
}

func (s *MetricsSink) Push(_ context.Context, e entities.QuoteEvent) {
	s.metrics.IncEvent(e.Name)
}

// MultiSink fans an event out to every sink in order.
type MultiSink []interfaces.IEventSink

var _ interfaces.IEventSink = MultiSink(nil)

func (m MultiSink) Push(ctx context.Context, e entities.QuoteEvent) {
	for _, s := range m {
		if s != nil {
			s.Push(ctx, e)
		}
	}
}
