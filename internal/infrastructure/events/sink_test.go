package events

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"cpq_quote/internal/domain/entities"
	mock_interfaces "cpq_quote/internal/usecase/interfaces/mocks"
	"cpq_quote/pkg/logger"
	"cpq_quote/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(logger.New(logger.Options{ServiceName: "cpq", Level: zerolog.InfoLevel, Output: &buf}))

	sink.Push(context.Background(), entities.QuoteEvent{Name: entities.EventAPIOK, SessionID: "s-1", LeadID: "lead-1"})

	out := buf.String()
	for _, want := range []string{`"event":"cpq_api_ok"`, `"session_id":"s-1"`, `"lead_id":"lead-1"`, "[quote][events] event"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %s", want, out)
		}
	}
	if strings.Contains(out, `"message"`) {
		t.Fatalf("empty message must not be logged: %s", out)
	}
}

func TestMetricsSink(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink := NewMetricsSink(metrics.NewQuoteMetrics(reg))

	sink.Push(context.Background(), entities.QuoteEvent{Name: entities.EventFormSubmit})
	sink.Push(context.Background(), entities.QuoteEvent{Name: entities.EventFormSubmit})

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	var total float64
	for _, mf := range families {
		if mf.GetName() == "cpq_events_total" {
			for _, m := range mf.GetMetric() {
				total += m.GetCounter().GetValue()
			}
		}
	}
	if total != 2 {
		t.Fatalf("expected 2 events counted, got %v", total)
	}

	NewMetricsSink(nil).Push(context.Background(), entities.QuoteEvent{Name: "x"})
}

func TestMultiSink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	first := mock_interfaces.NewMockIEventSink(ctrl)
	second := mock_interfaces.NewMockIEventSink(ctrl)

	e := entities.QuoteEvent{Name: entities.EventPDFLinkClick, SessionID: "s-2"}
	gomock.InOrder(
		first.EXPECT().Push(gomock.Any(), e),
		second.EXPECT().Push(gomock.Any(), e),
	)

	MultiSink{first, nil, second}.Push(context.Background(), e)
}
