package interfaces

import (
	"context"

	"cpq_quote/internal/domain/entities"
)

// IEventSink receives analytics events. Push must not block the caller for long.
type IEventSink interface {
	Push(ctx context.Context, event entities.QuoteEvent)
}
