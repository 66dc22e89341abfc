package interfaces

import (
	"context"

	"cpq_quote/internal/domain/entities"
)

// ISubmissionClient sends a quote request to the backend that renders the PDF
// and registers the lead.
//
// Every failure is folded into the returned SubmissionResult; ctx cancellation
// and deadline are reported as a transient network failure.
type ISubmissionClient interface {
	Submit(ctx context.Context, payload entities.SubmissionPayload) entities.SubmissionResult
}
