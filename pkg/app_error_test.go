package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		if e.Error() != "INVALID_REQUEST: Invalid request" {
			t.Fatalf("unexpected message %q", e.Error())
		}
		body := e.ToHTTPError()
		if body.Code != "INVALID_REQUEST" || body.Message != "Invalid request" || body.Details != nil {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("wrapped", func(t *testing.T) {
		cause := errors.New("db")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to be unwrapped")
		}
	})

	t.Run("details do not mutate original", func(t *testing.T) {
		base := NewDomainErrorSimple("VALIDATION_ERROR", "validation failed", http.StatusUnprocessableEntity)
		withDetails := base.WithDetails(map[string]string{"qty": "is required"})
		if base.Details != nil {
			t.Fatalf("expected base without details")
		}
		if withDetails.ToHTTPError().Details == nil {
			t.Fatalf("expected details in body")
		}
	})
}
