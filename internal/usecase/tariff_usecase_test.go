package usecase

import (
	"context"
	"testing"
	"time"

	"cpq_quote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestTariffUseCase_Quote(t *testing.T) {
	uc := NewTariffUseCase()
	uc.now = func() time.Time { return time.Date(2025, time.October, 17, 9, 0, 0, 0, time.UTC) }

	t.Run("valid input", func(t *testing.T) {
		q := uc.Quote(context.Background(), entities.PricingInput{UnitPrice: decimal.NewFromInt(10), Qty: 100, DeliveryDays: 10}, entities.NewOverrideSet())
		if !q.UnitPrice.IsValid {
			t.Fatalf("expected valid unit price: %+v", q.UnitPrice)
		}
		if !q.Breakdown.Final.Urgent.Equal(decimal.NewFromInt(2000)) {
			t.Fatalf("unexpected urgent price %s", q.Breakdown.Final.Urgent)
		}
		if q.Breakdown.Variants[0].DeliveryDate.FormattedDate != "31 октября 2025" {
			t.Fatalf("unexpected standard date %s", q.Breakdown.Variants[0].DeliveryDate.FormattedDate)
		}
	})

	t.Run("invalid unit price still prices to zero", func(t *testing.T) {
		q := uc.Quote(context.Background(), entities.PricingInput{UnitPrice: decimal.Zero, Qty: 100, DeliveryDays: 10}, entities.NewOverrideSet())
		if q.UnitPrice.IsValid || q.UnitPrice.Error != "must be ≥ 0.01" {
			t.Fatalf("unexpected validation: %+v", q.UnitPrice)
		}
		if !q.Breakdown.Final.Standard.IsZero() {
			t.Fatalf("expected zero price, got %s", q.Breakdown.Final.Standard)
		}
	})
}
