package request

import (
	"encoding/json"
	"errors"
	"testing"

	"cpq_quote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestTariffQueryRequest_ResolvePricingInput(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		in, err := TariffQueryRequest{UnitPrice: " 12.50 ", Qty: 10, DeliveryDays: 3}.ResolvePricingInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !in.UnitPrice.Equal(decimal.RequireFromString("12.5")) || in.Qty != 10 || in.DeliveryDays != 3 {
			t.Fatalf("unexpected input: %+v", in)
		}
	})

	t.Run("too many integer digits", func(t *testing.T) {
		for _, price := range []string{"1e10000000", "1234567890123"} {
			if _, err := (TariffQueryRequest{UnitPrice: price, Qty: 1}).ResolvePricingInput(); !errors.Is(err, ErrInvalidUnitPrice) {
				t.Fatalf("expected ErrInvalidUnitPrice for %s, got %v", price, err)
			}
		}
	})

	t.Run("not a number", func(t *testing.T) {
		if _, err := (TariffQueryRequest{UnitPrice: "abc"}).ResolvePricingInput(); !errors.Is(err, ErrInvalidUnitPrice) {
			t.Fatalf("expected ErrInvalidUnitPrice, got %v", err)
		}
	})
}

func TestOverridesRequest_ToOverrideSet(t *testing.T) {
	t.Run("nulls clear entries", func(t *testing.T) {
		var req OverridesRequest
		raw := `{"customPrices":{"urgent":"1999.99","standard":null},"customDays":{"strategic":20}}`
		if err := json.Unmarshal([]byte(raw), &req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		set, err := req.ToOverrideSet()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p, ok := set.Price(entities.TariffUrgent); !ok || !p.Equal(decimal.RequireFromString("1999.99")) {
			t.Fatalf("unexpected urgent price: %v", set.CustomPrices)
		}
		if _, ok := set.Price(entities.TariffStandard); ok {
			t.Fatalf("null price must clear the variant")
		}
		if d, ok := set.Days(entities.TariffStrategic); !ok || d != 20 {
			t.Fatalf("unexpected strategic days: %v", set.CustomDays)
		}
	})

	t.Run("unknown variant", func(t *testing.T) {
		days := 1
		_, err := OverridesRequest{CustomDays: map[string]*int{"express": &days}}.ToOverrideSet()
		if !errors.Is(err, ErrUnknownTariffVariant) {
			t.Fatalf("expected ErrUnknownTariffVariant, got %v", err)
		}
	})

	t.Run("out of range values", func(t *testing.T) {
		huge := decimal.RequireFromString("1e10000000")
		negative := decimal.NewFromInt(-1)
		days := entities.MaxDeliveryDays + 1
		for _, req := range []OverridesRequest{
			{CustomPrices: map[string]*decimal.Decimal{"urgent": &huge}},
			{CustomPrices: map[string]*decimal.Decimal{"urgent": &negative}},
			{CustomDays: map[string]*int{"strategic": &days}},
		} {
			if _, err := req.ToOverrideSet(); !errors.Is(err, ErrInvalidOverrideValue) {
				t.Fatalf("expected ErrInvalidOverrideValue for %+v, got %v", req, err)
			}
		}
	})
}
