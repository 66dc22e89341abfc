package entities

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestOverrideSet_UnmarshalDropsNullsAndUnknownVariants(t *testing.T) {
	raw := `{"customPrices":{"standard":150,"urgent":null,"express":10},"customDays":{"urgent":3,"strategic":null}}`

	var o OverrideSet
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(o.CustomPrices) != 1 || !o.CustomPrices[TariffStandard].Equal(decimal.NewFromInt(150)) {
		t.Fatalf("unexpected prices: %v", o.CustomPrices)
	}
	if len(o.CustomDays) != 1 || o.CustomDays[TariffUrgent] != 3 {
		t.Fatalf("unexpected days: %v", o.CustomDays)
	}
}

func TestOverrideSet_UnmarshalDropsOutOfRangeValues(t *testing.T) {
	raw := `{"customPrices":{"standard":-5,"urgent":1e10000000,"strategic":900},"customDays":{"urgent":2000000000,"standard":-1,"strategic":30}}`

	var o OverrideSet
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(o.CustomPrices) != 1 || !o.CustomPrices[TariffStrategic].Equal(decimal.NewFromInt(900)) {
		t.Fatalf("unexpected prices: %v", o.CustomPrices)
	}
	if len(o.CustomDays) != 1 || o.CustomDays[TariffStrategic] != 30 {
		t.Fatalf("unexpected days: %v", o.CustomDays)
	}
}

func TestAmountInRange(t *testing.T) {
	cases := map[string]bool{
		"0":               true,
		"0.01":            true,
		"999999999999.99": true,
		"1000000000000":   false,
		"1e11":            true,
		"1e12":            false,
		"1e10000000":      false,
	}
	for in, want := range cases {
		if got := AmountInRange(decimal.RequireFromString(in)); got != want {
			t.Fatalf("AmountInRange(%s) = %v, want %v", in, got, want)
		}
	}
}

func TestOverrideSet_MarshalRoundTrip(t *testing.T) {
	o := NewOverrideSet()
	o.CustomPrices[TariffUrgent] = decimal.RequireFromString("1999.99")
	o.CustomDays[TariffStrategic] = 21

	raw, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var back OverrideSet
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p, ok := back.Price(TariffUrgent); !ok || !p.Equal(decimal.RequireFromString("1999.99")) {
		t.Fatalf("unexpected urgent price: %v %v", p, ok)
	}
	if d, ok := back.Days(TariffStrategic); !ok || d != 21 {
		t.Fatalf("unexpected strategic days: %v %v", d, ok)
	}
	if _, ok := back.Price(TariffStandard); ok {
		t.Fatalf("expected standard price unset")
	}
}

func TestOverrideSet_CloneIsIndependent(t *testing.T) {
	o := NewOverrideSet()
	o.CustomDays[TariffStandard] = 5
	c := o.Clone()
	c.CustomDays[TariffStandard] = 7
	if o.CustomDays[TariffStandard] != 5 {
		t.Fatalf("clone mutated original")
	}
	if NewOverrideSet().IsEmpty() != true || o.IsEmpty() {
		t.Fatalf("unexpected IsEmpty results")
	}
}
