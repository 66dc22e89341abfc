package entities

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PriceOverrides maps a variant to a user-entered price. A missing key means unset.
type PriceOverrides map[TariffVariant]decimal.Decimal

// DayOverrides maps a variant to a user-entered delivery-day count. A missing key means unset.
type DayOverrides map[TariffVariant]int

// OverrideSet is the persisted pair of user overrides.
type OverrideSet struct {
	CustomPrices PriceOverrides `json:"customPrices"`
	CustomDays   DayOverrides   `json:"customDays"`
}

func NewOverrideSet() OverrideSet {
	return OverrideSet{CustomPrices: PriceOverrides{}, CustomDays: DayOverrides{}}
}

func (o OverrideSet) IsEmpty() bool {
	return len(o.CustomPrices) == 0 && len(o.CustomDays) == 0
}

func (o OverrideSet) Clone() OverrideSet {
	out := NewOverrideSet()
	for k, v := range o.CustomPrices {
		out.CustomPrices[k] = v
	}
	for k, v := range o.CustomDays {
		out.CustomDays[k] = v
	}
	return out
}

func (o OverrideSet) Price(v TariffVariant) (decimal.Decimal, bool) {
	p, ok := o.CustomPrices[v]
	return p, ok
}

func (o OverrideSet) Days(v TariffVariant) (int, bool) {
	d, ok := o.CustomDays[v]
	return d, ok
}

// UnmarshalJSON accepts snapshots that carry null entries for cleared inputs and
// drops them, together with any variant outside the closed set and any value
// outside the accepted ranges.
func (o *OverrideSet) UnmarshalJSON(b []byte) error {
	var raw struct {
		CustomPrices map[TariffVariant]*decimal.Decimal `json:"customPrices"`
		CustomDays   map[TariffVariant]*int             `json:"customDays"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	out := NewOverrideSet()
	for k, v := range raw.CustomPrices {
		if v != nil && k.Valid() && !v.IsNegative() && AmountInRange(*v) {
			out.CustomPrices[k] = *v
		}
	}
	for k, v := range raw.CustomDays {
		if v != nil && k.Valid() && DeliveryDaysInRange(*v) {
			out.CustomDays[k] = *v
		}
	}
	*o = out
	return nil
}
