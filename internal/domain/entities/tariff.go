package entities

import "github.com/shopspring/decimal"

// TariffVariant is one of the three pricing/scheduling modes offered on a quote.
type TariffVariant string

const (
	TariffStandard  TariffVariant = "standard"
	TariffUrgent    TariffVariant = "urgent"
	TariffStrategic TariffVariant = "strategic"
)

// TariffVariants lists every variant in display order.
var TariffVariants = []TariffVariant{TariffStandard, TariffUrgent, TariffStrategic}

func (v TariffVariant) Valid() bool {
	switch v {
	case TariffStandard, TariffUrgent, TariffStrategic:
		return true
	}
	return false
}

const (
	// MaxDeliveryDays caps every delivery-day count: requested, overridden or derived.
	MaxDeliveryDays = 365
	// MaxAmountDigits caps the integer digits of a unit price or price override.
	MaxAmountDigits = 12
)

// DeliveryDaysInRange reports whether d is an acceptable delivery-day count.
func DeliveryDaysInRange(d int) bool {
	return d >= 0 && d <= MaxDeliveryDays
}

// AmountInRange reports whether a money amount has at most MaxAmountDigits
// integer digits. Only the coefficient and exponent are inspected, so values like
// 1e10000000 are rejected without being expanded.
func AmountInRange(d decimal.Decimal) bool {
	return IntegerDigits(d) <= MaxAmountDigits
}

// IntegerDigits is the number of digits left of the decimal point (at least 1).
func IntegerDigits(d decimal.Decimal) int {
	n := d.NumDigits() + int(d.Exponent())
	if n < 1 {
		return 1
	}
	return n
}

// PricingInput is the part of the form the tariffs are derived from.
type PricingInput struct {
	UnitPrice    decimal.Decimal
	Qty          int
	DeliveryDays int
}

// BasePrice is unit_price * qty, the pre-tariff batch cost.
func (in PricingInput) BasePrice() decimal.Decimal {
	return in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Qty)))
}

// Degenerate reports whether any input is non-positive; such inputs price to zero.
func (in PricingInput) Degenerate() bool {
	return !in.UnitPrice.IsPositive() || in.Qty <= 0 || in.DeliveryDays <= 0
}

// TariffCalculation holds one computed price per variant.
type TariffCalculation struct {
	Standard  decimal.Decimal `json:"standard"`
	Urgent    decimal.Decimal `json:"urgent"`
	Strategic decimal.Decimal `json:"strategic"`
}

func (t TariffCalculation) Get(v TariffVariant) decimal.Decimal {
	switch v {
	case TariffUrgent:
		return t.Urgent
	case TariffStrategic:
		return t.Strategic
	default:
		return t.Standard
	}
}

func (t TariffCalculation) With(v TariffVariant, price decimal.Decimal) TariffCalculation {
	switch v {
	case TariffStandard:
		t.Standard = price
	case TariffUrgent:
		t.Urgent = price
	case TariffStrategic:
		t.Strategic = price
	}
	return t
}

// DeliveryDaySchedule holds one delivery-day count per variant.
type DeliveryDaySchedule struct {
	Standard  int `json:"standard"`
	Urgent    int `json:"urgent"`
	Strategic int `json:"strategic"`
}

func (s DeliveryDaySchedule) Get(v TariffVariant) int {
	switch v {
	case TariffUrgent:
		return s.Urgent
	case TariffStrategic:
		return s.Strategic
	default:
		return s.Standard
	}
}

func (s DeliveryDaySchedule) With(v TariffVariant, days int) DeliveryDaySchedule {
	switch v {
	case TariffStandard:
		s.Standard = days
	case TariffUrgent:
		s.Urgent = days
	case TariffStrategic:
		s.Strategic = days
	}
	return s
}

// TariffInfo is the read-only presentation bundle for one variant.
type TariffInfo struct {
	Type         TariffVariant   `json:"type"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Multiplier   decimal.Decimal `json:"multiplier"`
	Price        decimal.Decimal `json:"price"`
	DeliveryDays int             `json:"delivery_days"`
}

// TariffDifference compares a variant against the base price.
// Percentage is always reported as an absolute value.
type TariffDifference struct {
	Difference decimal.Decimal `json:"difference"`
	Percentage int64           `json:"percentage"`
	IsIncrease bool            `json:"is_increase"`
}
