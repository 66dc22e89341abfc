// Package tariff derives the three pricing and scheduling variants of a quote.
// Every function here is pure and total: degenerate input prices to zero instead
// of failing.
package tariff

import (
	"cpq_quote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	urgentStepPerDay    = decimal.RequireFromString("0.1")
	strategicMultiplier = decimal.RequireFromString("0.85")
	hundred             = decimal.NewFromInt(100)
)

type variantMeta struct {
	name        string
	description string
}

var variantMetadata = map[entities.TariffVariant]variantMeta{
	entities.TariffStandard: {
		name:        "Стандартный",
		description: "Базовая цена и срок изготовления",
	},
	entities.TariffUrgent: {
		name:        "Срочный",
		description: "Наценка 10% за каждый день срока, срок сокращен вдвое",
	},
	entities.TariffStrategic: {
		name:        "Стратегический",
		description: "Скидка 15%, срок увеличен в полтора раза",
	},
}

// UrgentMultiplier is 1 + delivery_days*0.1.
func UrgentMultiplier(deliveryDays int) decimal.Decimal {
	return decimal.NewFromInt(1).Add(urgentStepPerDay.Mul(decimal.NewFromInt(int64(deliveryDays))))
}

// Multiplier returns the price multiplier of a variant for the given delivery days.
func Multiplier(v entities.TariffVariant, deliveryDays int) decimal.Decimal {
	switch v {
	case entities.TariffUrgent:
		return UrgentMultiplier(deliveryDays)
	case entities.TariffStrategic:
		return strategicMultiplier
	default:
		return decimal.NewFromInt(1)
	}
}

// CalculateTariffsByDelivery prices all three variants. No rounding is applied.
// The strategic price does not depend on delivery days.
func CalculateTariffsByDelivery(in entities.PricingInput) entities.TariffCalculation {
	if in.Degenerate() {
		return entities.TariffCalculation{Standard: decimal.Zero, Urgent: decimal.Zero, Strategic: decimal.Zero}
	}

	base := in.BasePrice()
	return entities.TariffCalculation{
		Standard:  base,
		Urgent:    base.Mul(UrgentMultiplier(in.DeliveryDays)),
		Strategic: base.Mul(strategicMultiplier),
	}
}

// CalculateDeliveryDays derives the per-variant schedule from the requested days.
// Requests above MaxDeliveryDays are capped before deriving the schedule.
func CalculateDeliveryDays(baseDays int) entities.DeliveryDaySchedule {
	if baseDays <= 0 {
		return entities.DeliveryDaySchedule{}
	}
	baseDays = min(baseDays, entities.MaxDeliveryDays)

	urgent := baseDays / 2
	if urgent < 1 {
		urgent = 1
	}
	return entities.DeliveryDaySchedule{
		Standard:  baseDays,
		Urgent:    urgent,
		Strategic: baseDays + (baseDays+1)/2,
	}
}

// GetTariffInfo computes the presentation bundle for one variant.
func GetTariffInfo(v entities.TariffVariant, in entities.PricingInput) entities.TariffInfo {
	return tariffInfo(v, in, CalculateTariffsByDelivery(in), CalculateDeliveryDays(in.DeliveryDays))
}

// GetAllTariffInfos returns standard, urgent and strategic infos built from a
// single calculation.
func GetAllTariffInfos(in entities.PricingInput) []entities.TariffInfo {
	tariffs := CalculateTariffsByDelivery(in)
	schedule := CalculateDeliveryDays(in.DeliveryDays)

	out := make([]entities.TariffInfo, 0, len(entities.TariffVariants))
	for _, v := range entities.TariffVariants {
		out = append(out, tariffInfo(v, in, tariffs, schedule))
	}
	return out
}

func tariffInfo(v entities.TariffVariant, in entities.PricingInput, tariffs entities.TariffCalculation, schedule entities.DeliveryDaySchedule) entities.TariffInfo {
	meta := variantMetadata[v]
	return entities.TariffInfo{
		Type:         v,
		Name:         meta.name,
		Description:  meta.description,
		Multiplier:   Multiplier(v, in.DeliveryDays),
		Price:        tariffs.Get(v),
		DeliveryDays: schedule.Get(v),
	}
}

// ApplyCustomPrices replaces computed prices with the overrides that are set.
func ApplyCustomPrices(tariffs entities.TariffCalculation, overrides entities.PriceOverrides) entities.TariffCalculation {
	for _, v := range entities.TariffVariants {
		if p, ok := overrides[v]; ok {
			tariffs = tariffs.With(v, p)
		}
	}
	return tariffs
}

// ApplyCustomDeliveryDays replaces computed days with the overrides that are set.
func ApplyCustomDeliveryDays(schedule entities.DeliveryDaySchedule, overrides entities.DayOverrides) entities.DeliveryDaySchedule {
	for _, v := range entities.TariffVariants {
		if d, ok := overrides[v]; ok {
			schedule = schedule.With(v, d)
		}
	}
	return schedule
}

// GetTariffDifference compares a computed variant price to unit_price*qty.
func GetTariffDifference(in entities.PricingInput, v entities.TariffVariant) entities.TariffDifference {
	base := in.BasePrice()
	diff := CalculateTariffsByDelivery(in).Get(v).Sub(base)

	var pct int64
	if base.IsPositive() {
		pct = diff.Div(base).Mul(hundred).Round(0).Abs().IntPart()
	}
	return entities.TariffDifference{
		Difference: diff,
		Percentage: pct,
		IsIncrease: diff.IsPositive(),
	}
}
