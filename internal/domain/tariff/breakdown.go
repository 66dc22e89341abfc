package tariff

import (
	"time"

	"cpq_quote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// VariantBreakdown is everything shown for one variant after overrides.
type VariantBreakdown struct {
	Info            entities.TariffInfo       `json:"info"`
	Price           decimal.Decimal           `json:"price"`
	FormattedPrice  string                    `json:"formatted_price"`
	DeliveryDays    int                       `json:"delivery_days"`
	DeliveryDate    DeliveryDate              `json:"delivery_date"`
	Difference      entities.TariffDifference `json:"difference"`
	PriceOverridden bool                      `json:"price_overridden"`
	DaysOverridden  bool                      `json:"days_overridden"`
}

// Breakdown is the full tariff view for one pricing input and override set.
type Breakdown struct {
	BasePrice  decimal.Decimal              `json:"base_price"`
	Calculated entities.TariffCalculation   `json:"calculated"`
	Final      entities.TariffCalculation   `json:"final"`
	Schedule   entities.DeliveryDaySchedule `json:"schedule"`
	Variants   []VariantBreakdown           `json:"variants"`
}

// BuildBreakdown computes tariffs and schedules once, applies overrides and
// resolves delivery dates relative to now.
func BuildBreakdown(in entities.PricingInput, overrides entities.OverrideSet, now time.Time) Breakdown {
	calculated := CalculateTariffsByDelivery(in)
	final := ApplyCustomPrices(calculated, overrides.CustomPrices)
	baseSchedule := CalculateDeliveryDays(in.DeliveryDays)
	schedule := ApplyCustomDeliveryDays(baseSchedule, overrides.CustomDays)

	variants := make([]VariantBreakdown, 0, len(entities.TariffVariants))
	for _, v := range entities.TariffVariants {
		_, priceSet := overrides.Price(v)
		_, daysSet := overrides.Days(v)
		variants = append(variants, VariantBreakdown{
			Info:            tariffInfo(v, in, calculated, baseSchedule),
			Price:           final.Get(v),
			FormattedPrice:  FormatPrice(final.Get(v)),
			DeliveryDays:    schedule.Get(v),
			DeliveryDate:    resolveDeliveryDate(now, schedule.Get(v)),
			Difference:      GetTariffDifference(in, v),
			PriceOverridden: priceSet,
			DaysOverridden:  daysSet,
		})
	}

	return Breakdown{
		BasePrice:  in.BasePrice(),
		Calculated: calculated,
		Final:      final,
		Schedule:   schedule,
		Variants:   variants,
	}
}
