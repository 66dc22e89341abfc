package tariff

import (
	"testing"

	"cpq_quote/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func input(unitPrice string, qty, days int) entities.PricingInput {
	return entities.PricingInput{UnitPrice: decimal.RequireFromString(unitPrice), Qty: qty, DeliveryDays: days}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestCalculateTariffsByDelivery(t *testing.T) {
	tests := []struct {
		name                        string
		in                          entities.PricingInput
		standard, urgent, strategic string
	}{
		{"ten days", input("10", 100, 10), "1000", "2000", "850"},
		{"one day", input("12.5", 8, 1), "100", "110", "85"},
		{"fractional base is not rounded", input("0.33", 3, 5), "0.99", "1.485", "0.8415"},
		{"zero unit price", input("0", 100, 10), "0", "0", "0"},
		{"negative qty", input("10", -1, 10), "0", "0", "0"},
		{"zero days", input("10", 100, 0), "0", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTariffsByDelivery(tt.in)
			assertDecimal(t, tt.standard, got.Standard)
			assertDecimal(t, tt.urgent, got.Urgent)
			assertDecimal(t, tt.strategic, got.Strategic)
		})
	}
}

func TestCalculateTariffsByDelivery_StrategicIgnoresDays(t *testing.T) {
	a := CalculateTariffsByDelivery(input("10", 100, 3))
	b := CalculateTariffsByDelivery(input("10", 100, 30))
	assert.True(t, a.Strategic.Equal(b.Strategic))
	assert.False(t, a.Urgent.Equal(b.Urgent))
}

func TestCalculateDeliveryDays(t *testing.T) {
	tests := []struct {
		days int
		want entities.DeliveryDaySchedule
	}{
		{-3, entities.DeliveryDaySchedule{}},
		{0, entities.DeliveryDaySchedule{}},
		{1, entities.DeliveryDaySchedule{Standard: 1, Urgent: 1, Strategic: 2}},
		{3, entities.DeliveryDaySchedule{Standard: 3, Urgent: 1, Strategic: 5}},
		{4, entities.DeliveryDaySchedule{Standard: 4, Urgent: 2, Strategic: 6}},
		{10, entities.DeliveryDaySchedule{Standard: 10, Urgent: 5, Strategic: 15}},
		{entities.MaxDeliveryDays, entities.DeliveryDaySchedule{Standard: 365, Urgent: 182, Strategic: 548}},
		{1 << 62, entities.DeliveryDaySchedule{Standard: 365, Urgent: 182, Strategic: 548}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateDeliveryDays(tt.days), "days=%d", tt.days)
	}
}

func TestGetAllTariffInfos(t *testing.T) {
	infos := GetAllTariffInfos(input("10", 100, 10))
	require.Len(t, infos, 3)

	assert.Equal(t, entities.TariffStandard, infos[0].Type)
	assert.Equal(t, entities.TariffUrgent, infos[1].Type)
	assert.Equal(t, entities.TariffStrategic, infos[2].Type)

	assert.Equal(t, "Стандартный", infos[0].Name)
	assert.Equal(t, "Срочный", infos[1].Name)
	assert.Equal(t, "Стратегический", infos[2].Name)

	assertDecimal(t, "1", infos[0].Multiplier)
	assertDecimal(t, "2", infos[1].Multiplier)
	assertDecimal(t, "0.85", infos[2].Multiplier)

	assertDecimal(t, "2000", infos[1].Price)
	assert.Equal(t, 5, infos[1].DeliveryDays)
	assert.Equal(t, 15, infos[2].DeliveryDays)

	single := GetTariffInfo(entities.TariffUrgent, input("10", 100, 10))
	assert.Equal(t, infos[1].Name, single.Name)
	assert.True(t, infos[1].Price.Equal(single.Price))
}

func TestApplyOverrides(t *testing.T) {
	tariffs := CalculateTariffsByDelivery(input("10", 100, 10))
	prices := entities.PriceOverrides{entities.TariffUrgent: decimal.NewFromInt(1500)}

	got := ApplyCustomPrices(tariffs, prices)
	assertDecimal(t, "1000", got.Standard)
	assertDecimal(t, "1500", got.Urgent)
	assertDecimal(t, "850", got.Strategic)

	same := ApplyCustomPrices(tariffs, nil)
	assert.True(t, same.Urgent.Equal(tariffs.Urgent))

	schedule := ApplyCustomDeliveryDays(CalculateDeliveryDays(10), entities.DayOverrides{entities.TariffStrategic: 30})
	assert.Equal(t, entities.DeliveryDaySchedule{Standard: 10, Urgent: 5, Strategic: 30}, schedule)
}

func TestGetTariffDifference(t *testing.T) {
	in := input("10", 100, 10)

	urgent := GetTariffDifference(in, entities.TariffUrgent)
	assertDecimal(t, "1000", urgent.Difference)
	assert.EqualValues(t, 100, urgent.Percentage)
	assert.True(t, urgent.IsIncrease)

	strategic := GetTariffDifference(in, entities.TariffStrategic)
	assertDecimal(t, "-150", strategic.Difference)
	assert.EqualValues(t, 15, strategic.Percentage)
	assert.False(t, strategic.IsIncrease)

	standard := GetTariffDifference(in, entities.TariffStandard)
	assert.True(t, standard.Difference.IsZero())
	assert.EqualValues(t, 0, standard.Percentage)
	assert.False(t, standard.IsIncrease)

	degenerate := GetTariffDifference(input("0", 100, 10), entities.TariffUrgent)
	assert.EqualValues(t, 0, degenerate.Percentage)
	assert.False(t, degenerate.IsIncrease)
}
