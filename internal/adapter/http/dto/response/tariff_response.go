package response

import (
	"cpq_quote/internal/domain/entities"
	"cpq_quote/internal/domain/tariff"
	"cpq_quote/internal/usecase"
)

type TariffInfoResponse struct {
	Type         string  `json:"type"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Multiplier   float64 `json:"multiplier"`
	Price        float64 `json:"price"`
	DeliveryDays int     `json:"delivery_days"`
}

type DeliveryDateResponse struct {
	Days          int    `json:"days"`
	Date          string `json:"date"`
	FormattedDate string `json:"formatted_date"`
}

type TariffDifferenceResponse struct {
	Difference float64 `json:"difference"`
	Percentage int64   `json:"percentage"`
	IsIncrease bool    `json:"is_increase"`
}

type TariffVariantResponse struct {
	Info            TariffInfoResponse       `json:"info"`
	Price           float64                  `json:"price"`
	FormattedPrice  string                   `json:"formatted_price"`
	DeliveryDays    int                      `json:"delivery_days"`
	DeliveryDate    DeliveryDateResponse     `json:"delivery_date"`
	Difference      TariffDifferenceResponse `json:"difference"`
	PriceOverridden bool                     `json:"price_overridden"`
	DaysOverridden  bool                     `json:"days_overridden"`
}

type TariffBreakdownResponse struct {
	BasePrice float64                 `json:"base_price"`
	Variants  []TariffVariantResponse `json:"variants"`
}

type UnitPriceCheckResponse struct {
	IsValid bool   `json:"is_valid"`
	Error   string `json:"error,omitempty"`
}

type TariffQuoteResponse struct {
	UnitPrice    float64                 `json:"unit_price"`
	Qty          int                     `json:"qty"`
	DeliveryDays int                     `json:"delivery_days"`
	Validation   UnitPriceCheckResponse  `json:"validation"`
	Tariffs      TariffBreakdownResponse `json:"tariffs"`
}

func FromTariffQuote(q usecase.TariffQuote) TariffQuoteResponse {
	return TariffQuoteResponse{
		UnitPrice:    q.Input.UnitPrice.InexactFloat64(),
		Qty:          q.Input.Qty,
		DeliveryDays: q.Input.DeliveryDays,
		Validation:   UnitPriceCheckResponse{IsValid: q.UnitPrice.IsValid, Error: q.UnitPrice.Error},
		Tariffs:      FromBreakdown(q.Breakdown),
	}
}

func FromBreakdown(b tariff.Breakdown) TariffBreakdownResponse {
	variants := make([]TariffVariantResponse, 0, len(b.Variants))
	for _, v := range b.Variants {
		variants = append(variants, TariffVariantResponse{
			Info:           fromTariffInfo(v.Info),
			Price:          v.Price.InexactFloat64(),
			FormattedPrice: v.FormattedPrice,
			DeliveryDays:   v.DeliveryDays,
			DeliveryDate: DeliveryDateResponse{
				Days:          v.DeliveryDate.Days,
				Date:          v.DeliveryDate.Date.Format("2006-01-02"),
				FormattedDate: v.DeliveryDate.FormattedDate,
			},
			Difference: TariffDifferenceResponse{
				Difference: v.Difference.Difference.InexactFloat64(),
				Percentage: v.Difference.Percentage,
				IsIncrease: v.Difference.IsIncrease,
			},
			PriceOverridden: v.PriceOverridden,
			DaysOverridden:  v.DaysOverridden,
		})
	}
	return TariffBreakdownResponse{BasePrice: b.BasePrice.InexactFloat64(), Variants: variants}
}

func fromTariffInfo(i entities.TariffInfo) TariffInfoResponse {
	return TariffInfoResponse{
		Type:         string(i.Type),
		Name:         i.Name,
		Description:  i.Description,
		Multiplier:   i.Multiplier.InexactFloat64(),
		Price:        i.Price.InexactFloat64(),
		DeliveryDays: i.DeliveryDays,
	}
}
