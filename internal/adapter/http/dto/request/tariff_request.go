package request

import (
	"errors"
	"strings"

	"cpq_quote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidUnitPrice = errors.New("invalid unit price")

// TariffQueryRequest is bound from the query string of GET /v1/tariffs.
type TariffQueryRequest struct {
	UnitPrice    string `form:"unit_price" binding:"required,max=32"`
	Qty          int    `form:"qty" binding:"min=0,max=100000"`
	DeliveryDays int    `form:"delivery_days" binding:"min=0,max=365"`
}

func (r TariffQueryRequest) ResolvePricingInput() (entities.PricingInput, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(r.UnitPrice))
	if err != nil || !entities.AmountInRange(price) {
		return entities.PricingInput{}, ErrInvalidUnitPrice
	}
	return entities.PricingInput{UnitPrice: price, Qty: r.Qty, DeliveryDays: r.DeliveryDays}, nil
}
