package validation

import "github.com/shopspring/decimal"

var (
	minUnitPrice = decimal.RequireFromString("0.01")
	maxUnitPrice = decimal.NewFromInt(1_000_000)
)

const (
	msgUnitPriceTooSmall = "must be ≥ 0.01"
	msgUnitPriceTooLarge = "too large"
)

type UnitPriceValidation struct {
	IsValid bool   `json:"is_valid"`
	Error   string `json:"error,omitempty"`
}

// ValidateUnitPrice is advisory; the tariff calculator never calls it.
func ValidateUnitPrice(price decimal.Decimal) UnitPriceValidation {
	switch {
	case price.LessThan(minUnitPrice):
		return UnitPriceValidation{Error: msgUnitPriceTooSmall}
	case price.GreaterThan(maxUnitPrice):
		return UnitPriceValidation{Error: msgUnitPriceTooLarge}
	}
	return UnitPriceValidation{IsValid: true}
}
