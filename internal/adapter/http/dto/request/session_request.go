package request

import (
	"encoding/json"
	"errors"

	"cpq_quote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownTariffVariant = errors.New("unknown tariff variant")
	ErrInvalidOverrideValue = errors.New("override value out of range")
)

type StartSessionRequest struct {
	SessionID string `json:"session_id"`
}

// UpdateFormRequest maps form field names to new values. null or "" resets a field.
type UpdateFormRequest map[string]json.RawMessage

// OverridesRequest replaces the override set of a session. A null entry clears
// that variant.
type OverridesRequest struct {
	CustomPrices map[string]*decimal.Decimal `json:"customPrices"`
	CustomDays   map[string]*int             `json:"customDays" binding:"omitempty,dive,omitempty,min=0,max=365"`
}

func (r OverridesRequest) ToOverrideSet() (entities.OverrideSet, error) {
	out := entities.NewOverrideSet()
	for k, v := range r.CustomPrices {
		variant := entities.TariffVariant(k)
		if !variant.Valid() {
			return entities.OverrideSet{}, ErrUnknownTariffVariant
		}
		if v == nil {
			continue
		}
		if v.IsNegative() || !entities.AmountInRange(*v) {
			return entities.OverrideSet{}, ErrInvalidOverrideValue
		}
		out.CustomPrices[variant] = *v
	}
	for k, v := range r.CustomDays {
		variant := entities.TariffVariant(k)
		if !variant.Valid() {
			return entities.OverrideSet{}, ErrUnknownTariffVariant
		}
		if v == nil {
			continue
		}
		if !entities.DeliveryDaysInRange(*v) {
			return entities.OverrideSet{}, ErrInvalidOverrideValue
		}
		out.CustomDays[variant] = *v
	}
	return out, nil
}
