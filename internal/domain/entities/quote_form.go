package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownFormField = errors.New("unknown form field")
	ErrInvalidFormValue = errors.New("invalid form value")
)

const (
	CardboardThreeLayer      = "3-х слойный гофрокартон"
	CardboardThreeLayerMicro = "3-х слойный микрогофрокартон"

	PrintYes = "Да"
	PrintNo  = "Нет"
)

// Catalogue values offered by the form.
var (
	FefcoFoldingCodes   = []string{"0200", "0201", "0203", "0205", "0210", "0211", "0215"}
	FefcoWrappingCodes  = []string{"0426", "0427"}
	FefcoAuxiliaryCodes = []string{"501"}

	CardboardTypes  = []string{CardboardThreeLayer, CardboardThreeLayerMicro}
	CardboardGrades = []string{"Т21 крафт", "Т22 крафт", "Т22 бел", "Т23 крафт", "Т23 бел", "Т24 крафт", "Т24 бел"}
	PrintOptions    = []string{PrintYes, PrintNo}
)

// FefcoCodes returns every selectable FEFCO code.
func FefcoCodes() []string {
	out := make([]string, 0, len(FefcoFoldingCodes)+len(FefcoWrappingCodes)+len(FefcoAuxiliaryCodes))
	out = append(out, FefcoFoldingCodes...)
	out = append(out, FefcoWrappingCodes...)
	return append(out, FefcoAuxiliaryCodes...)
}

// QuoteForm holds the box parameters and contact details entered by the user.
//
// Text fields are omitted from the JSON snapshot when empty, so the persisted form
// never carries blank values. Validation tags are advisory (see domain/validation).
type QuoteForm struct {
	Fefco          string          `json:"fefco,omitempty" validate:"required,fefco"`
	CardboardType  string          `json:"cardboard_type,omitempty" validate:"required,cardboard_type"`
	CardboardGrade string          `json:"cardboard_grade,omitempty" validate:"omitempty,cardboard_grade"`
	XMM            int             `json:"x_mm" validate:"min=20,max=1200"`
	YMM            int             `json:"y_mm" validate:"min=20,max=1200"`
	ZMM            int             `json:"z_mm" validate:"min=20,max=1200"`
	Print          string          `json:"print,omitempty" validate:"omitempty,print_option"`
	Qty            int             `json:"qty" validate:"min=1,max=100000"`
	DeliveryDays   int             `json:"delivery_days" validate:"min=1,max=365"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Company        string          `json:"company,omitempty" validate:"max=200"`
	ContactName    string          `json:"contact_name,omitempty" validate:"max=100"`
	City           string          `json:"city,omitempty" validate:"max=100"`
	Phone          string          `json:"phone,omitempty" validate:"max=20"`
	Email          string          `json:"email,omitempty" validate:"omitempty,email"`
	TgUsername     string          `json:"tg_username,omitempty" validate:"max=50"`
}

// QuoteFormFields are the JSON keys accepted by ApplyFields.
var QuoteFormFields = []string{
	"fefco", "cardboard_type", "cardboard_grade",
	"x_mm", "y_mm", "z_mm",
	"print", "qty", "delivery_days", "unit_price",
	"company", "contact_name", "city", "phone", "email", "tg_username",
}

func IsQuoteFormField(name string) bool {
	for _, f := range QuoteFormFields {
		if f == name {
			return true
		}
	}
	return false
}

// FormSnapshot is the persisted shape of a form: field name to JSON value.
type FormSnapshot map[string]json.RawMessage

func (f QuoteForm) PricingInput() PricingInput {
	return PricingInput{UnitPrice: f.UnitPrice, Qty: f.Qty, DeliveryDays: f.DeliveryDays}
}

// BatchCost is unit_price * qty with no degenerate-input policy applied.
func (f QuoteForm) BatchCost() decimal.Decimal {
	return f.PricingInput().BasePrice()
}

// Snapshot returns the form with empty text fields filtered out.
func (f QuoteForm) Snapshot() (FormSnapshot, error) {
	raw, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	var snap FormSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	for k, v := range snap {
		if isBlankJSON(v) {
			delete(snap, k)
		}
	}
	return snap, nil
}

// ApplyFields returns a copy of the form with the given fields set.
// A null or empty-string value resets the field to its default.
func (f QuoteForm) ApplyFields(fields map[string]json.RawMessage) (QuoteForm, error) {
	merged, err := f.Snapshot()
	if err != nil {
		return f, err
	}
	for name, value := range fields {
		if !IsQuoteFormField(name) {
			return f, fmt.Errorf("%w: %s", ErrUnknownFormField, name)
		}
		if isBlankJSON(value) {
			delete(merged, name)
			continue
		}
		merged[name] = value
	}

	raw, err := json.Marshal(merged)
	if err != nil {
		return f, err
	}
	var next QuoteForm
	if err := json.Unmarshal(raw, &next); err != nil {
		return f, fmt.Errorf("%w: %v", ErrInvalidFormValue, err)
	}
	if !AmountInRange(next.UnitPrice) {
		return f, fmt.Errorf("%w: unit_price exceeds %d integer digits", ErrInvalidFormValue, MaxAmountDigits)
	}
	if !DeliveryDaysInRange(next.DeliveryDays) {
		return f, fmt.Errorf("%w: delivery_days must be between 0 and %d", ErrInvalidFormValue, MaxDeliveryDays)
	}
	return next, nil
}

// RestoreFields applies a persisted snapshot key by key: only known keys with a
// present, non-empty value are applied, and a key whose value no longer fits the
// form is skipped without affecting the others. The returned error lists the
// skipped keys; the returned form is always usable.
func (f QuoteForm) RestoreFields(snapshot FormSnapshot) (QuoteForm, error) {
	var errs []error
	for _, name := range QuoteFormFields {
		value, ok := snapshot[name]
		if !ok || isBlankJSON(value) {
			continue
		}
		next, err := f.ApplyFields(map[string]json.RawMessage{name: value})
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		f = next
	}
	return f, errors.Join(errs...)
}

func isBlankJSON(v json.RawMessage) bool {
	t := bytes.TrimSpace(v)
	return len(t) == 0 || bytes.Equal(t, []byte("null")) || bytes.Equal(t, []byte(`""`))
}
