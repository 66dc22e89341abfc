package entities

import "github.com/shopspring/decimal"

// SubmissionPayload is the body posted to the quote backend.
//
// selected_tariff is always "standard": overrides for the other variants are sent
// for the PDF but are never the selected price.
type SubmissionPayload struct {
	Fefco          string  `json:"fefco"`
	CardboardType  string  `json:"cardboard_type"`
	CardboardGrade *string `json:"cardboard_grade,omitempty"`
	XMM            int     `json:"x_mm"`
	YMM            int     `json:"y_mm"`
	ZMM            int     `json:"z_mm"`
	Print          *string `json:"print,omitempty"`
	Qty            int     `json:"qty"`
	DeliveryDays   int     `json:"delivery_days"`
	UnitPrice      float64 `json:"unit_price"`

	BatchCost      float64       `json:"batch_cost"`
	SelectedTariff TariffVariant `json:"selected_tariff"`
	FinalPrice     float64       `json:"final_price"`

	CustomStandardPrice  *float64 `json:"custom_standard_price,omitempty"`
	CustomUrgentPrice    *float64 `json:"custom_urgent_price,omitempty"`
	CustomStrategicPrice *float64 `json:"custom_strategic_price,omitempty"`
	CustomStandardDays   *int     `json:"custom_standard_days,omitempty"`
	CustomUrgentDays     *int     `json:"custom_urgent_days,omitempty"`
	CustomStrategicDays  *int     `json:"custom_strategic_days,omitempty"`

	Company      *string `json:"company,omitempty"`
	ContactName  *string `json:"contact_name,omitempty"`
	City         *string `json:"city,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	TgUsername   *string `json:"tg_username,omitempty"`
	ConsentGiven bool    `json:"consent_given"`
}

// NewSubmissionPayload assembles the outgoing payload. finalPrice is the standard
// tariff after overrides were applied.
func NewSubmissionPayload(form QuoteForm, finalPrice decimal.Decimal, overrides OverrideSet) SubmissionPayload {
	p := SubmissionPayload{
		Fefco:          form.Fefco,
		CardboardType:  form.CardboardType,
		CardboardGrade: normalizeOptional(form.CardboardGrade),
		XMM:            form.XMM,
		YMM:            form.YMM,
		ZMM:            form.ZMM,
		Print:          normalizeOptional(form.Print),
		Qty:            form.Qty,
		DeliveryDays:   form.DeliveryDays,
		UnitPrice:      form.UnitPrice.InexactFloat64(),
		BatchCost:      form.BatchCost().InexactFloat64(),
		SelectedTariff: TariffStandard,
		FinalPrice:     finalPrice.InexactFloat64(),
		Company:        normalizeOptional(form.Company),
		ContactName:    normalizeOptional(form.ContactName),
		City:           normalizeOptional(form.City),
		Phone:          normalizeOptional(form.Phone),
		Email:          normalizeOptional(form.Email),
		TgUsername:     normalizeOptional(form.TgUsername),
		ConsentGiven:   true,
	}

	p.CustomStandardPrice = overridePrice(overrides, TariffStandard)
	p.CustomUrgentPrice = overridePrice(overrides, TariffUrgent)
	p.CustomStrategicPrice = overridePrice(overrides, TariffStrategic)
	p.CustomStandardDays = overrideDays(overrides, TariffStandard)
	p.CustomUrgentDays = overrideDays(overrides, TariffUrgent)
	p.CustomStrategicDays = overrideDays(overrides, TariffStrategic)
	return p
}

// normalizeOptional is the single place where an empty optional text field becomes absent.
func normalizeOptional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func overridePrice(o OverrideSet, v TariffVariant) *float64 {
	p, ok := o.Price(v)
	if !ok {
		return nil
	}
	f := p.InexactFloat64()
	return &f
}

func overrideDays(o OverrideSet, v TariffVariant) *int {
	d, ok := o.Days(v)
	if !ok {
		return nil
	}
	return &d
}

// SubmissionErrorKind classifies why a submission failed.
type SubmissionErrorKind string

const (
	SubmissionErrorValidation       SubmissionErrorKind = "validation"
	SubmissionErrorTransientNetwork SubmissionErrorKind = "transient_network"
	SubmissionErrorServerRejection  SubmissionErrorKind = "server_rejection"
	SubmissionErrorUnknown          SubmissionErrorKind = "unknown"
)

const unknownSubmissionError = "Unknown error occurred"

// SubmissionResult is either a success (PDF url + lead id) or a failure with a
// single display string. Build it with SubmissionSuccess or SubmissionFailure.
type SubmissionResult struct {
	OK        bool                `json:"ok"`
	PDFURL    string              `json:"pdf_url,omitempty"`
	LeadID    string              `json:"lead_id,omitempty"`
	Error     string              `json:"error,omitempty"`
	ErrorKind SubmissionErrorKind `json:"error_kind,omitempty"`
}

func SubmissionSuccess(pdfURL, leadID string) SubmissionResult {
	return SubmissionResult{OK: true, PDFURL: pdfURL, LeadID: leadID}
}

func SubmissionFailure(kind SubmissionErrorKind, message string) SubmissionResult {
	if kind == "" {
		kind = SubmissionErrorUnknown
	}
	if message == "" {
		message = unknownSubmissionError
	}
	return SubmissionResult{OK: false, Error: message, ErrorKind: kind}
}
