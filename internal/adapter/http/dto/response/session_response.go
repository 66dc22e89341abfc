package response

import (
	"cpq_quote/internal/domain/entities"
	"cpq_quote/internal/usecase"
)

type FormResponse struct {
	Fefco          string  `json:"fefco,omitempty"`
	CardboardType  string  `json:"cardboard_type,omitempty"`
	CardboardGrade string  `json:"cardboard_grade,omitempty"`
	XMM            int     `json:"x_mm"`
	YMM            int     `json:"y_mm"`
	ZMM            int     `json:"z_mm"`
	Print          string  `json:"print,omitempty"`
	Qty            int     `json:"qty"`
	DeliveryDays   int     `json:"delivery_days"`
	UnitPrice      float64 `json:"unit_price"`
	Company        string  `json:"company,omitempty"`
	ContactName    string  `json:"contact_name,omitempty"`
	City           string  `json:"city,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	Email          string  `json:"email,omitempty"`
	TgUsername     string  `json:"tg_username,omitempty"`
}

type OverridesResponse struct {
	CustomPrices map[string]float64 `json:"customPrices"`
	CustomDays   map[string]int     `json:"customDays"`
}

type FieldIssueResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type SubmissionResultResponse struct {
	OK        bool   `json:"ok"`
	PDFURL    string `json:"pdf_url,omitempty"`
	LeadID    string `json:"lead_id,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
}

type SessionResponse struct {
	SessionID string                    `json:"session_id"`
	Status    string                    `json:"status"`
	Form      FormResponse              `json:"form"`
	Overrides OverridesResponse         `json:"overrides"`
	Tariffs   TariffBreakdownResponse   `json:"tariffs"`
	Issues    []FieldIssueResponse      `json:"issues"`
	Result    *SubmissionResultResponse `json:"result,omitempty"`
}

func FromSessionView(v usecase.SessionView) SessionResponse {
	issues := make([]FieldIssueResponse, 0, len(v.Issues))
	for _, i := range v.Issues {
		issues = append(issues, FieldIssueResponse{Field: i.Field, Message: i.Message})
	}

	resp := SessionResponse{
		SessionID: v.ID,
		Status:    string(v.Status),
		Form:      fromForm(v.Form),
		Overrides: fromOverrides(v.Overrides),
		Tariffs:   FromBreakdown(v.Tariffs),
		Issues:    issues,
	}
	if v.Result != nil {
		resp.Result = &SubmissionResultResponse{
			OK:        v.Result.OK,
			PDFURL:    v.Result.PDFURL,
			LeadID:    v.Result.LeadID,
			Error:     v.Result.Error,
			ErrorKind: string(v.Result.ErrorKind),
		}
	}
	return resp
}

func fromForm(f entities.QuoteForm) FormResponse {
	return FormResponse{
		Fefco:          f.Fefco,
		CardboardType:  f.CardboardType,
		CardboardGrade: f.CardboardGrade,
		XMM:            f.XMM,
		YMM:            f.YMM,
		ZMM:            f.ZMM,
		Print:          f.Print,
		Qty:            f.Qty,
		DeliveryDays:   f.DeliveryDays,
		UnitPrice:      f.UnitPrice.InexactFloat64(),
		Company:        f.Company,
		ContactName:    f.ContactName,
		City:           f.City,
		Phone:          f.Phone,
		Email:          f.Email,
		TgUsername:     f.TgUsername,
	}
}

func fromOverrides(o entities.OverrideSet) OverridesResponse {
	out := OverridesResponse{CustomPrices: map[string]float64{}, CustomDays: map[string]int{}}
	for k, v := range o.CustomPrices {
		out.CustomPrices[string(k)] = v.InexactFloat64()
	}
	for k, v := range o.CustomDays {
		out.CustomDays[string(k)] = v
	}
	return out
}
