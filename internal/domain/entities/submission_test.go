package entities

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewSubmissionPayload(t *testing.T) {
	form := filledForm()
	overrides := NewOverrideSet()
	overrides.CustomPrices[TariffUrgent] = decimal.NewFromInt(30000)
	overrides.CustomDays[TariffStrategic] = 20

	p := NewSubmissionPayload(form, decimal.NewFromInt(12500), overrides)

	if p.BatchCost != 12500 || p.FinalPrice != 12500 || p.UnitPrice != 12.5 {
		t.Fatalf("unexpected prices: %+v", p)
	}
	if p.SelectedTariff != TariffStandard || !p.ConsentGiven {
		t.Fatalf("unexpected fixed fields: %+v", p)
	}
	if p.CustomUrgentPrice == nil || *p.CustomUrgentPrice != 30000 || p.CustomStandardPrice != nil || p.CustomStrategicPrice != nil {
		t.Fatalf("unexpected custom prices: %+v", p)
	}
	if p.CustomStrategicDays == nil || *p.CustomStrategicDays != 20 || p.CustomUrgentDays != nil {
		t.Fatalf("unexpected custom days: %+v", p)
	}

	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, absent := range []string{"contact_name", "city", "phone", "tg_username", "custom_standard_price", "custom_urgent_days"} {
		if _, ok := body[absent]; ok {
			t.Fatalf("expected %q to be absent from %s", absent, raw)
		}
	}
	if body["company"] != "ООО Ромашка" || body["print"] != PrintYes || body["selected_tariff"] != "standard" {
		t.Fatalf("unexpected body: %s", raw)
	}
}

func TestSubmissionResult(t *testing.T) {
	ok := SubmissionSuccess("https://cdn/q.pdf", "lead-1")
	if !ok.OK || ok.Error != "" || ok.ErrorKind != "" {
		t.Fatalf("unexpected success: %+v", ok)
	}

	fail := SubmissionFailure("", "")
	if fail.OK || fail.ErrorKind != SubmissionErrorUnknown || fail.Error != "Unknown error occurred" {
		t.Fatalf("unexpected failure defaults: %+v", fail)
	}
}
