package usecase

import (
	"context"
	"time"

	"cpq_quote/internal/domain/entities"
	"cpq_quote/internal/domain/tariff"
	"cpq_quote/internal/domain/validation"
)

// TariffQuote is a stateless tariff preview.
type TariffQuote struct {
	Input     entities.PricingInput
	UnitPrice validation.UnitPriceValidation
	Breakdown tariff.Breakdown
}

// ITariffUseCase previews tariffs without a session, e.g. for the calculator widget.
type ITariffUseCase interface {
	Quote(ctx context.Context, in entities.PricingInput, overrides entities.OverrideSet) TariffQuote
}

type TariffUseCase struct {
	now func() time.Time
}

var _ ITariffUseCase = (*TariffUseCase)(nil)

func NewTariffUseCase() *TariffUseCase {
	return &TariffUseCase{now: time.Now}
}

func (u *TariffUseCase) Quote(_ context.Context, in entities.PricingInput, overrides entities.OverrideSet) TariffQuote {
	return TariffQuote{
		Input:     in,
		UnitPrice: validation.ValidateUnitPrice(in.UnitPrice),
		Breakdown: tariff.BuildBreakdown(in, overrides, u.now()),
	}
}
