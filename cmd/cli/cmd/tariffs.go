package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"cpq_quote/internal/adapter/http/dto/response"
	"cpq_quote/internal/domain/entities"
	"cpq_quote/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type tariffsOptions struct {
	unitPrice    string
	qty          int
	deliveryDays int
	prices       map[string]string
	days         map[string]string
	format       string
}

func newTariffsCmd() *cobra.Command {
	opts := &tariffsOptions{}
	cmd := &cobra.Command{
		Use:   "tariffs",
		Short: "Print the tariff breakdown for an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTariffs(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.unitPrice, "unit-price", "", "price per unit")
	cmd.Flags().IntVar(&opts.qty, "qty", 1, "order quantity")
	cmd.Flags().IntVar(&opts.deliveryDays, "delivery-days", 10, "requested delivery in business days")
	cmd.Flags().StringToStringVar(&opts.prices, "price", nil, "price override per variant, e.g. urgent=30000")
	cmd.Flags().StringToStringVar(&opts.days, "days", nil, "delivery days override per variant, e.g. strategic=20")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format (text, json)")
	_ = cmd.MarkFlagRequired("unit-price")
	return cmd
}

func runTariffs(ctx context.Context, out io.Writer, opts *tariffsOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	price, err := decimal.NewFromString(opts.unitPrice)
	if err != nil {
		return fmt.Errorf("invalid --unit-price %q: %w", opts.unitPrice, err)
	}
	overrides, err := parseOverrides(opts.prices, opts.days)
	if err != nil {
		return err
	}

	in := entities.PricingInput{UnitPrice: price, Qty: opts.qty, DeliveryDays: opts.deliveryDays}
	q := usecase.NewTariffUseCase().Quote(ctx, in, overrides)

	switch opts.format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(response.FromTariffQuote(q))
	case "text":
		return printTariffs(out, q)
	default:
		return fmt.Errorf("unsupported format %q", opts.format)
	}
}

func parseOverrides(prices, days map[string]string) (entities.OverrideSet, error) {
	out := entities.NewOverrideSet()
	for k, v := range prices {
		variant := entities.TariffVariant(k)
		if !variant.Valid() {
			return out, fmt.Errorf("unknown tariff variant %q", k)
		}
		p, err := decimal.NewFromString(v)
		if err != nil || p.IsNegative() {
			return out, fmt.Errorf("invalid price override %s=%s", k, v)
		}
		out.CustomPrices[variant] = p
	}
	for k, v := range days {
		variant := entities.TariffVariant(k)
		if !variant.Valid() {
			return out, fmt.Errorf("unknown tariff variant %q", k)
		}
		d, err := strconv.Atoi(v)
		if err != nil || d < 0 {
			return out, fmt.Errorf("invalid days override %s=%s", k, v)
		}
		out.CustomDays[variant] = d
	}
	return out, nil
}

func printTariffs(out io.Writer, q usecase.TariffQuote) error {
	if !q.UnitPrice.IsValid {
		fmt.Fprintf(out, "unit price: %s\n\n", q.UnitPrice.Error)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TARIFF\tPRICE\tDAYS\tDELIVERY\tDIFF")
	for _, v := range q.Breakdown.Variants {
		diff := "-"
		if v.Info.Type != entities.TariffStandard {
			sign := "-"
			switch {
			case v.Difference.IsIncrease:
				sign = "+"
			case v.Difference.Percentage == 0:
				sign = ""
			}
			diff = fmt.Sprintf("%s%d%%", sign, v.Difference.Percentage)
		}
		price := v.FormattedPrice + " ₽"
		if v.PriceOverridden {
			price += " *"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", v.Info.Name, price, v.DeliveryDays, v.DeliveryDate.FormattedDate, diff)
	}
	return w.Flush()
}
