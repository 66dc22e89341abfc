package tariff

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// maxFormattedDigits is the widest integer FormatPrice expands. Anything wider
// is rendered in exponent form instead of being rounded digit by digit.
const maxFormattedDigits = 40

var (
	ruPrinter = message.NewPrinter(language.Russian)
	// ruGroupSeparator is the locale's thousands separator as the printer emits it.
	ruGroupSeparator = strings.Trim(ruPrinter.Sprintf("%d", 1000), "0123456789")
)

// FormatPrice renders a price rounded to whole rubles with ru-RU digit grouping.
// Values beyond int64 are grouped from their decimal string, never truncated.
func FormatPrice(price decimal.Decimal) string {
	if digits := price.NumDigits() + int(price.Exponent()); digits > maxFormattedDigits {
		return price.Coefficient().String() + "e" + strconv.Itoa(int(price.Exponent()))
	}

	rounded := price.Round(0)
	if rounded.NumDigits() <= 18 {
		return ruPrinter.Sprintf("%d", rounded.IntPart())
	}
	return groupDigits(rounded.String(), ruGroupSeparator)
}

func groupDigits(s, sep string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	var b strings.Builder
	b.WriteString(sign)
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteRune(r)
	}
	return b.String()
}
