package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders amount with two decimals and thousand separators,
// prefixed by the currency code when given: "BDT 12,500.00".
func FormatMoney(amount decimal.Decimal, currency string) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	fixed := amount.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	out := sign + formatThousand(whole) + "." + frac
	if c := strings.TrimSpace(currency); c != "" {
		return strings.ToUpper(c) + " " + out
	}
	return out
}

func formatThousand(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var out strings.Builder
	for i, c := range digits {
		if i != 0 && (len(digits)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
