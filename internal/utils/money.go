package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Amounts are carried as int64 minor units (cents) everywhere. Formatting to
// two decimals happens here, at presentation, never in intermediate math.

// FormatMoney renders cents as a plain two-decimal amount, e.g. 20000 -> "200.00".
func FormatMoney(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// FormatAmount renders cents with the currency code appended, e.g. "200.00 USD".
func FormatAmount(cents int64, currency string) string {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		return FormatMoney(cents)
	}
	return FormatMoney(cents) + " " + currency
}

// ParseMoney parses a two-decimal amount like "200.00" (or "200") into cents.
func ParseMoney(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac, _ := strings.Cut(s, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	var cents int64
	if frac != "" {
		if len(frac) > 2 {
			return 0, fmt.Errorf("amount %q has more than two decimals", s)
		}
		for len(frac) < 2 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
	}
	out := units*100 + cents
	if neg {
		out = -out
	}
	return out, nil
}
