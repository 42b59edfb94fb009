package model

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Plain decimals only: no sign, no exponent, at most 12 integer digits and
// 8 fractional digits.
var amountRegexp = regexp.MustCompile(`^\d{1,12}([.,]\d{1,8})?$`)

// ParseAmount converts user input to a positive decimal amount.
// A decimal comma is accepted ("12,5" == "12.5").
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrEmptyAmount
	}
	if strings.HasPrefix(s, "-") && amountRegexp.MatchString(s[1:]) {
		return decimal.Zero, ErrNonPositiveAmount
	}
	if !amountRegexp.MatchString(s) {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrNonPositiveAmount
	}
	return d, nil
}

// FormatAmount renders d with two decimals, followed by currency when set.
func FormatAmount(d decimal.Decimal, currency string) string {
	s := d.StringFixed(2)
	if currency == "" {
		return s
	}
	return s + " " + currency
}
