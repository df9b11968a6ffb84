// Package amountutils provides the monetary amount parsing and formatting
// helpers used at the input boundary and for display.
package amountutils

import (
	"errors"
	"regexp"
	"strings"

	"fjacquet/split-ledger/internal/ledgererror"

	"github.com/shopspring/decimal"
)

var errEmptyAmount = errors.New("amount is empty")

var symbolPattern = regexp.MustCompile(`[€$£¥₣₤₧₹₺₽₩฿₫₲₴₸₼₪\s]`)

// ParseAmount parses a string representation of an amount into a decimal
// value. It handles formats like "1,234.56", "1.234,56", "1'234.56" and bare
// "1234.56", with or without a currency symbol. Malformed input is rejected
// with an InvalidInputError; amounts may be negative (refunds and
// corrections are legal expense values).
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, &ledgererror.InvalidInputError{
			Field: "amount",
			Value: amountStr,
			Err:   errEmptyAmount,
		}
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, &ledgererror.InvalidInputError{
			Field: "amount",
			Value: amountStr,
			Err:   err,
		}
	}
	return amount, nil
}

// StandardizeAmount converts various currency string formats to a form that
// decimal.NewFromString accepts. Handles "CHF 1'234.56", "€1.234,56",
// "$1,234.56", "1 234,56" and similar patterns.
func StandardizeAmount(amountStr string) string {
	// Strip currency symbols and whitespace
	amountStr = symbolPattern.ReplaceAllString(amountStr, "")
	amountStr = strings.TrimPrefix(amountStr, "CHF")
	amountStr = strings.TrimPrefix(amountStr, "EUR")

	// European format (1.234,56) -> (1234.56)
	if strings.Contains(amountStr, ",") && strings.Contains(amountStr, ".") {
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	} else if strings.Contains(amountStr, ",") {
		// Comma as decimal separator (1234,56) or thousand separator (1,234)
		parts := strings.Split(amountStr, ",")
		if len(parts[len(parts)-1]) <= 2 {
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	// Apostrophes used as thousand separators (1'234.56)
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	return amountStr
}

// FormatAmount formats a decimal amount for display with two decimal places
// and the configured currency symbol, e.g. "123.45 EUR".
func FormatAmount(amount decimal.Decimal, currency string) string {
	if currency == "" {
		return amount.StringFixed(2)
	}
	return amount.StringFixed(2) + " " + currency
}
