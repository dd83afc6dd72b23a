package cartera

import (
	"fmt"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// NormalizeTicker upper-cases and trims a ticker symbol. Tickers are
// case-normalized everywhere so that "ko" and "KO" name the same asset.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// ValidateCurrency checks that a currency code is a known ISO code.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency code %q", code)
	}
	return nil
}

// dateFormats accepted on input, from the most to the least specific.
var dateFormats = []string{time.RFC3339, "2006-01-02"}

// ParseDate parses an ISO-8601 timestamp, also accepting a bare day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected ISO-8601", s)
}

// ParseDecimalInput parses a human-typed number, tolerating both decimal
// comma and decimal dot conventions with thousand separators:
//
//	"1.234,56" -> 1234.56
//	"1,234.56" -> 1234.56
//	"1,5"      -> 1.5
//
// When both separators appear, the right-most one is taken as the decimal
// mark. A lone separator repeated more than once is treated as a thousands
// mark and stripped. Input that still fails to parse is rejected.
func ParseDecimalInput(value string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(value)
	if clean == "" {
		return decimal.Decimal{}, fmt.Errorf("empty number")
	}

	if strings.Contains(clean, ",") && strings.Contains(clean, ".") {
		if strings.LastIndex(clean, ",") > strings.LastIndex(clean, ".") {
			clean = strings.ReplaceAll(clean, ".", "")
			clean = strings.Replace(clean, ",", ".", 1)
		} else {
			clean = strings.ReplaceAll(clean, ",", "")
		}
	} else {
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	if strings.Count(clean, ".") > 1 {
		clean = strings.ReplaceAll(clean, ".", "")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid number %q", value)
	}
	return d, nil
}
