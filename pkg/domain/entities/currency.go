package entities

import "fmt"

// Currency is the closed set of currencies payments can be recorded in.
// DOP is the base (reporting) currency; conversion short-circuits for it.
type Currency int

const (
	DOP Currency = iota
	USD
	EUR
	CNY
)

// IsBase reports whether the currency is the base reporting currency.
func (c Currency) IsBase() bool {
	return c == DOP
}

func (c Currency) String() string {
	switch c {
	case DOP:
		return "DOP"
	case USD:
		return "USD"
	case EUR:
		return "EUR"
	case CNY:
		return "CNY"
	default:
		return "Unknown"
	}
}

// Symbol returns the display symbol used on documents.
func (c Currency) Symbol() string {
	switch c {
	case DOP:
		return "RD$"
	case USD:
		return "US$"
	case EUR:
		return "€"
	case CNY:
		return "¥"
	default:
		return "?"
	}
}

// ParseCurrency parses a currency code or symbol into a Currency.
func ParseCurrency(s string) (Currency, error) {
	switch s {
	case "DOP", "RD$":
		return DOP, nil
	case "USD", "US$":
		return USD, nil
	case "EUR", "€":
		return EUR, nil
	case "CNY", "RMB", "¥":
		return CNY, nil
	default:
		return DOP, fmt.Errorf("invalid currency: %s (expected: DOP, USD, EUR, or CNY)", s)
	}
}
