// Package currency holds currency metadata and the display-formatting
// contract used by every money value the console shows.
package currency

import "sort"

const (
	// DefaultCurrency is the fallback currency code.
	DefaultCurrency = "USD"
	// DefaultDecimals is the default number of decimal places.
	DefaultDecimals = 2
)

// Meta holds currency-specific metadata.
type Meta struct {
	Decimals  int
	Symbol    string
	Invoicing bool // may be selected as an invoice currency
}

var registry = map[string]Meta{
	"USD": {Decimals: 2, Symbol: "$", Invoicing: true},
	"EUR": {Decimals: 2, Symbol: "€", Invoicing: true},
	"GBP": {Decimals: 2, Symbol: "£", Invoicing: true},
	"INR": {Decimals: 2, Symbol: "₹"},
}

// Get returns metadata for code, falling back to defaults for unknown codes.
func Get(code string) Meta {
	if m, ok := registry[code]; ok {
		return m
	}
	return Meta{Decimals: DefaultDecimals, Symbol: code}
}

// IsSupported reports whether code may be used on a new invoice.
func IsSupported(code string) bool {
	return Get(code).Invoicing
}

// Supported returns the closed set of invoice currencies, sorted.
func Supported() []string {
	var codes []string
	for code, m := range registry {
		if m.Invoicing {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}
