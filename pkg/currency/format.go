package currency

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Glyph resolves the display glyph for an invoice currency code. Anything
// outside EUR and GBP, including unknown codes, renders with "$".
func Glyph(code string) string {
	switch code {
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	default:
		return "$"
	}
}

// Amount renders a stored field as-is: glyph plus the value without forced
// rounding. A stored price of 10 renders as "$10", not "$10.00".
func Amount(code string, v decimal.Decimal) string {
	return Glyph(code) + v.String()
}

// Sum renders a derived sum with exactly two decimal places. Only computed
// values (quantity times price, grand totals of such sums) go through here.
func Sum(code string, v decimal.Decimal) string {
	return Glyph(code) + v.StringFixed(2)
}

// LineTotal renders quantity times unit price for one invoice line.
func LineTotal(code string, quantity int, unitPrice decimal.Decimal) string {
	return Sum(code, unitPrice.Mul(decimal.NewFromInt(int64(quantity))))
}

// Principal renders a transaction principal suffixed with its own currency
// code, which may differ from the invoice currency.
func Principal(v decimal.Decimal, code string) string {
	return v.String() + " " + code
}

// FeeUSD renders the USD-denominated flat fee.
func FeeUSD(v decimal.Decimal) string {
	return "$" + v.StringFixed(2)
}

// GSTINR renders the INR-denominated GST on the fee.
func GSTINR(v decimal.Decimal) string {
	return "₹" + v.StringFixed(2)
}

// Net payouts group with the Indian numbering convention (lakh/crore), not
// Western 3-digit grouping.
var inPrinter = message.NewPrinter(language.MustParse("en-IN"))

// NetPayoutINR renders the INR net payout with two decimals and
// locale-appropriate thousands separators: 1234567.8 -> "₹12,34,567.80".
// The value is formatted from its decimal representation so payouts keep
// every digit regardless of magnitude.
func NetPayoutINR(v decimal.Decimal) string {
	intPart, frac, _ := strings.Cut(v.StringFixed(2), ".")
	if n, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		return "₹" + inPrinter.Sprint(number.Decimal(n)) + "." + frac
	}
	return "₹" + groupIndian(intPart) + "." + frac
}

// groupIndian inserts lakh/crore separators into a plain digit string, for
// integer parts too large for the printer's numeric types.
func groupIndian(digits string) string {
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}
	out := digits[len(digits)-3:]
	rest := digits[:len(digits)-3]
	for len(rest) > 2 {
		out = rest[len(rest)-2:] + "," + out
		rest = rest[:len(rest)-2]
	}
	return sign + rest + "," + out
}
