package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGlyph(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"EUR", "€"},
		{"GBP", "£"},
		{"USD", "$"},
		{"INR", "$"},
		{"XYZ", "$"},
		{"", "$"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, Glyph(tt.code))
		})
	}
}

func TestAmount_DisplaysAsStored(t *testing.T) {
	// Raw backend values keep their stored precision; no forced rounding.
	assert.Equal(t, "$10", Amount("USD", decimal.NewFromInt(10)))
	assert.Equal(t, "$20.00", Amount("USD", decimal.RequireFromString("20.00")))
	assert.Equal(t, "€99.9", Amount("EUR", decimal.RequireFromString("99.9")))
}

func TestSum_ForcesTwoDecimals(t *testing.T) {
	assert.Equal(t, "$20.00", Sum("USD", decimal.NewFromInt(20)))
	assert.Equal(t, "£120.50", Sum("GBP", decimal.RequireFromString("120.5")))
}

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		quantity int
		price    string
		expected string
	}{
		{"three at ten in euros", "EUR", 3, "10", "€30.00"},
		{"two at fifty in pounds", "GBP", 2, "50", "£100.00"},
		{"one at twenty and a half", "GBP", 1, "20.5", "£20.50"},
		{"unpriced line", "USD", 4, "0", "$0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineTotal(tt.code, tt.quantity, decimal.RequireFromString(tt.price))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInvoiceScenario_GBP(t *testing.T) {
	design := decimal.NewFromInt(50).Mul(decimal.NewFromInt(2))
	hosting := decimal.RequireFromString("20.5")
	total := design.Add(hosting)
	assert.Equal(t, "120.5", total.String())
	assert.Equal(t, "£120.50", Sum("GBP", total))
}

func TestPrincipal_SuffixedWithOwnCurrency(t *testing.T) {
	assert.Equal(t, "1500 EUR", Principal(decimal.NewFromInt(1500), "EUR"))
	assert.Equal(t, "200.5 USD", Principal(decimal.RequireFromString("200.5"), "USD"))
}

func TestFeeAndGSTGlyphs(t *testing.T) {
	assert.Equal(t, "$29.00", FeeUSD(decimal.NewFromInt(29)))
	assert.Equal(t, "₹435.93", GSTINR(decimal.RequireFromString("435.93")))
}

func TestNetPayoutINR_IndianGrouping(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{"1234567.8", "₹12,34,567.80"},
		{"100000", "₹1,00,000.00"},
		{"999", "₹999.00"},
		{"1000", "₹1,000.00"},
		{"12345678.99", "₹1,23,45,678.99"},
		// Magnitudes past float64's 53-bit mantissa keep every digit.
		{"90071992547409931.25", "₹90,07,19,92,54,74,09,931.25"},
		{"12345678901234567890.5", "₹1,23,45,67,89,01,23,45,67,890.50"},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got := NetPayoutINR(decimal.RequireFromString(tt.value))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSupported(t *testing.T) {
	assert.Equal(t, []string{"EUR", "GBP", "USD"}, Supported())
	assert.True(t, IsSupported("USD"))
	assert.False(t, IsSupported("INR"))
	assert.False(t, IsSupported("JPY"))
}
