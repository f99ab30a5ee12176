package fx

import (
	"context"
	"math/rand"

	"github.com/shopspring/decimal"
)

// RateSource provides mid-market rates for currency pairs such as "USD_INR".
type RateSource interface {
	Rate(ctx context.Context, pair string) (decimal.Decimal, error)
}

// MockRateSource returns fixed base rates with a minor fluctuation to
// simulate a live feed. In production this would call out to a rate
// provider; the mock console deliberately does not.
type MockRateSource struct {
	base map[string]decimal.Decimal
}

// NewMockRateSource returns the sandbox rate table.
func NewMockRateSource() *MockRateSource {
	return &MockRateSource{base: map[string]decimal.Decimal{
		"USD_INR": decimal.RequireFromString("83.50"),
		"EUR_INR": decimal.RequireFromString("90.25"),
		"GBP_INR": decimal.RequireFromString("105.80"),
		"CAD_INR": decimal.RequireFromString("61.50"),
	}}
}

// Rate returns the base rate for pair plus a fluctuation in [-0.05, 0.05].
// Unknown pairs convert at 1.0.
func (m *MockRateSource) Rate(_ context.Context, pair string) (decimal.Decimal, error) {
	base, ok := m.base[pair]
	if !ok {
		base = decimal.NewFromInt(1)
	}
	fluctuation := decimal.NewFromFloat(rand.Float64()*0.1 - 0.05).Round(2)
	return base.Add(fluctuation), nil
}

// FixedRateSource always returns the same rate. Test helper.
type FixedRateSource struct {
	Fixed decimal.Decimal
}

func (f FixedRateSource) Rate(context.Context, string) (decimal.Decimal, error) {
	return f.Fixed, nil
}
