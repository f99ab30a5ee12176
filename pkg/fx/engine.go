// Package fx locks mid-market rates and computes INR payouts for received
// foreign payments. It exists to produce the settlement breakdown the
// console consumes; it is not a general FX library.
package fx

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// FlatFeeUSD is the flat platform fee deducted from the principal.
	FlatFeeUSD = decimal.RequireFromString("29.00")
	// GSTRate is the GST applied to the flat fee, in INR terms.
	GSTRate = decimal.RequireFromString("0.18")
)

// Quote is the full breakdown of one FX deal.
type Quote struct {
	PrincipalAmount decimal.Decimal
	Currency        string
	FlatFeeUSD      decimal.Decimal
	FxRate          decimal.Decimal
	GrossINR        decimal.Decimal
	FlatFeeINR      decimal.Decimal
	GstOnFeeINR     decimal.Decimal
	NetPayoutINR    decimal.Decimal
}

// Engine computes payouts against a rate source.
type Engine struct {
	rates RateSource
}

// NewEngine returns an Engine backed by src.
func NewEngine(src RateSource) *Engine {
	return &Engine{rates: src}
}

// CalculatePayout locks a rate for currency→INR and computes the payout:
//
//	gross      = (principal − flat fee) × rate
//	fee (INR)  = flat fee × rate
//	GST (INR)  = fee × 18%
//	net payout = gross − GST
//
// All INR figures round half-up to two decimals.
func (e *Engine) CalculatePayout(ctx context.Context, principal decimal.Decimal, currency string) (*Quote, error) {
	pair := fmt.Sprintf("%s_INR", currency)
	rate, err := e.rates.Rate(ctx, pair)
	if err != nil {
		return nil, fmt.Errorf("fx: rate for %s: %w", pair, err)
	}

	netForeign := principal.Sub(FlatFeeUSD)
	grossINR := netForeign.Mul(rate).Round(2)
	flatFeeINR := FlatFeeUSD.Mul(rate).Round(2)
	gstOnFeeINR := flatFeeINR.Mul(GSTRate).Round(2)
	netPayoutINR := grossINR.Sub(gstOnFeeINR).Round(2)

	return &Quote{
		PrincipalAmount: principal,
		Currency:        currency,
		FlatFeeUSD:      FlatFeeUSD,
		FxRate:          rate,
		GrossINR:        grossINR,
		FlatFeeINR:      flatFeeINR,
		GstOnFeeINR:     gstOnFeeINR,
		NetPayoutINR:    netPayoutINR,
	}, nil
}
