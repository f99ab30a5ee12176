package gateway

import "context"

// TriggerPayment fires the public payment simulation for a link.
func (g *Gateway) TriggerPayment(ctx context.Context, input TriggerPaymentInput) error {
	if err := g.validate.Struct(input); err != nil {
		return err
	}
	return g.post(ctx, "/mock/payments/trigger-payment", input, nil, false)
}

// Onboard marks the session's user as payment-onboarded.
func (g *Gateway) Onboard(ctx context.Context) error {
	return g.post(ctx, "/mock/payments/onboard", nil, nil, true)
}

// ProcessSettlements converts every pending settlement to SETTLED and
// returns how many were settled.
func (g *Gateway) ProcessSettlements(ctx context.Context) (int64, error) {
	var out settleSchema
	if err := g.post(ctx, "/mock/payments/process-settlements", nil, &out, true); err != nil {
		return 0, err
	}
	return out.SettledCount, nil
}
