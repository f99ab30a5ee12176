package gateway

import (
	"context"
	"fmt"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
)

// ListInvoices returns all invoices for the session's user.
func (g *Gateway) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	var out []invoiceSchema
	if err := g.get(ctx, "/invoices/", &out, true); err != nil {
		return nil, err
	}
	invoices := make([]domain.Invoice, 0, len(out))
	for _, inv := range out {
		invoices = append(invoices, inv.toDomain())
	}
	return invoices, nil
}

// CreateInvoice submits a new invoice.
func (g *Gateway) CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error) {
	if err := g.validate.Struct(input); err != nil {
		return nil, err
	}
	var out invoiceSchema
	if err := g.post(ctx, "/invoices/", input, &out, true); err != nil {
		return nil, err
	}
	inv := out.toDomain()
	return &inv, nil
}

// GetInvoice fetches one invoice, items and client included.
func (g *Gateway) GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error) {
	var out invoiceSchema
	if err := g.get(ctx, fmt.Sprintf("/invoices/%d", id), &out, true); err != nil {
		return nil, err
	}
	inv := out.toDomain()
	return &inv, nil
}

// GetInvoiceTransaction fetches the settlement record of a paid invoice.
// A 404 means no settlement data exists yet and returns (nil, nil).
func (g *Gateway) GetInvoiceTransaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	var out transactionSchema
	err := g.get(ctx, fmt.Sprintf("/invoices/%d/transaction", id), &out, true)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	tx := out.toDomain()
	return &tx, nil
}

// GetPublicInvoice fetches an invoice by its opaque payment-link id. No
// authentication: this backs the public payment page.
func (g *Gateway) GetPublicInvoice(ctx context.Context, paymentLinkID string) (*domain.Invoice, error) {
	var out invoiceSchema
	if err := g.get(ctx, "/invoices/public/"+paymentLinkID, &out, false); err != nil {
		return nil, err
	}
	inv := out.toDomain()
	return &inv, nil
}
