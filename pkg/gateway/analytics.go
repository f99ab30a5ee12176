package gateway

import (
	"context"
	"fmt"
)

// GetDashboard fetches the full analytics aggregate.
func (g *Gateway) GetDashboard(ctx context.Context) (*Dashboard, error) {
	var out Dashboard
	if err := g.get(ctx, "/analytics/dashboard", &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadInvoicePDF fetches the invoice document as raw bytes.
func (g *Gateway) DownloadInvoicePDF(ctx context.Context, id int64) ([]byte, error) {
	return g.download(ctx, fmt.Sprintf("/documents/invoices/%d/download", id))
}

// DownloadFIRA fetches the Foreign Inward Remittance Advice of a paid
// invoice as raw bytes.
func (g *Gateway) DownloadFIRA(ctx context.Context, id int64) ([]byte, error) {
	return g.download(ctx, fmt.Sprintf("/documents/invoices/%d/fira", id))
}
