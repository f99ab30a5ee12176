// Package domain holds the entities shared by the API server, the HTTP
// gateway and the console controllers.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice. The console only
// branches on paid vs. everything else; the backend may hold finer states.
type InvoiceStatus string

const (
	InvoiceUnpaid InvoiceStatus = "unpaid"
	InvoicePaid   InvoiceStatus = "paid"
	InvoiceFailed InvoiceStatus = "failed"
)

// Invoice is a client-facing invoice. TotalAmount is derived server-side as
// the sum over items of quantity times unit price; clients never recompute
// it after creation except for live form previews.
type Invoice struct {
	ID            int64           `json:"id"`
	Status        InvoiceStatus   `json:"status"`
	DueDate       string          `json:"due_date"`
	Currency      string          `json:"currency"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	ClientID      int64           `json:"client_id"`
	PaymentLinkID string          `json:"payment_link_id,omitempty"`
	Client        *Client         `json:"client,omitempty"`
	Items         []InvoiceItem   `json:"items"`
}

// Paid reports whether the invoice reached its terminal display state.
func (i *Invoice) Paid() bool { return i.Status == InvoicePaid }

// InvoiceItem is a single line on an invoice. Items are owned by their
// invoice and are only editable before the invoice is created.
type InvoiceItem struct {
	ID          int64           `json:"id,omitempty"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Total returns quantity times unit price for this line.
func (it InvoiceItem) Total() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// InvoiceTotal sums line totals. Order-independent by construction.
func InvoiceTotal(items []InvoiceItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Total())
	}
	return total
}

// TransactionStatus describes the outcome of a payment attempt.
type TransactionStatus string

const (
	TransactionSucceeded TransactionStatus = "succeeded"
	TransactionFailed    TransactionStatus = "failed"
)

// SettlementStatus tracks the local payout leg of a received payment.
type SettlementStatus string

const (
	SettlementProcessing SettlementStatus = "PROCESSING"
	SettlementSettled    SettlementStatus = "SETTLED"
)

// Transaction is the settlement record created when funds hit a virtual
// account. At most one exists per paid invoice. All monetary fields carry
// their own currency context: the principal is in the payer's currency, the
// flat fee in USD, GST and net payout in INR.
type Transaction struct {
	ID              int64             `json:"id"`
	InvoiceID       int64             `json:"invoice_id"`
	SenderName      string            `json:"sender_name"`
	PrincipalAmount decimal.Decimal   `json:"principal_amount"`
	Currency        string            `json:"currency"`
	FxRate          decimal.Decimal   `json:"fx_rate"`
	FlatFeeUSD      decimal.Decimal   `json:"flat_fee_usd"`
	GstOnFeeINR     decimal.Decimal   `json:"gst_on_fee_inr"`
	NetPayoutINR    decimal.Decimal   `json:"net_payout_inr"`
	Status          TransactionStatus `json:"status"`
	Settlement      SettlementStatus  `json:"settlement_status"`
	ProcessedAt     time.Time         `json:"processed_at"`
}
