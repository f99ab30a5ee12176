// Package payment implements the mock payment provider: webhook-style
// payment receipt, FX locking and bulk settlement processing.
package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/fx"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/repository"
	"github.com/shopspring/decimal"
)

const defaultSenderName = "Mock Payer Inc."

// Service glues invoices, transactions and the FX engine into the payment
// receipt flow.
type Service struct {
	invoices     repository.InvoiceRepository
	transactions repository.TransactionRepository
	engine       *fx.Engine
	logger       *slog.Logger
}

// New creates a payment Service.
func New(
	invoices repository.InvoiceRepository,
	transactions repository.TransactionRepository,
	engine *fx.Engine,
	logger *slog.Logger,
) *Service {
	return &Service{
		invoices:     invoices,
		transactions: transactions,
		engine:       engine,
		logger:       logger,
	}
}

// ReceivedPayload mimics a bank webhook fired when funds hit a virtual
// account. Reference carries the payment-link id for reconciliation.
type ReceivedPayload struct {
	SenderName string
	Amount     decimal.Decimal
	Currency   string
	Reference  string
}

// HandlePaymentReceived reconciles the payload against an invoice, locks an
// FX quote, records the transaction and flips the invoice to paid. A second
// webhook for an already-paid invoice is ignored and returns (nil, nil).
func (s *Service) HandlePaymentReceived(ctx context.Context, payload ReceivedPayload) (*domain.Transaction, error) {
	inv, err := s.invoices.GetByLinkID(ctx, payload.Reference)
	if err != nil {
		return nil, err
	}
	if inv.Paid() {
		s.logger.Info("payment: duplicate webhook ignored", "invoice_id", inv.ID)
		return nil, nil
	}

	quote, err := s.engine.CalculatePayout(ctx, payload.Amount, payload.Currency)
	if err != nil {
		return nil, err
	}

	tx := domain.Transaction{
		InvoiceID:       inv.ID,
		SenderName:      payload.SenderName,
		PrincipalAmount: quote.PrincipalAmount,
		Currency:        quote.Currency,
		FxRate:          quote.FxRate,
		FlatFeeUSD:      quote.FlatFeeUSD,
		GstOnFeeINR:     quote.GstOnFeeINR,
		NetPayoutINR:    quote.NetPayoutINR,
		Status:          domain.TransactionSucceeded,
		Settlement:      domain.SettlementProcessing,
		ProcessedAt:     time.Now().UTC(),
	}
	if err := s.transactions.Create(ctx, &tx); err != nil {
		return nil, err
	}
	if err := s.invoices.UpdateStatus(ctx, inv.ID, domain.InvoicePaid); err != nil {
		return nil, err
	}
	s.logger.Info("payment: processed",
		"invoice_id", inv.ID,
		"fx_rate", quote.FxRate,
		"net_payout_inr", quote.NetPayoutINR)
	return &tx, nil
}

// TriggerPayment simulates the payer pressing a pay button on the public
// page. A success runs the full webhook flow against the invoice amount;
// a failure marks the invoice failed without creating a transaction.
func (s *Service) TriggerPayment(ctx context.Context, linkID, status, senderName string) (*domain.Transaction, error) {
	inv, err := s.invoices.GetByLinkID(ctx, linkID)
	if err != nil {
		return nil, err
	}
	if status != "success" {
		if err := s.invoices.UpdateStatus(ctx, inv.ID, domain.InvoiceFailed); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if senderName == "" {
		senderName = defaultSenderName
	}
	cur := inv.Currency
	if cur == "" {
		cur = "USD"
	}
	return s.HandlePaymentReceived(ctx, ReceivedPayload{
		SenderName: senderName,
		Amount:     inv.TotalAmount,
		Currency:   cur,
		Reference:  linkID,
	})
}

// ProcessSettlements simulates the local-out settlement layer: every
// PROCESSING transaction owned by the caller becomes SETTLED.
func (s *Service) ProcessSettlements(ctx context.Context, ownerID int64) (int64, error) {
	count, err := s.transactions.SettleProcessing(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	s.logger.Info("payment: settlements processed", "owner_id", ownerID, "count", count)
	return count, nil
}
