// Package invoice provides invoice creation and lookup business logic.
package invoice

import (
	"context"
	"log/slog"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/currency"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/repository"
	"github.com/google/uuid"
)

// Service provides owner-scoped invoice operations.
type Service struct {
	invoices     repository.InvoiceRepository
	clients      repository.ClientRepository
	transactions repository.TransactionRepository
	logger       *slog.Logger
}

// New creates an invoice Service.
func New(
	invoices repository.InvoiceRepository,
	clients repository.ClientRepository,
	transactions repository.TransactionRepository,
	logger *slog.Logger,
) *Service {
	return &Service{
		invoices:     invoices,
		clients:      clients,
		transactions: transactions,
		logger:       logger,
	}
}

// CreateInput is what a client submits to create an invoice. The preview
// total a form may have shown is deliberately absent: the server is the
// source of truth for the total.
type CreateInput struct {
	ClientID int64
	DueDate  string
	Currency string
	Items    []domain.InvoiceItem
}

// Create validates the input, derives the total as the sum over items of
// quantity times unit price, assigns an opaque payment-link id and persists
// the invoice in the unpaid state.
func (s *Service) Create(ctx context.Context, ownerID int64, in CreateInput) (*domain.Invoice, error) {
	if !currency.IsSupported(in.Currency) {
		return nil, domain.ErrUnsupportedCurrency
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrNoInvoiceItems
	}
	// The client must belong to the caller.
	if _, err := s.clients.Get(ctx, ownerID, in.ClientID); err != nil {
		return nil, err
	}

	inv := domain.Invoice{
		Status:        domain.InvoiceUnpaid,
		DueDate:       in.DueDate,
		Currency:      in.Currency,
		ClientID:      in.ClientID,
		TotalAmount:   domain.InvoiceTotal(in.Items),
		PaymentLinkID: uuid.NewString(),
		Items:         in.Items,
	}
	if err := s.invoices.Create(ctx, ownerID, &inv); err != nil {
		return nil, err
	}
	s.logger.Info("invoice: created",
		"owner_id", ownerID, "invoice_id", inv.ID, "total", inv.TotalAmount)
	return &inv, nil
}

func (s *Service) List(ctx context.Context, ownerID int64) ([]domain.Invoice, error) {
	return s.invoices.List(ctx, ownerID)
}

func (s *Service) Get(ctx context.Context, ownerID, id int64) (*domain.Invoice, error) {
	return s.invoices.Get(ctx, ownerID, id)
}

// GetPublic resolves an invoice by its opaque payment-link id. The numeric
// id never appears in public URLs.
func (s *Service) GetPublic(ctx context.Context, linkID string) (*domain.Invoice, error) {
	return s.invoices.GetByLinkID(ctx, linkID)
}

// GetTransaction returns the settlement record for an owned invoice.
// domain.ErrNotFound means no settlement exists yet, which callers treat as
// an expected absence.
func (s *Service) GetTransaction(ctx context.Context, ownerID, invoiceID int64) (*domain.Transaction, error) {
	if _, err := s.invoices.Get(ctx, ownerID, invoiceID); err != nil {
		return nil, err
	}
	return s.transactions.GetByInvoice(ctx, invoiceID)
}
