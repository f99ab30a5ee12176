package console

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/gateway"
)

// ErrAlreadyPaid means a simulation was attempted on a page that has
// already reached the terminal paid confirmation.
var ErrAlreadyPaid = errors.New("invoice already paid")

// PaymentAPI is the slice of the gateway the public payment page needs.
type PaymentAPI interface {
	GetPublicInvoice(ctx context.Context, paymentLinkID string) (*domain.Invoice, error)
	TriggerPayment(ctx context.Context, input gateway.TriggerPaymentInput) error
}

// PaymentPage drives the unauthenticated payment simulation view, keyed by
// the opaque payment-link id so the public URL never leaks internal
// invoice ids. Once the page observes paid, whether on first load or after
// a simulated success, the confirmation state is sticky and the simulate
// actions disappear for good.
type PaymentPage struct {
	api    PaymentAPI
	linkID string
	logger *slog.Logger

	mu        sync.Mutex
	invoice   *domain.Invoice
	confirmed bool
	failed    bool
	inFlight  bool
}

// NewPaymentPage creates a page for one payment link.
func NewPaymentPage(api PaymentAPI, linkID string, logger *slog.Logger) *PaymentPage {
	return &PaymentPage{api: api, linkID: linkID, logger: logger}
}

// Load fetches the invoice behind the link. An invoice that is already
// paid puts the page straight into the terminal confirmation state.
func (p *PaymentPage) Load(ctx context.Context) error {
	inv, err := p.api.GetPublicInvoice(ctx, p.linkID)
	if err != nil {
		p.logger.Error("payment page: invoice fetch failed", "link_id", p.linkID, "error", err)
		return err
	}
	p.mu.Lock()
	p.invoice = inv
	if inv.Paid() {
		p.confirmed = true
	}
	p.mu.Unlock()
	return nil
}

// Invoice returns the loaded invoice, nil before Load.
func (p *PaymentPage) Invoice() *domain.Invoice {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.invoice
}

// Confirmed reports whether the terminal payment confirmation is showing.
func (p *PaymentPage) Confirmed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.confirmed
}

// LastAttemptFailed reports whether the most recent simulation failed.
func (p *PaymentPage) LastAttemptFailed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.failed
}

// CanSimulate reports whether the simulate actions are available: not once
// confirmed, and not while a simulation is outstanding.
func (p *PaymentPage) CanSimulate() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.invoice != nil && !p.confirmed && !p.inFlight
}

// SimulateSuccess triggers a successful mock payment. On success the page
// enters the terminal confirmation state directly, without another fetch.
func (p *PaymentPage) SimulateSuccess(ctx context.Context, senderName string) error {
	return p.simulate(ctx, "success", senderName)
}

// SimulateFailure triggers a failed mock payment. The invoice stays
// payable; the page records the failed attempt so the view can surface it.
func (p *PaymentPage) SimulateFailure(ctx context.Context) error {
	return p.simulate(ctx, "failed", "")
}

func (p *PaymentPage) simulate(ctx context.Context, status, senderName string) error {
	p.mu.Lock()
	if p.confirmed {
		p.mu.Unlock()
		return ErrAlreadyPaid
	}
	if p.inFlight {
		p.mu.Unlock()
		return ErrActionInFlight
	}
	p.inFlight = true
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		p.inFlight = false
		p.mu.Unlock()
	}()

	err := p.api.TriggerPayment(ctx, gateway.TriggerPaymentInput{
		PaymentLinkID: p.linkID,
		Status:        status,
		SenderName:    senderName,
	})
	if err != nil {
		p.logger.Error("payment page: simulation failed", "link_id", p.linkID, "error", err)
		return err
	}
	p.mu.Lock()
	if status == "success" {
		p.confirmed = true
		p.failed = false
	} else {
		p.failed = true
	}
	p.mu.Unlock()
	return nil
}
