// Package console holds the controllers behind each view of the invoicing
// console: the invoice detail watcher, the invoice creation form, the
// dashboard and the public payment page. Controllers own their fetched
// snapshot; there is no shared mutable store between them.
package console

import (
	"context"
	"log/slog"
	"time"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
)

// InvoiceReader is the slice of the gateway the watcher needs.
type InvoiceReader interface {
	GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error)
	GetInvoiceTransaction(ctx context.Context, id int64) (*domain.Transaction, error)
}

// Snapshot is one observation of an invoice. Transaction is non-nil only
// once the invoice is paid and settlement data exists. Err carries a fetch
// failure; the watcher keeps polling through transient errors while the
// invoice is unpaid.
type Snapshot struct {
	Invoice     *domain.Invoice
	Transaction *domain.Transaction
	Err         error
}

// Paid reports whether this observation reached the terminal display state.
func (s Snapshot) Paid() bool {
	return s.Invoice != nil && s.Invoice.Paid()
}

// Watcher polls an invoice at a fixed interval until it is observed paid or
// its context is cancelled, whichever comes first.
type Watcher struct {
	api      InvoiceReader
	interval time.Duration
	logger   *slog.Logger
}

// NewWatcher creates a Watcher polling every interval.
func NewWatcher(api InvoiceReader, interval time.Duration, logger *slog.Logger) *Watcher {
	return &Watcher{api: api, interval: interval, logger: logger}
}

// Watch fetches the invoice immediately, then re-fetches on every tick
// while it is unpaid. The instant a fetch observes paid, polling stops: no
// further invoice fetch is issued, at most one transaction fetch follows,
// and the channel is closed after the final snapshot. Cancelling ctx also
// stops the watcher and closes the channel.
func (w *Watcher) Watch(ctx context.Context, id int64) <-chan Snapshot {
	out := make(chan Snapshot, 1)
	go func() {
		defer close(out)
		if w.step(ctx, id, out) {
			return
		}
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if w.step(ctx, id, out) {
					return
				}
			}
		}
	}()
	return out
}

// step does one poll. It returns true when the watcher must stop.
func (w *Watcher) step(ctx context.Context, id int64, out chan<- Snapshot) bool {
	inv, err := w.api.GetInvoice(ctx, id)
	if err != nil {
		if ctx.Err() != nil {
			return true
		}
		w.logger.Error("watcher: invoice fetch failed", "invoice_id", id, "error", err)
		w.emit(ctx, out, Snapshot{Err: err})
		return false
	}
	snap := Snapshot{Invoice: inv}
	if !inv.Paid() {
		w.emit(ctx, out, snap)
		return false
	}
	tx, err := w.api.GetInvoiceTransaction(ctx, inv.ID)
	if err != nil {
		// No settlement data yet is not an error, but a real failure is
		// still worth logging. Either way the invoice itself renders.
		w.logger.Warn("watcher: transaction fetch failed", "invoice_id", id, "error", err)
	}
	snap.Transaction = tx
	w.emit(ctx, out, snap)
	return true
}

func (w *Watcher) emit(ctx context.Context, out chan<- Snapshot, snap Snapshot) {
	select {
	case out <- snap:
	case <-ctx.Done():
	}
}
