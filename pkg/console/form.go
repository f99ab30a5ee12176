package console

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/currency"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/gateway"
	"github.com/shopspring/decimal"
)

var (
	ErrNoClient       = errors.New("a client must be selected")
	ErrNoItems        = errors.New("at least one line item is required")
	ErrBadDueDate     = errors.New("due date must be today or later")
	ErrBadItem        = errors.New("invalid line item")
	ErrNoSuchPosition = errors.New("no item at that position")
)

// InvoiceCreator is the slice of the gateway the form needs.
type InvoiceCreator interface {
	CreateInvoice(ctx context.Context, input gateway.CreateInvoiceInput) (*domain.Invoice, error)
}

// InvoiceForm is the in-progress state of the invoice creation view: an
// ordered list of line items plus the client, currency and due-date
// selectors. The running total it shows is a preview only; the backend
// recomputes the total on creation.
type InvoiceForm struct {
	ClientID int64
	DueDate  string
	Currency string
	items    []domain.InvoiceItem
	now      func() time.Time
}

// NewInvoiceForm creates an empty form defaulting to USD.
func NewInvoiceForm() *InvoiceForm {
	return &InvoiceForm{Currency: currency.DefaultCurrency, now: time.Now}
}

// AddItem appends a line to the end of the item list.
func (f *InvoiceForm) AddItem(item domain.InvoiceItem) {
	f.items = append(f.items, item)
}

// RemoveItem deletes the line at position i, preserving the order of the
// rest.
func (f *InvoiceForm) RemoveItem(i int) error {
	if i < 0 || i >= len(f.items) {
		return ErrNoSuchPosition
	}
	f.items = append(f.items[:i], f.items[i+1:]...)
	return nil
}

// UpdateItem edits the line at position i in place.
func (f *InvoiceForm) UpdateItem(i int, item domain.InvoiceItem) error {
	if i < 0 || i >= len(f.items) {
		return ErrNoSuchPosition
	}
	f.items[i] = item
	return nil
}

// Items returns a copy of the current lines in order.
func (f *InvoiceForm) Items() []domain.InvoiceItem {
	out := make([]domain.InvoiceItem, len(f.items))
	copy(out, f.items)
	return out
}

// PreviewTotal is the running sum of quantity times unit price over all
// lines. Order-independent.
func (f *InvoiceForm) PreviewTotal() decimal.Decimal {
	return domain.InvoiceTotal(f.items)
}

// PreviewTotalDisplay is the preview total formatted for the form footer.
func (f *InvoiceForm) PreviewTotalDisplay() string {
	return currency.Sum(f.Currency, f.PreviewTotal())
}

// Validate checks the form without touching the backend.
func (f *InvoiceForm) Validate() error {
	if f.ClientID == 0 {
		return ErrNoClient
	}
	due, err := time.Parse("2006-01-02", f.DueDate)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrBadDueDate, f.DueDate)
	}
	today := f.now().Format("2006-01-02")
	if due.Format("2006-01-02") < today {
		return ErrBadDueDate
	}
	if !currency.IsSupported(f.Currency) {
		return domain.ErrUnsupportedCurrency
	}
	if len(f.items) == 0 {
		return ErrNoItems
	}
	for i, it := range f.items {
		if strings.TrimSpace(it.Description) == "" {
			return fmt.Errorf("%w: item %d has no description", ErrBadItem, i+1)
		}
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: item %d quantity must be positive", ErrBadItem, i+1)
		}
		if it.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: item %d unit price must not be negative", ErrBadItem, i+1)
		}
	}
	return nil
}

// Submit validates and creates the invoice. On failure the form keeps its
// state so the operator can fix and retry; nothing is persisted partially.
func (f *InvoiceForm) Submit(ctx context.Context, api InvoiceCreator) (*domain.Invoice, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	input := gateway.CreateInvoiceInput{
		ClientID: f.ClientID,
		DueDate:  f.DueDate,
		Currency: f.Currency,
	}
	for _, it := range f.items {
		input.Items = append(input.Items, gateway.ItemInput{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return api.CreateInvoice(ctx, input)
}
