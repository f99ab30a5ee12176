package console

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/gateway"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(desc string, qty int, price string) domain.InvoiceItem {
	return domain.InvoiceItem{
		Description: desc,
		Quantity:    qty,
		UnitPrice:   decimal.RequireFromString(price),
	}
}

func validForm() *InvoiceForm {
	f := NewInvoiceForm()
	f.ClientID = 1
	f.DueDate = time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	f.Currency = "GBP"
	f.AddItem(item("Design", 2, "50"))
	f.AddItem(item("Hosting", 1, "20.5"))
	return f
}

func TestInvoiceForm_PreviewTotal(t *testing.T) {
	f := validForm()
	assert.Equal(t, "120.5", f.PreviewTotal().String())
	assert.Equal(t, "£120.50", f.PreviewTotalDisplay())
}

func TestInvoiceForm_PreviewTotalIsOrderIndependent(t *testing.T) {
	a := NewInvoiceForm()
	a.AddItem(item("Design", 2, "50"))
	a.AddItem(item("Hosting", 1, "20.5"))
	a.AddItem(item("Support", 3, "9.99"))

	b := NewInvoiceForm()
	b.AddItem(item("Support", 3, "9.99"))
	b.AddItem(item("Design", 2, "50"))
	b.AddItem(item("Hosting", 1, "20.5"))

	assert.True(t, a.PreviewTotal().Equal(b.PreviewTotal()))
}

func TestInvoiceForm_ItemEditing(t *testing.T) {
	f := NewInvoiceForm()
	f.AddItem(item("One", 1, "10"))
	f.AddItem(item("Two", 1, "20"))
	f.AddItem(item("Three", 1, "30"))

	require.NoError(t, f.RemoveItem(1))
	items := f.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "One", items[0].Description)
	assert.Equal(t, "Three", items[1].Description)

	require.NoError(t, f.UpdateItem(0, item("One", 5, "10")))
	assert.Equal(t, "80", f.PreviewTotal().String())

	assert.ErrorIs(t, f.RemoveItem(5), ErrNoSuchPosition)
	assert.ErrorIs(t, f.UpdateItem(-1, item("X", 1, "1")), ErrNoSuchPosition)
}

func TestInvoiceForm_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*InvoiceForm)
		wantErr error
	}{
		{"valid", func(*InvoiceForm) {}, nil},
		{"no client", func(f *InvoiceForm) { f.ClientID = 0 }, ErrNoClient},
		{"bad due date", func(f *InvoiceForm) { f.DueDate = "soon" }, ErrBadDueDate},
		{"past due date", func(f *InvoiceForm) { f.DueDate = "2020-01-01" }, ErrBadDueDate},
		{"unsupported currency", func(f *InvoiceForm) { f.Currency = "JPY" }, domain.ErrUnsupportedCurrency},
		{"no items", func(f *InvoiceForm) { f.items = nil }, ErrNoItems},
		{"blank description", func(f *InvoiceForm) { f.items[0].Description = "  " }, ErrBadItem},
		{"zero quantity", func(f *InvoiceForm) { f.items[0].Quantity = 0 }, ErrBadItem},
		{"negative price", func(f *InvoiceForm) {
			f.items[0].UnitPrice = decimal.RequireFromString("-1")
		}, ErrBadItem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(f)
			err := f.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestInvoiceForm_DueToday(t *testing.T) {
	f := validForm()
	f.DueDate = time.Now().Format("2006-01-02")
	assert.NoError(t, f.Validate())
}

type fakeCreator struct {
	input *gateway.CreateInvoiceInput
	err   error
}

func (f *fakeCreator) CreateInvoice(_ context.Context, input gateway.CreateInvoiceInput) (*domain.Invoice, error) {
	f.input = &input
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Invoice{ID: 42, Status: domain.InvoiceUnpaid, Currency: input.Currency}, nil
}

func TestInvoiceForm_SubmitNeverSendsPreviewTotal(t *testing.T) {
	f := validForm()
	api := &fakeCreator{}
	inv, err := f.Submit(context.Background(), api)
	require.NoError(t, err)
	assert.EqualValues(t, 42, inv.ID)

	require.NotNil(t, api.input)
	require.Len(t, api.input.Items, 2)
	assert.Equal(t, "Design", api.input.Items[0].Description)
}

func TestInvoiceForm_SubmitFailureKeepsState(t *testing.T) {
	f := validForm()
	api := &fakeCreator{err: errors.New("backend down")}
	_, err := f.Submit(context.Background(), api)
	require.Error(t, err)

	// The operator can fix and retry; nothing was lost.
	assert.Len(t, f.Items(), 2)
	assert.Equal(t, "£120.50", f.PreviewTotalDisplay())
}

func TestInvoiceForm_InvalidFormNeverReachesBackend(t *testing.T) {
	f := validForm()
	f.ClientID = 0
	api := &fakeCreator{}
	_, err := f.Submit(context.Background(), api)
	assert.ErrorIs(t, err, ErrNoClient)
	assert.Nil(t, api.input)
}
