// Package pdf renders invoice and FIRA documents.
package pdf

import (
	"fmt"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/currency"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Generator renders the downloadable documents for invoices.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Invoice renders the invoice document: header, bill-to block, item table
// and grand total.
func (g *Generator) Invoice(inv *domain.Invoice, business *domain.User) ([]byte, error) {
	m := maroto.New(config.NewBuilder().Build())

	businessName := "Skydo Mock"
	if business != nil && business.BusinessName != "" {
		businessName = business.BusinessName
	}
	m.AddRow(12,
		col.New(8).Add(
			text.New(businessName, props.Text{Size: 16, Style: fontstyle.Bold}),
		),
		col.New(4).Add(
			text.New("INVOICE", props.Text{Size: 20, Style: fontstyle.Bold, Align: align.Right}),
		),
	)
	m.AddRow(6,
		col.New(8),
		col.New(4).Add(
			text.New(fmt.Sprintf("Invoice #: %d", inv.ID), props.Text{Size: 10, Align: align.Right}),
		),
	)
	m.AddRow(6,
		col.New(8),
		col.New(4).Add(
			text.New(fmt.Sprintf("Due: %s", inv.DueDate), props.Text{Size: 10, Align: align.Right}),
		),
	)

	if inv.Client != nil {
		m.AddRow(8, col.New(12).Add(
			text.New("Bill To", props.Text{Size: 10, Style: fontstyle.Bold}),
		))
		m.AddRow(5, col.New(12).Add(text.New(inv.Client.Name, props.Text{Size: 9})))
		m.AddRow(5, col.New(12).Add(text.New(inv.Client.Email, props.Text{Size: 9})))
		if inv.Client.Address != "" {
			m.AddRow(5, col.New(12).Add(text.New(inv.Client.Address, props.Text{Size: 9})))
		}
	}

	m.AddRow(8,
		col.New(6).Add(text.New("Item", props.Text{Size: 9, Style: fontstyle.Bold})),
		col.New(2).Add(text.New("Qty", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
		col.New(2).Add(text.New("Price", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
		col.New(2).Add(text.New("Total", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
	)
	for _, it := range inv.Items {
		m.AddRow(6,
			col.New(6).Add(text.New(it.Description, props.Text{Size: 9})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 9, Align: align.Right})),
			col.New(2).Add(text.New(currency.Amount(inv.Currency, it.UnitPrice), props.Text{Size: 9, Align: align.Right})),
			col.New(2).Add(text.New(currency.LineTotal(inv.Currency, it.Quantity, it.UnitPrice), props.Text{Size: 9, Align: align.Right})),
		)
	}
	m.AddRow(10,
		col.New(10).Add(text.New("Total Amount", props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right})),
		col.New(2).Add(text.New(currency.Amount(inv.Currency, inv.TotalAmount), props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right})),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

// FIRA renders the Foreign Inward Remittance Advice for a paid invoice,
// including the locked FX breakdown from its settlement transaction.
func (g *Generator) FIRA(inv *domain.Invoice, tx *domain.Transaction, business *domain.User) ([]byte, error) {
	m := maroto.New(config.NewBuilder().Build())

	m.AddRow(12, col.New(12).Add(
		text.New("FOREIGN INWARD REMITTANCE ADVICE", props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Center}),
	))
	if business != nil {
		if business.BusinessName != "" {
			m.AddRow(6, col.New(12).Add(text.New(business.BusinessName, props.Text{Size: 10})))
		}
		if business.GSTIN != "" {
			m.AddRow(6, col.New(12).Add(text.New("GSTIN: "+business.GSTIN, props.Text{Size: 9})))
		}
	}
	m.AddRow(6, col.New(12).Add(
		text.New(fmt.Sprintf("Invoice #: %d", inv.ID), props.Text{Size: 9}),
	))

	rows := [][2]string{
		{"Remitter", tx.SenderName},
		{"Principal Amount", currency.Principal(tx.PrincipalAmount, tx.Currency)},
		{"FX Rate (locked)", tx.FxRate.String()},
		{"Flat Fee", currency.FeeUSD(tx.FlatFeeUSD)},
		{"GST on Fee", currency.GSTINR(tx.GstOnFeeINR)},
		{"Net Payout", currency.NetPayoutINR(tx.NetPayoutINR)},
		{"Settlement Status", string(tx.Settlement)},
		{"Processed At", tx.ProcessedAt.Format("2006-01-02 15:04:05 MST")},
	}
	for _, r := range rows {
		m.AddRow(7,
			col.New(5).Add(text.New(r[0], props.Text{Size: 9, Style: fontstyle.Bold})),
			col.New(7).Add(text.New(r[1], props.Text{Size: 9})),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}
