package gateway

import (
	"encoding/json"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/shopspring/decimal"
)

// Request payloads. Field names mirror what the backend binds.

// ClientInput creates or updates a client.
type ClientInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=100"`
	Address string `json:"address" validate:"max=500"`
}

// ItemInput is one invoice line in a creation request.
type ItemInput struct {
	Description string          `json:"description" validate:"required,max=200"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateInvoiceInput creates an invoice. No total field: the backend
// recomputes it and is the source of truth.
type CreateInvoiceInput struct {
	ClientID int64       `json:"client_id" validate:"required"`
	DueDate  string      `json:"due_date" validate:"required,datetime=2006-01-02"`
	Currency string      `json:"currency" validate:"required,oneof=USD EUR GBP"`
	Items    []ItemInput `json:"items" validate:"required,min=1,dive"`
}

// TriggerPaymentInput drives the public payment simulation.
type TriggerPaymentInput struct {
	PaymentLinkID string `json:"payment_link_id" validate:"required"`
	Status        string `json:"status" validate:"required,oneof=success failed"`
	SenderName    string `json:"sender_name,omitempty" validate:"max=100"`
}

// ProfileInput updates the business profile.
type ProfileInput struct {
	BusinessName    string `json:"business_name" validate:"required,max=100"`
	GSTIN           string `json:"gstin" validate:"max=15"`
	BusinessAddress string `json:"business_address" validate:"max=500"`
}

// Credentials logs in or registers.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Response schemas. Decoded bodies are validated before they are handed to
// a view, so a malformed answer fails fast as ErrMalformedResponse instead
// of leaking zero values into the console.

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type tokenSchema struct {
	AccessToken string `json:"access_token" validate:"required"`
	TokenType   string `json:"token_type" validate:"required"`
}

type clientSchema struct {
	ID      int64  `json:"id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func (s clientSchema) toDomain() domain.Client {
	return domain.Client{ID: s.ID, Name: s.Name, Email: s.Email, Address: s.Address}
}

type itemSchema struct {
	ID          int64           `json:"id"`
	Description string          `json:"description" validate:"required"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type invoiceSchema struct {
	ID            int64           `json:"id" validate:"required"`
	Status        string          `json:"status" validate:"required"`
	DueDate       string          `json:"due_date"`
	Currency      string          `json:"currency" validate:"required,len=3"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	ClientID      int64           `json:"client_id"`
	PaymentLinkID string          `json:"payment_link_id"`
	Client        *clientSchema   `json:"client" validate:"omitempty"`
	Items         []itemSchema    `json:"items" validate:"dive"`
}

func (s invoiceSchema) toDomain() domain.Invoice {
	inv := domain.Invoice{
		ID:            s.ID,
		Status:        domain.InvoiceStatus(s.Status),
		DueDate:       s.DueDate,
		Currency:      s.Currency,
		TotalAmount:   s.TotalAmount,
		ClientID:      s.ClientID,
		PaymentLinkID: s.PaymentLinkID,
	}
	if s.Client != nil {
		c := s.Client.toDomain()
		inv.Client = &c
	}
	for _, it := range s.Items {
		inv.Items = append(inv.Items, domain.InvoiceItem{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return inv
}

type transactionSchema struct {
	ID              int64           `json:"id" validate:"required"`
	InvoiceID       int64           `json:"invoice_id"`
	SenderName      string          `json:"sender_name"`
	PrincipalAmount decimal.Decimal `json:"principal_amount"`
	Currency        string          `json:"currency" validate:"required,len=3"`
	FxRate          decimal.Decimal `json:"fx_rate"`
	FlatFeeUSD      decimal.Decimal `json:"flat_fee_usd"`
	GstOnFeeINR     decimal.Decimal `json:"gst_on_fee_inr"`
	NetPayoutINR    decimal.Decimal `json:"net_payout_inr"`
	Status          string          `json:"status"`
	Settlement      string          `json:"settlement_status" validate:"required"`
}

func (s transactionSchema) toDomain() domain.Transaction {
	return domain.Transaction{
		ID:              s.ID,
		InvoiceID:       s.InvoiceID,
		SenderName:      s.SenderName,
		PrincipalAmount: s.PrincipalAmount,
		Currency:        s.Currency,
		FxRate:          s.FxRate,
		FlatFeeUSD:      s.FlatFeeUSD,
		GstOnFeeINR:     s.GstOnFeeINR,
		NetPayoutINR:    s.NetPayoutINR,
		Status:          domain.TransactionStatus(s.Status),
		Settlement:      domain.SettlementStatus(s.Settlement),
	}
}

type userSchema struct {
	ID                 int64  `json:"id" validate:"required"`
	Email              string `json:"email" validate:"required"`
	IsPaymentOnboarded bool   `json:"is_payment_onboarded"`
	BusinessName       string `json:"business_name"`
	GSTIN              string `json:"gstin"`
	BusinessAddress    string `json:"business_address"`
}

func (s userSchema) toDomain() domain.User {
	return domain.User{
		ID:                 s.ID,
		Email:              s.Email,
		IsPaymentOnboarded: s.IsPaymentOnboarded,
		BusinessName:       s.BusinessName,
		GSTIN:              s.GSTIN,
		BusinessAddress:    s.BusinessAddress,
	}
}

type virtualAccountSchema struct {
	ID            int64  `json:"id" validate:"required"`
	Currency      string `json:"currency" validate:"required,len=3"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	RoutingCode   string `json:"routing_code"`
	Provider      string `json:"provider"`
}

func (s virtualAccountSchema) toDomain() domain.VirtualAccount {
	return domain.VirtualAccount{
		ID:            s.ID,
		Currency:      s.Currency,
		BankName:      s.BankName,
		AccountNumber: s.AccountNumber,
		RoutingCode:   s.RoutingCode,
		Provider:      s.Provider,
	}
}

// KPIs is the dashboard headline block.
type KPIs struct {
	TotalRevenue            float64 `json:"total_revenue"`
	OutstandingAmount       float64 `json:"outstanding_amount"`
	TotalInvoices           int64   `json:"total_invoices"`
	PendingSettlementsCount int64   `json:"pending_settlements_count"`
}

// MonthPoint is one bucket of the revenue-by-month series.
type MonthPoint struct {
	Month   string  `json:"month" validate:"required"`
	Revenue float64 `json:"revenue"`
}

// ClientRevenue is one slice of the revenue-by-client breakdown.
type ClientRevenue struct {
	Name  string  `json:"name" validate:"required"`
	Value float64 `json:"value"`
}

// Dashboard is the full analytics aggregate.
type Dashboard struct {
	KPIs           KPIs            `json:"kpis"`
	MonthlyRevenue []MonthPoint    `json:"monthly_revenue" validate:"dive"`
	ClientRevenue  []ClientRevenue `json:"client_revenue" validate:"dive"`
}

type settleSchema struct {
	SettledCount int64 `json:"settled_count"`
}
