// Package repository defines the persistence interfaces consumed by the
// service layer. Implementations live under infra/repository.
package repository

import (
	"context"
	"time"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/shopspring/decimal"
)

// UserRecord carries the stored user together with its credential hash.
// The hash never leaves the auth service.
type UserRecord struct {
	domain.User
	HashedPassword string
}

// ProfileUpdate is the mutable business-profile slice of a user.
type ProfileUpdate struct {
	BusinessName    string
	GSTIN           string
	BusinessAddress string
}

type UserRepository interface {
	Create(ctx context.Context, email, hashedPassword string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*UserRecord, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	SetOnboarded(ctx context.Context, id int64, onboarded bool) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, p ProfileUpdate) (*domain.User, error)
}

type ClientRepository interface {
	Create(ctx context.Context, ownerID int64, c *domain.Client) error
	List(ctx context.Context, ownerID int64) ([]domain.Client, error)
	Get(ctx context.Context, ownerID, id int64) (*domain.Client, error)
	Update(ctx context.Context, ownerID, id int64, c domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, ownerID, id int64) error
}

type InvoiceRepository interface {
	// Create persists the invoice with its items and fills generated ids.
	Create(ctx context.Context, ownerID int64, inv *domain.Invoice) error
	List(ctx context.Context, ownerID int64) ([]domain.Invoice, error)
	Get(ctx context.Context, ownerID, id int64) (*domain.Invoice, error)
	// GetByLinkID looks an invoice up by its opaque payment-link id,
	// regardless of owner. Serves the unauthenticated payment page.
	GetByLinkID(ctx context.Context, linkID string) (*domain.Invoice, error)
	UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error
}

// SettledAmount is one settled payout used for the monthly revenue series.
type SettledAmount struct {
	ProcessedAt time.Time
	Amount      decimal.Decimal
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	// GetByInvoice returns domain.ErrNotFound while no settlement exists.
	GetByInvoice(ctx context.Context, invoiceID int64) (*domain.Transaction, error)
	// SettleProcessing flips every PROCESSING transaction owned by ownerID
	// to SETTLED and returns how many changed.
	SettleProcessing(ctx context.Context, ownerID int64) (int64, error)
	ListAmounts(ctx context.Context, ownerID int64) ([]SettledAmount, error)
}

type VirtualAccountRepository interface {
	Create(ctx context.Context, userID int64, va *domain.VirtualAccount) error
	ListByUser(ctx context.Context, userID int64) ([]domain.VirtualAccount, error)
}

// KPIs is the dashboard summary block.
type KPIs struct {
	TotalRevenue            float64 `json:"total_revenue"`
	OutstandingAmount       float64 `json:"outstanding_amount"`
	TotalInvoices           int64   `json:"total_invoices"`
	PendingSettlementsCount int64   `json:"pending_settlements_count"`
}

// ClientRevenue is one slice of the revenue-by-client breakdown.
type ClientRevenue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type AnalyticsRepository interface {
	KPIs(ctx context.Context, ownerID int64) (*KPIs, error)
	ClientRevenue(ctx context.Context, ownerID int64) ([]ClientRevenue, error)
}
