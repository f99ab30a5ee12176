// Package repository implements the persistence interfaces on gorm.
package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID                 int64  `gorm:"primaryKey"`
	Email              string `gorm:"uniqueIndex"`
	HashedPassword     string
	IsActive           bool `gorm:"not null;default:true"`
	IsPaymentOnboarded bool `gorm:"not null;default:false"`
	BusinessName       string
	GSTIN              string
	BusinessAddress    string
	CreatedAt          time.Time
}

type Client struct {
	ID      int64  `gorm:"primaryKey"`
	Name    string `gorm:"index"`
	Email   string `gorm:"index"`
	Address string
	OwnerID int64 `gorm:"index"`
}

type Invoice struct {
	ID            int64  `gorm:"primaryKey"`
	Status        string `gorm:"not null;default:unpaid"`
	DueDate       string
	Currency      string
	TotalAmount   decimal.Decimal `gorm:"type:numeric"`
	ClientID      int64           `gorm:"index"`
	OwnerID       int64           `gorm:"index"`
	PaymentLinkID string          `gorm:"uniqueIndex"`
	Client        Client
	Items         []InvoiceItem
	CreatedAt     time.Time
}

type InvoiceItem struct {
	ID          int64 `gorm:"primaryKey"`
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:numeric"`
	InvoiceID   int64           `gorm:"index"`
}

type Transaction struct {
	ID               int64 `gorm:"primaryKey"`
	InvoiceID        int64 `gorm:"index"`
	SenderName       string
	PrincipalAmount  decimal.Decimal `gorm:"type:numeric"`
	Currency         string
	FxRate           decimal.Decimal `gorm:"type:numeric"`
	FlatFeeUSD       decimal.Decimal `gorm:"type:numeric"`
	GstOnFeeINR      decimal.Decimal `gorm:"type:numeric"`
	NetPayoutINR     decimal.Decimal `gorm:"type:numeric"`
	Status           string
	SettlementStatus string `gorm:"index"`
	ProcessedAt      time.Time
}

type VirtualAccount struct {
	ID            int64  `gorm:"primaryKey"`
	UserID        int64  `gorm:"index:idx_va_user_currency,unique"`
	Currency      string `gorm:"index:idx_va_user_currency,unique"`
	BankName      string
	AccountNumber string
	RoutingCode   string
	Provider      string
	CreatedAt     time.Time
}
