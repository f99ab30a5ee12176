package repository

import (
	"context"
	"errors"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/repository"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository returns a gorm-backed transaction repository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func mapTransaction(m *Transaction) domain.Transaction {
	return domain.Transaction{
		ID:              m.ID,
		InvoiceID:       m.InvoiceID,
		SenderName:      m.SenderName,
		PrincipalAmount: m.PrincipalAmount,
		Currency:        m.Currency,
		FxRate:          m.FxRate,
		FlatFeeUSD:      m.FlatFeeUSD,
		GstOnFeeINR:     m.GstOnFeeINR,
		NetPayoutINR:    m.NetPayoutINR,
		Status:          domain.TransactionStatus(m.Status),
		Settlement:      domain.SettlementStatus(m.SettlementStatus),
		ProcessedAt:     m.ProcessedAt,
	}
}

func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	m := Transaction{
		InvoiceID:        tx.InvoiceID,
		SenderName:       tx.SenderName,
		PrincipalAmount:  tx.PrincipalAmount,
		Currency:         tx.Currency,
		FxRate:           tx.FxRate,
		FlatFeeUSD:       tx.FlatFeeUSD,
		GstOnFeeINR:      tx.GstOnFeeINR,
		NetPayoutINR:     tx.NetPayoutINR,
		Status:           string(tx.Status),
		SettlementStatus: string(tx.Settlement),
		ProcessedAt:      tx.ProcessedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	tx.ID = m.ID
	return nil
}

func (r *transactionRepository) GetByInvoice(ctx context.Context, invoiceID int64) (*domain.Transaction, error) {
	var m Transaction
	err := r.db.WithContext(ctx).Where("invoice_id = ?", invoiceID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	tx := mapTransaction(&m)
	return &tx, nil
}

func (r *transactionRepository) SettleProcessing(ctx context.Context, ownerID int64) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Transaction{}).
		Where("settlement_status = ?", string(domain.SettlementProcessing)).
		Where("invoice_id IN (?)",
			r.db.Model(&Invoice{}).Select("id").Where("owner_id = ?", ownerID)).
		Update("settlement_status", string(domain.SettlementSettled))
	return res.RowsAffected, res.Error
}

func (r *transactionRepository) ListAmounts(ctx context.Context, ownerID int64) ([]repository.SettledAmount, error) {
	var ms []Transaction
	err := r.db.WithContext(ctx).
		Where("invoice_id IN (?)",
			r.db.Model(&Invoice{}).Select("id").Where("owner_id = ?", ownerID)).
		Order("processed_at").Find(&ms).Error
	if err != nil {
		return nil, err
	}
	amounts := make([]repository.SettledAmount, 0, len(ms))
	for _, m := range ms {
		amounts = append(amounts, repository.SettledAmount{
			ProcessedAt: m.ProcessedAt,
			Amount:      m.NetPayoutINR,
		})
	}
	return amounts, nil
}
