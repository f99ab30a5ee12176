package repository

import (
	"context"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/repository"
	"gorm.io/gorm"
)

type virtualAccountRepository struct {
	db *gorm.DB
}

// NewVirtualAccountRepository returns a gorm-backed virtual account repository.
func NewVirtualAccountRepository(db *gorm.DB) repository.VirtualAccountRepository {
	return &virtualAccountRepository{db: db}
}

func (r *virtualAccountRepository) Create(ctx context.Context, userID int64, va *domain.VirtualAccount) error {
	m := VirtualAccount{
		UserID:        userID,
		Currency:      va.Currency,
		BankName:      va.BankName,
		AccountNumber: va.AccountNumber,
		RoutingCode:   va.RoutingCode,
		Provider:      va.Provider,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	va.ID = m.ID
	return nil
}

func (r *virtualAccountRepository) ListByUser(ctx context.Context, userID int64) ([]domain.VirtualAccount, error) {
	var ms []VirtualAccount
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}
	accounts := make([]domain.VirtualAccount, 0, len(ms))
	for _, m := range ms {
		accounts = append(accounts, domain.VirtualAccount{
			ID:            m.ID,
			Currency:      m.Currency,
			BankName:      m.BankName,
			AccountNumber: m.AccountNumber,
			RoutingCode:   m.RoutingCode,
			Provider:      m.Provider,
		})
	}
	return accounts, nil
}
