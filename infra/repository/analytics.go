package repository

import (
	"context"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository returns a gorm-backed analytics repository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) KPIs(ctx context.Context, ownerID int64) (*repository.KPIs, error) {
	var kpis repository.KPIs

	err := r.db.WithContext(ctx).Model(&Invoice{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("owner_id = ? AND status = ?", ownerID, string(domain.InvoicePaid)).
		Scan(&kpis.TotalRevenue).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&Invoice{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("owner_id = ? AND status <> ?", ownerID, string(domain.InvoicePaid)).
		Scan(&kpis.OutstandingAmount).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&Invoice{}).
		Where("owner_id = ?", ownerID).
		Count(&kpis.TotalInvoices).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&Transaction{}).
		Where("settlement_status = ?", string(domain.SettlementProcessing)).
		Where("invoice_id IN (?)",
			r.db.Model(&Invoice{}).Select("id").Where("owner_id = ?", ownerID)).
		Count(&kpis.PendingSettlementsCount).Error
	if err != nil {
		return nil, err
	}

	return &kpis, nil
}

func (r *analyticsRepository) ClientRevenue(ctx context.Context, ownerID int64) ([]repository.ClientRevenue, error) {
	var rows []repository.ClientRevenue
	err := r.db.WithContext(ctx).Model(&Invoice{}).
		Select("clients.name AS name, SUM(invoices.total_amount) AS value").
		Joins("JOIN clients ON clients.id = invoices.client_id").
		Where("invoices.owner_id = ? AND invoices.status = ?", ownerID, string(domain.InvoicePaid)).
		Group("clients.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
