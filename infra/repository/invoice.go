package repository

import (
	"context"
	"errors"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/repository"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository returns a gorm-backed invoice repository.
func NewInvoiceRepository(db *gorm.DB) repository.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func mapInvoice(m *Invoice) domain.Invoice {
	inv := domain.Invoice{
		ID:            m.ID,
		Status:        domain.InvoiceStatus(m.Status),
		DueDate:       m.DueDate,
		Currency:      m.Currency,
		TotalAmount:   m.TotalAmount,
		ClientID:      m.ClientID,
		PaymentLinkID: m.PaymentLinkID,
		Items:         make([]domain.InvoiceItem, 0, len(m.Items)),
	}
	if m.Client.ID != 0 {
		c := mapClient(&m.Client)
		inv.Client = &c
	}
	for _, it := range m.Items {
		inv.Items = append(inv.Items, domain.InvoiceItem{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return inv
}

func (r *invoiceRepository) Create(ctx context.Context, ownerID int64, inv *domain.Invoice) error {
	m := Invoice{
		Status:        string(inv.Status),
		DueDate:       inv.DueDate,
		Currency:      inv.Currency,
		TotalAmount:   inv.TotalAmount,
		ClientID:      inv.ClientID,
		OwnerID:       ownerID,
		PaymentLinkID: inv.PaymentLinkID,
	}
	for _, it := range inv.Items {
		m.Items = append(m.Items, InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	inv.ID = m.ID
	for i := range m.Items {
		inv.Items[i].ID = m.Items[i].ID
	}
	return nil
}

func (r *invoiceRepository) List(ctx context.Context, ownerID int64) ([]domain.Invoice, error) {
	var ms []Invoice
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Client").
		Where("owner_id = ?", ownerID).Order("id").Find(&ms).Error
	if err != nil {
		return nil, err
	}
	invoices := make([]domain.Invoice, 0, len(ms))
	for i := range ms {
		invoices = append(invoices, mapInvoice(&ms[i]))
	}
	return invoices, nil
}

func (r *invoiceRepository) Get(ctx context.Context, ownerID, id int64) (*domain.Invoice, error) {
	var m Invoice
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Client").
		Where("id = ? AND owner_id = ?", id, ownerID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	inv := mapInvoice(&m)
	return &inv, nil
}

func (r *invoiceRepository) GetByLinkID(ctx context.Context, linkID string) (*domain.Invoice, error) {
	var m Invoice
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Client").
		Where("payment_link_id = ?", linkID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	inv := mapInvoice(&m)
	return &inv, nil
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error {
	return r.db.WithContext(ctx).Model(&Invoice{}).
		Where("id = ?", id).Update("status", string(status)).Error
}
