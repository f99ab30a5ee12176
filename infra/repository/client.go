package repository

import (
	"context"
	"errors"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/repository"
	"gorm.io/gorm"
)

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository returns a gorm-backed client repository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func mapClient(m *Client) domain.Client {
	return domain.Client{ID: m.ID, Name: m.Name, Email: m.Email, Address: m.Address}
}

func (r *clientRepository) Create(ctx context.Context, ownerID int64, c *domain.Client) error {
	m := Client{Name: c.Name, Email: c.Email, Address: c.Address, OwnerID: ownerID}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	c.ID = m.ID
	return nil
}

func (r *clientRepository) List(ctx context.Context, ownerID int64) ([]domain.Client, error) {
	var ms []Client
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}
	clients := make([]domain.Client, 0, len(ms))
	for i := range ms {
		clients = append(clients, mapClient(&ms[i]))
	}
	return clients, nil
}

func (r *clientRepository) Get(ctx context.Context, ownerID, id int64) (*domain.Client, error) {
	var m Client
	err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	c := mapClient(&m)
	return &c, nil
}

func (r *clientRepository) Update(ctx context.Context, ownerID, id int64, c domain.Client) (*domain.Client, error) {
	if _, err := r.Get(ctx, ownerID, id); err != nil {
		return nil, err
	}
	updates := map[string]any{"name": c.Name, "email": c.Email, "address": c.Address}
	if err := r.db.WithContext(ctx).Model(&Client{}).
		Where("id = ? AND owner_id = ?", id, ownerID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, ownerID, id)
}

func (r *clientRepository) Delete(ctx context.Context, ownerID, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&Client{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
