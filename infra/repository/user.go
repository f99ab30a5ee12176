package repository

import (
	"context"
	"errors"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/repository"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a gorm-backed user repository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func mapUser(m *User) *domain.User {
	return &domain.User{
		ID:                 m.ID,
		Email:              m.Email,
		IsPaymentOnboarded: m.IsPaymentOnboarded,
		BusinessName:       m.BusinessName,
		GSTIN:              m.GSTIN,
		BusinessAddress:    m.BusinessAddress,
	}
}

func (r *userRepository) Create(ctx context.Context, email, hashedPassword string) (*domain.User, error) {
	m := User{Email: email, HashedPassword: hashedPassword, IsActive: true}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return mapUser(&m), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*repository.UserRecord, error) {
	var m User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &repository.UserRecord{User: *mapUser(&m), HashedPassword: m.HashedPassword}, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m User
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return mapUser(&m), nil
}

func (r *userRepository) SetOnboarded(ctx context.Context, id int64, onboarded bool) (*domain.User, error) {
	if err := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).
		Update("is_payment_onboarded", onboarded).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *userRepository) UpdateProfile(ctx context.Context, id int64, p repository.ProfileUpdate) (*domain.User, error) {
	updates := map[string]any{
		"business_name":    p.BusinessName,
		"gstin":            p.GSTIN,
		"business_address": p.BusinessAddress,
	}
	if err := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}
