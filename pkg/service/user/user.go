// Package user provides profile, onboarding and virtual-account operations.
package user

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/currency"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/repository"
)

// Service provides business logic for user and virtual-account operations.
type Service struct {
	users  repository.UserRepository
	vas    repository.VirtualAccountRepository
	logger *slog.Logger
}

// New creates a user Service.
func New(
	users repository.UserRepository,
	vas repository.VirtualAccountRepository,
	logger *slog.Logger,
) *Service {
	return &Service{users: users, vas: vas, logger: logger}
}

// Get returns the user by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateProfile updates the business profile used for GST compliance.
func (s *Service) UpdateProfile(ctx context.Context, id int64, p repository.ProfileUpdate) (*domain.User, error) {
	u, err := s.users.UpdateProfile(ctx, id, p)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user: profile updated", "user_id", id)
	return u, nil
}

// Onboard marks the user as onboarded to the mock payment provider.
func (s *Service) Onboard(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.SetOnboarded(ctx, id, true)
}

// ListVirtualAccounts returns the user's provisioned receiving accounts.
func (s *Service) ListVirtualAccounts(ctx context.Context, userID int64) ([]domain.VirtualAccount, error) {
	return s.vas.ListByUser(ctx, userID)
}

// RequestVirtualAccount provisions a receiving account for a currency the
// user does not have yet. Only currencies from the invoicing set qualify.
func (s *Service) RequestVirtualAccount(ctx context.Context, userID int64, code string) (*domain.VirtualAccount, error) {
	if !currency.IsSupported(code) {
		return nil, domain.ErrUnsupportedCurrency
	}
	existing, err := s.vas.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, va := range existing {
		if va.Currency == code {
			return nil, domain.ErrVirtualAccountExists
		}
	}
	va := ProvisionDetails(code)
	if err := s.vas.Create(ctx, userID, &va); err != nil {
		return nil, err
	}
	s.logger.Info("user: virtual account provisioned", "user_id", userID, "currency", code)
	return &va, nil
}

// ProvisionDetails fabricates the sandbox bank coordinates for a currency.
func ProvisionDetails(code string) domain.VirtualAccount {
	va := domain.VirtualAccount{
		Currency:      code,
		Provider:      "Skydo Sandbox",
		AccountNumber: fmt.Sprintf("%012d", rand.Int63n(1e12)),
	}
	switch code {
	case "EUR":
		va.BankName = "Banking Circle S.A."
		va.RoutingCode = "BANCLULL"
	case "GBP":
		va.BankName = "Barclays Bank UK"
		va.RoutingCode = "20-00-00"
	default:
		va.BankName = "Community Federal Savings Bank"
		va.RoutingCode = "026073150"
	}
	return va
}
