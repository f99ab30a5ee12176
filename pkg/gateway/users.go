package gateway

import (
	"context"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
)

// GetMe fetches the session's user and business profile.
func (g *Gateway) GetMe(ctx context.Context) (*domain.User, error) {
	var out userSchema
	if err := g.get(ctx, "/users/me", &out, true); err != nil {
		return nil, err
	}
	u := out.toDomain()
	return &u, nil
}

// UpdateProfile replaces the business profile fields.
func (g *Gateway) UpdateProfile(ctx context.Context, input ProfileInput) (*domain.User, error) {
	if err := g.validate.Struct(input); err != nil {
		return nil, err
	}
	var out userSchema
	if err := g.do(ctx, "PUT", "/users/me/profile", input, &out, true); err != nil {
		return nil, err
	}
	u := out.toDomain()
	return &u, nil
}

// ListVirtualAccounts returns the session user's receiving accounts.
func (g *Gateway) ListVirtualAccounts(ctx context.Context) ([]domain.VirtualAccount, error) {
	var out []virtualAccountSchema
	if err := g.get(ctx, "/users/me/virtual-accounts", &out, true); err != nil {
		return nil, err
	}
	accounts := make([]domain.VirtualAccount, 0, len(out))
	for _, a := range out {
		accounts = append(accounts, a.toDomain())
	}
	return accounts, nil
}

// RequestVirtualAccount provisions a receiving account for currency.
func (g *Gateway) RequestVirtualAccount(ctx context.Context, currency string) (*domain.VirtualAccount, error) {
	body := struct {
		Currency string `json:"currency"`
	}{Currency: currency}
	var out virtualAccountSchema
	if err := g.post(ctx, "/users/me/virtual-accounts", body, &out, true); err != nil {
		return nil, err
	}
	a := out.toDomain()
	return &a, nil
}
