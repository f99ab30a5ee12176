package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/currency"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/gateway"
)

// ErrActionInFlight means the same mutating action was invoked while a
// previous invocation was still outstanding.
var ErrActionInFlight = errors.New("action already in flight")

// DashboardAPI is the slice of the gateway the dashboard needs.
type DashboardAPI interface {
	GetDashboard(ctx context.Context) (*gateway.Dashboard, error)
	ListVirtualAccounts(ctx context.Context) ([]domain.VirtualAccount, error)
	RequestVirtualAccount(ctx context.Context, currency string) (*domain.VirtualAccount, error)
	ProcessSettlements(ctx context.Context) (int64, error)
}

// DashboardController loads the analytics aggregate and virtual accounts
// and exposes the two operator actions: provisioning a virtual account and
// processing settlements. Each action carries its own in-flight guard: a
// second invocation while one is outstanding is rejected instead of
// multiplying requests.
type DashboardController struct {
	api    DashboardAPI
	logger *slog.Logger

	mu           sync.Mutex
	data         *gateway.Dashboard
	accounts     []domain.VirtualAccount
	provisioning bool
	settling     bool
}

// NewDashboardController creates a controller. Call Load before reading
// state.
func NewDashboardController(api DashboardAPI, logger *slog.Logger) *DashboardController {
	return &DashboardController{api: api, logger: logger}
}

// Load fetches the aggregate and the virtual accounts. On failure prior
// state is kept intact.
func (d *DashboardController) Load(ctx context.Context) error {
	data, err := d.api.GetDashboard(ctx)
	if err != nil {
		d.logger.Error("dashboard: aggregate fetch failed", "error", err)
		return err
	}
	accounts, err := d.api.ListVirtualAccounts(ctx)
	if err != nil {
		d.logger.Error("dashboard: virtual account fetch failed", "error", err)
		return err
	}
	d.mu.Lock()
	d.data = data
	d.accounts = accounts
	d.mu.Unlock()
	return nil
}

// Data returns the last loaded aggregate, nil before the first Load.
func (d *DashboardController) Data() *gateway.Dashboard {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.data
}

// Accounts returns a copy of the loaded virtual accounts.
func (d *DashboardController) Accounts() []domain.VirtualAccount {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]domain.VirtualAccount, len(d.accounts))
	copy(out, d.accounts)
	return out
}

// ProvisioningCandidates returns the invoice currencies that do not have a
// virtual account yet. A currency already provisioned is never offered.
func (d *DashboardController) ProvisioningCandidates() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	existing := make(map[string]bool, len(d.accounts))
	for _, a := range d.accounts {
		existing[a.Currency] = true
	}
	var candidates []string
	for _, code := range currency.Supported() {
		if !existing[code] {
			candidates = append(candidates, code)
		}
	}
	return candidates
}

// ProvisionAccount requests a virtual account for code. Only one
// provisioning request may be outstanding at a time, regardless of
// currency. On success the account list is refreshed from the backend
// rather than synthesized locally.
func (d *DashboardController) ProvisionAccount(ctx context.Context, code string) error {
	d.mu.Lock()
	if d.provisioning {
		d.mu.Unlock()
		return ErrActionInFlight
	}
	for _, a := range d.accounts {
		if a.Currency == code {
			d.mu.Unlock()
			return domain.ErrVirtualAccountExists
		}
	}
	d.provisioning = true
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		d.provisioning = false
		d.mu.Unlock()
	}()

	if _, err := d.api.RequestVirtualAccount(ctx, code); err != nil {
		d.logger.Error("dashboard: virtual account provisioning failed",
			"currency", code, "error", err)
		return fmt.Errorf("provisioning %s account: %w", code, err)
	}
	accounts, err := d.api.ListVirtualAccounts(ctx)
	if err != nil {
		d.logger.Error("dashboard: account refresh failed", "error", err)
		return err
	}
	d.mu.Lock()
	d.accounts = accounts
	d.mu.Unlock()
	return nil
}

// ProcessSettlements settles every pending transaction and, on success,
// reloads the full dashboard since the KPIs change as a result.
func (d *DashboardController) ProcessSettlements(ctx context.Context) (int64, error) {
	d.mu.Lock()
	if d.settling {
		d.mu.Unlock()
		return 0, ErrActionInFlight
	}
	d.settling = true
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		d.settling = false
		d.mu.Unlock()
	}()

	count, err := d.api.ProcessSettlements(ctx)
	if err != nil {
		d.logger.Error("dashboard: settlement processing failed", "error", err)
		return 0, err
	}
	if err := d.Load(ctx); err != nil {
		return count, err
	}
	return count, nil
}
