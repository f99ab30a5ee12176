// Package analytics aggregates the dashboard view: KPIs, revenue series
// and per-client breakdown.
package analytics

import (
	"context"
	"log/slog"
	"sort"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/repository"
)

// MonthPoint is one month of settled revenue.
type MonthPoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// Dashboard is the aggregate payload behind /analytics/dashboard.
type Dashboard struct {
	KPIs           repository.KPIs            `json:"kpis"`
	MonthlyRevenue []MonthPoint               `json:"monthly_revenue"`
	ClientRevenue  []repository.ClientRevenue `json:"client_revenue"`
}

// Service computes dashboard aggregates.
type Service struct {
	analytics    repository.AnalyticsRepository
	transactions repository.TransactionRepository
	logger       *slog.Logger
}

// New creates an analytics Service.
func New(
	analytics repository.AnalyticsRepository,
	transactions repository.TransactionRepository,
	logger *slog.Logger,
) *Service {
	return &Service{analytics: analytics, transactions: transactions, logger: logger}
}

// Dashboard builds the full aggregate for one owner.
func (s *Service) Dashboard(ctx context.Context, ownerID int64) (*Dashboard, error) {
	kpis, err := s.analytics.KPIs(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	amounts, err := s.transactions.ListAmounts(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	clientRevenue, err := s.analytics.ClientRevenue(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if clientRevenue == nil {
		clientRevenue = []repository.ClientRevenue{}
	}
	return &Dashboard{
		KPIs:           *kpis,
		MonthlyRevenue: monthlySeries(amounts),
		ClientRevenue:  clientRevenue,
	}, nil
}

// monthlySeries buckets payouts by calendar month, ascending.
func monthlySeries(amounts []repository.SettledAmount) []MonthPoint {
	byMonth := make(map[string]float64)
	for _, a := range amounts {
		month := a.ProcessedAt.Format("2006-01")
		v, _ := a.Amount.Float64()
		byMonth[month] += v
	}
	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)
	series := make([]MonthPoint, 0, len(months))
	for _, m := range months {
		series = append(series, MonthPoint{Month: m, Revenue: byMonth[m]})
	}
	return series
}
