package services

import (
	"context"

	"ewaste-tracker/internal/lifecycle"
	"ewaste-tracker/internal/models"
)

// DashboardStore is the aggregate query surface for the dashboard.
type DashboardStore interface {
	CountByStatus(ctx context.Context) (models.StatusCounts, error)
	TotalWeight(ctx context.Context) (float64, error)
	Recent(ctx context.Context, limit int) ([]*models.Asset, error)
}

// DashboardSummary holds everything the dashboard page shows.
type DashboardSummary struct {
	StatusTotals         models.StatusCounts
	TotalAssets          int
	TotalWeightKg        float64
	ReadyForDistribution int
	Recycled             int
	RecentAssets         []*models.Asset
}

type DashboardService struct {
	Store DashboardStore
}

func NewDashboardService(store DashboardStore) *DashboardService {
	return &DashboardService{Store: store}
}

// Summary aggregates asset counts per status. Every known status appears in
// the totals, zero-valued when absent. Recycled counts recycled plus
// scrapped assets.
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	counts, err := s.Store.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(models.StatusCounts, len(lifecycle.Statuses))
	total := 0
	for _, status := range lifecycle.Statuses {
		totals[status] = counts[status]
		total += counts[status]
	}

	weight, err := s.Store.TotalWeight(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.Store.Recent(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		StatusTotals:         totals,
		TotalAssets:          total,
		TotalWeightKg:        weight,
		ReadyForDistribution: totals[lifecycle.StatusReadyForDistribution],
		Recycled:             totals[lifecycle.StatusRecycled] + totals[lifecycle.StatusScrapped],
		RecentAssets:         recent,
	}, nil
}
