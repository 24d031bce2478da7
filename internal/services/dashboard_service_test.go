package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ewaste-tracker/internal/lifecycle"
	"ewaste-tracker/internal/models"
)

type fakeDashboardStore struct {
	counts models.StatusCounts
	weight float64
	recent []*models.Asset
}

func (f *fakeDashboardStore) CountByStatus(context.Context) (models.StatusCounts, error) {
	return f.counts, nil
}

func (f *fakeDashboardStore) TotalWeight(context.Context) (float64, error) {
	return f.weight, nil
}

func (f *fakeDashboardStore) Recent(_ context.Context, limit int) ([]*models.Asset, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func TestDashboardSummary(t *testing.T) {
	store := &fakeDashboardStore{
		counts: models.StatusCounts{
			lifecycle.StatusCollected:            4,
			lifecycle.StatusReadyForDistribution: 2,
			lifecycle.StatusRecycled:             3,
			lifecycle.StatusScrapped:             1,
		},
		weight: 42.5,
		recent: []*models.Asset{{ID: 1, Tag: "LAP-0001"}},
	}
	svc := NewDashboardService(store)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, summary.TotalAssets)
	assert.Equal(t, 42.5, summary.TotalWeightKg)
	assert.Equal(t, 2, summary.ReadyForDistribution)
	assert.Equal(t, 4, summary.Recycled, "recycled plus scrapped")
	require.Len(t, summary.RecentAssets, 1)

	// Every status appears in the totals, zero-valued when absent.
	for _, status := range lifecycle.Statuses {
		_, ok := summary.StatusTotals[status]
		assert.True(t, ok, "missing status %s", status)
	}
	assert.Equal(t, 0, summary.StatusTotals[lifecycle.StatusDonated])
}
