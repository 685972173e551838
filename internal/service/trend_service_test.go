package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"pod-trends/internal/domain"
	"pod-trends/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock repository for testing
type mockTrendRepository struct {
	trends     []*domain.Trend
	err        error
	lastFilter repository.TrendFilter
}

func (m *mockTrendRepository) List(ctx context.Context, filter repository.TrendFilter) ([]*domain.Trend, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}

	matched := []*domain.Trend{}
	for _, t := range m.trends {
		if filter.Marketplace != "" && t.Marketplace != filter.Marketplace {
			continue
		}
		if filter.DemandLevel != "" && t.DemandLevel != filter.DemandLevel {
			continue
		}
		matched = append(matched, t)
		if len(matched) == filter.Limit {
			break
		}
	}
	return matched, nil
}

func storedTrend(id int64, marketplace, demandLevel string, score float64) *domain.Trend {
	return &domain.Trend{
		ID:               id,
		Marketplace:      marketplace,
		ProductTitle:     "Stored Product",
		Niche:            "Niche / Sub",
		Score:            score,
		DemandLevel:      demandLevel,
		CompetitionLevel: "medium",
		Price:            12.5,
		Currency:         "USD",
		LastSeen:         time.Now().UTC(),
	}
}

func TestListTrends_ReturnsStoredRows(t *testing.T) {
	repo := &mockTrendRepository{trends: []*domain.Trend{
		storedTrend(10, "Amazon", "high", 0.9),
		storedTrend(11, "Etsy", "low", 0.4),
	}}
	svc := NewTrendService(repo)

	trends, err := svc.ListTrends(context.Background(), 20, "", "")
	require.NoError(t, err)
	require.Len(t, trends, 2)
	assert.Equal(t, int64(10), trends[0].ID)
}

func TestListTrends_EmptyStoreReturnsDemoData(t *testing.T) {
	repo := &mockTrendRepository{}
	svc := NewTrendService(repo)

	trends, err := svc.ListTrends(context.Background(), 20, "", "")
	require.NoError(t, err)
	require.Len(t, trends, 2)

	assert.Equal(t, int64(1), trends[0].ID)
	assert.Equal(t, "Amazon", trends[0].Marketplace)
	assert.Equal(t, 0.87, trends[0].Score)
	assert.Equal(t, int64(2), trends[1].ID)
	assert.Equal(t, "Etsy", trends[1].Marketplace)
	assert.Equal(t, 0.81, trends[1].Score)
}

// The demo dataset is returned verbatim even when filters excluded every
// real row, so a too-strict filter still yields two items.
func TestListTrends_FilterExcludingAllRowsReturnsDemoData(t *testing.T) {
	repo := &mockTrendRepository{trends: []*domain.Trend{
		storedTrend(10, "Etsy", "low", 0.5),
	}}
	svc := NewTrendService(repo)

	trends, err := svc.ListTrends(context.Background(), 20, "", "high")
	require.NoError(t, err)
	require.Len(t, trends, 2)
	assert.Equal(t, int64(1), trends[0].ID)
	assert.Equal(t, int64(2), trends[1].ID)
}

// The demo dataset ignores the requested limit.
func TestListTrends_DemoDataIgnoresLimit(t *testing.T) {
	repo := &mockTrendRepository{}
	svc := NewTrendService(repo)

	trends, err := svc.ListTrends(context.Background(), 1, "", "")
	require.NoError(t, err)
	assert.Len(t, trends, 2)
}

func TestListTrends_StoreErrorPropagatesWithoutDemoData(t *testing.T) {
	repo := &mockTrendRepository{err: errors.New("connection refused")}
	svc := NewTrendService(repo)

	trends, err := svc.ListTrends(context.Background(), 20, "", "")
	require.Error(t, err)
	assert.Nil(t, trends)
	assert.ErrorContains(t, err, "connection refused")
}

func TestListTrends_DefaultsLimitToTwenty(t *testing.T) {
	repo := &mockTrendRepository{trends: []*domain.Trend{
		storedTrend(10, "Amazon", "high", 0.9),
	}}
	svc := NewTrendService(repo)

	_, err := svc.ListTrends(context.Background(), 0, "", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultTrendLimit, repo.lastFilter.Limit)
}

func TestListTrends_FiltersPassedThroughToRepository(t *testing.T) {
	repo := &mockTrendRepository{trends: []*domain.Trend{
		storedTrend(10, "Amazon", "high", 0.9),
	}}
	svc := NewTrendService(repo)

	_, err := svc.ListTrends(context.Background(), 5, "Amazon", "high")
	require.NoError(t, err)
	assert.Equal(t, "Amazon", repo.lastFilter.Marketplace)
	assert.Equal(t, "high", repo.lastFilter.DemandLevel)
	assert.Equal(t, 5, repo.lastFilter.Limit)
}

func TestDemoTrends_CurrencyAndImagesPresent(t *testing.T) {
	for _, trend := range demoTrends() {
		assert.Equal(t, "USD", trend.Currency)
		require.NotNil(t, trend.SampleImageURL)
		assert.Contains(t, *trend.SampleImageURL, "placehold.co")
		assert.False(t, trend.LastSeen.After(time.Now().UTC().Add(time.Second)))
	}
}
