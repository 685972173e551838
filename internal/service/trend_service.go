package service

import (
	"context"
	"fmt"
	"time"

	"pod-trends/internal/domain"
	"pod-trends/internal/repository"
)

const (
	// DefaultTrendLimit is used when the caller does not specify a limit.
	DefaultTrendLimit = 20
)

// TrendService defines the interface for trend retrieval logic
type TrendService interface {
	ListTrends(ctx context.Context, limit int, marketplace, demandLevel string) ([]*domain.Trend, error)
}

type trendService struct {
	trendRepo repository.TrendRepository
}

// NewTrendService creates a new instance of TrendService
func NewTrendService(trendRepo repository.TrendRepository) TrendService {
	return &trendService{trendRepo: trendRepo}
}

// ListTrends returns at most limit trends matching the filters, best score
// first. An empty result set, whether the table is empty or the filters
// excluded every row, is replaced with the demo dataset so the UI stays
// populated while the ingestion pipeline is cold. The demo dataset is
// returned verbatim and does not honor limit or filters. Store failures
// propagate unchanged; they never trigger the demo dataset.
func (s *trendService) ListTrends(ctx context.Context, limit int, marketplace, demandLevel string) ([]*domain.Trend, error) {
	if limit <= 0 {
		limit = DefaultTrendLimit
	}

	trends, err := s.trendRepo.List(ctx, repository.TrendFilter{
		Marketplace: marketplace,
		DemandLevel: demandLevel,
		Limit:       limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list trends: %w", err)
	}

	if len(trends) == 0 {
		return demoTrends(), nil
	}

	return trends, nil
}

// demoTrends is the fixed two-item demonstration dataset served when the
// store yields no rows.
func demoTrends() []*domain.Trend {
	now := time.Now().UTC()
	catTee := "https://placehold.co/400x400?text=Cat+Tee"
	linePoster := "https://placehold.co/400x400?text=Line+Art+Poster"

	return []*domain.Trend{
		{
			ID:               1,
			Marketplace:      "Amazon",
			ProductTitle:     "Vintage Retro Cat Lover T-Shirt",
			Niche:            "Pets / Cats / Retro",
			Score:            0.87,
			DemandLevel:      "high",
			CompetitionLevel: "medium",
			Price:            19.99,
			Currency:         "USD",
			SampleImageURL:   &catTee,
			LastSeen:         now,
		},
		{
			ID:               2,
			Marketplace:      "Etsy",
			ProductTitle:     "Custom Minimalist Line Art Couple Poster",
			Niche:            "Home Decor / Couples / Minimalist",
			Score:            0.81,
			DemandLevel:      "medium",
			CompetitionLevel: "low",
			Price:            24.0,
			Currency:         "USD",
			SampleImageURL:   &linePoster,
			LastSeen:         now,
		},
	}
}
