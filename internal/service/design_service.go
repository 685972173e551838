package service

import (
	"context"
	"fmt"
	"time"

	"pod-trends/internal/domain"
	"pod-trends/internal/repository"
)

// DesignService defines the interface for design retrieval logic
type DesignService interface {
	ListDesigns(ctx context.Context, limit int, style string) ([]*domain.Design, error)
}

type designService struct {
	designRepo repository.DesignRepository
}

// NewDesignService creates a new instance of DesignService
func NewDesignService(designRepo repository.DesignRepository) DesignService {
	return &designService{designRepo: designRepo}
}

// ListDesigns returns at most limit designs, most recent first, with the
// same degrade-to-demo-data behavior as trends.
func (s *designService) ListDesigns(ctx context.Context, limit int, style string) ([]*domain.Design, error) {
	if limit <= 0 {
		limit = DefaultTrendLimit
	}

	designs, err := s.designRepo.List(ctx, repository.DesignFilter{
		Style: style,
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list designs: %w", err)
	}

	if len(designs) == 0 {
		return demoDesigns(), nil
	}

	return designs, nil
}

func demoDesigns() []*domain.Design {
	now := time.Now().UTC()
	catArt := "https://placehold.co/400x400?text=Cat+Design"
	lineArt := "https://placehold.co/400x400?text=Line+Art"

	return []*domain.Design{
		{
			ID:        1,
			Prompt:    "retro sunset cat silhouette, distressed print",
			Style:     "vintage",
			ImageURL:  &catArt,
			Status:    "ready",
			CreatedAt: now,
		},
		{
			ID:        2,
			Prompt:    "continuous single line couple portrait",
			Style:     "minimalist",
			ImageURL:  &lineArt,
			Status:    "pending",
			CreatedAt: now,
		},
	}
}
