package service

import (
	"context"
	"fmt"
	"time"

	"pod-trends/internal/domain"
	"pod-trends/internal/repository"
)

// ProductService defines the interface for product retrieval logic
type ProductService interface {
	ListProducts(ctx context.Context, limit int, status string) ([]*domain.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new instance of ProductService
func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

// ListProducts returns at most limit products, most recent first, with the
// same degrade-to-demo-data behavior as trends.
func (s *productService) ListProducts(ctx context.Context, limit int, status string) ([]*domain.Product, error) {
	if limit <= 0 {
		limit = DefaultTrendLimit
	}

	products, err := s.productRepo.List(ctx, repository.ProductFilter{
		Status: status,
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if len(products) == 0 {
		return demoProducts(), nil
	}

	return products, nil
}

func demoProducts() []*domain.Product {
	now := time.Now().UTC()

	return []*domain.Product{
		{
			ID:          1,
			Title:       "Vintage Retro Cat Lover T-Shirt",
			Niche:       "Pets / Cats / Retro",
			Marketplace: "Amazon",
			Status:      "listed",
			Price:       19.99,
			Currency:    "USD",
			CreatedAt:   now,
		},
		{
			ID:          2,
			Title:       "Custom Minimalist Line Art Couple Poster",
			Niche:       "Home Decor / Couples / Minimalist",
			Marketplace: "Etsy",
			Status:      "draft",
			Price:       24.0,
			Currency:    "USD",
			CreatedAt:   now,
		},
	}
}
