package repository

import (
	"context"
	"database/sql"
	"fmt"

	"pod-trends/internal/domain"
)

// ProductFilter narrows a product listing; zero values mean "no filter".
type ProductFilter struct {
	Status string
	Limit  int
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

// List retrieves products matching the filter, most recent first.
func (r *productRepository) List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error) {
	whereClause := ""
	args := []interface{}{}
	argIndex := 1

	if filter.Status != "" {
		whereClause = fmt.Sprintf("WHERE status = $%d", argIndex)
		args = append(args, filter.Status)
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT id, title, niche, marketplace, status, price, currency, created_at
		FROM products
		%s
		ORDER BY created_at DESC, id ASC
		LIMIT $%d
	`, whereClause, argIndex)

	args = append(args, filter.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product := &domain.Product{}
		err := rows.Scan(
			&product.ID,
			&product.Title,
			&product.Niche,
			&product.Marketplace,
			&product.Status,
			&product.Price,
			&product.Currency,
			&product.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
