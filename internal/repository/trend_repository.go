package repository

import (
	"context"
	"database/sql"
	"fmt"

	"pod-trends/internal/domain"
)

// TrendFilter narrows a trend listing. Zero values mean "no filter";
// marketplace and demand level are matched exactly, per store collation.
type TrendFilter struct {
	Marketplace string
	DemandLevel string
	Limit       int
}

// TrendRepository defines the interface for trend data access
type TrendRepository interface {
	List(ctx context.Context, filter TrendFilter) ([]*domain.Trend, error)
}

type trendRepository struct {
	db *sql.DB
}

// NewTrendRepository creates a new instance of TrendRepository
func NewTrendRepository(db *sql.DB) TrendRepository {
	return &trendRepository{db: db}
}

// List retrieves trends matching the filter, best score first. Equal scores
// are broken by ascending id so the ordering is deterministic.
func (r *trendRepository) List(ctx context.Context, filter TrendFilter) ([]*domain.Trend, error) {
	whereClause := ""
	args := []interface{}{}
	argIndex := 1

	if filter.Marketplace != "" {
		whereClause = fmt.Sprintf("WHERE marketplace = $%d", argIndex)
		args = append(args, filter.Marketplace)
		argIndex++
	}

	if filter.DemandLevel != "" {
		if whereClause == "" {
			whereClause = fmt.Sprintf("WHERE demand_level = $%d", argIndex)
		} else {
			whereClause += fmt.Sprintf(" AND demand_level = $%d", argIndex)
		}
		args = append(args, filter.DemandLevel)
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT id, marketplace, product_title, niche, score, demand_level,
		       competition_level, price, currency, sample_image_url, last_seen
		FROM trends
		%s
		ORDER BY score DESC, id ASC
		LIMIT $%d
	`, whereClause, argIndex)

	args = append(args, filter.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list trends: %w", err)
	}
	defer rows.Close()

	trends := []*domain.Trend{}
	for rows.Next() {
		trend := &domain.Trend{}
		err := rows.Scan(
			&trend.ID,
			&trend.Marketplace,
			&trend.ProductTitle,
			&trend.Niche,
			&trend.Score,
			&trend.DemandLevel,
			&trend.CompetitionLevel,
			&trend.Price,
			&trend.Currency,
			&trend.SampleImageURL,
			&trend.LastSeen,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trend: %w", err)
		}
		trends = append(trends, trend)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trends: %w", err)
	}

	return trends, nil
}
