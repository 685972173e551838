package repository

import (
	"context"
	"database/sql"
	"fmt"

	"pod-trends/internal/domain"
)

// DesignFilter narrows a design listing; zero values mean "no filter".
type DesignFilter struct {
	Style string
	Limit int
}

// DesignRepository defines the interface for design data access
type DesignRepository interface {
	List(ctx context.Context, filter DesignFilter) ([]*domain.Design, error)
}

type designRepository struct {
	db *sql.DB
}

// NewDesignRepository creates a new instance of DesignRepository
func NewDesignRepository(db *sql.DB) DesignRepository {
	return &designRepository{db: db}
}

// List retrieves designs matching the filter, most recent first.
func (r *designRepository) List(ctx context.Context, filter DesignFilter) ([]*domain.Design, error) {
	whereClause := ""
	args := []interface{}{}
	argIndex := 1

	if filter.Style != "" {
		whereClause = fmt.Sprintf("WHERE style = $%d", argIndex)
		args = append(args, filter.Style)
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT id, prompt, style, image_url, status, created_at
		FROM designs
		%s
		ORDER BY created_at DESC, id ASC
		LIMIT $%d
	`, whereClause, argIndex)

	args = append(args, filter.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list designs: %w", err)
	}
	defer rows.Close()

	designs := []*domain.Design{}
	for rows.Next() {
		design := &domain.Design{}
		err := rows.Scan(
			&design.ID,
			&design.Prompt,
			&design.Style,
			&design.ImageURL,
			&design.Status,
			&design.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan design: %w", err)
		}
		designs = append(designs, design)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating designs: %w", err)
	}

	return designs, nil
}
