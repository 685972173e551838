package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"pod-trends/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Service wraps the pooled store connection. It is constructed once per
// process; the pool hands each request its own scoped connection and takes
// it back on every exit path, including cancellation.
type Service interface {
	// Health reports connectivity and pool statistics.
	Health(ctx context.Context) map[string]string
	// DB exposes the underlying pool for repositories and migrations.
	DB() *sql.DB
	// Close terminates the pool. No connections may be acquired afterwards.
	Close() error
}

type service struct {
	db *sql.DB
}

// New opens a pooled connection to the store described by cfg.
func New(cfg config.DatabaseConfig) (Service, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable&search_path=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, cfg.Schema)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return &service{db: db}, nil
}

func (s *service) Health(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	stats := make(map[string]string)

	if err := s.db.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = err.Error()
		return stats
	}

	poolStats := s.db.Stats()
	stats["status"] = "up"
	stats["open_connections"] = strconv.Itoa(poolStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(poolStats.InUse)
	stats["idle"] = strconv.Itoa(poolStats.Idle)

	return stats
}

func (s *service) DB() *sql.DB {
	return s.db
}

func (s *service) Close() error {
	return s.db.Close()
}
