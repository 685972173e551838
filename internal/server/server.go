package server

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"pod-trends/internal/config"
	custommiddleware "pod-trends/internal/middleware"
	"pod-trends/internal/repository"
	"pod-trends/internal/service"
	"pod-trends/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     *sql.DB
	redis  *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger, db *sql.DB) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware())
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Connect to the Redis broker for rate limiting. A broken broker URL
	// downgrades to an unthrottled API rather than blocking startup.
	var redisClient *redis.Client
	if opts, err := redis.ParseURL(cfg.Redis.URL); err != nil {
		logger.Warn("Invalid Redis URL, rate limiting disabled", zap.Error(err))
	} else {
		redisClient = redis.NewClient(opts)
	}

	// Initialize repositories
	trendRepo := repository.NewTrendRepository(db)
	productRepo := repository.NewProductRepository(db)
	designRepo := repository.NewDesignRepository(db)

	// Initialize services
	trendService := service.NewTrendService(trendRepo)
	productService := service.NewProductService(productRepo)
	designService := service.NewDesignService(designRepo)

	// Initialize handlers
	trendHandler := transport.NewTrendHandler(trendService, logger)
	productHandler := transport.NewProductHandler(productService, logger)
	designHandler := transport.NewDesignHandler(designService, logger)

	// Register API routes, rate limited when the broker is available
	router.Group(func(r chi.Router) {
		if redisClient != nil {
			r.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
				RequestsPerWindow: cfg.Redis.RateLimitRequests,
				Window:            time.Duration(cfg.Redis.RateLimitWindow) * time.Second,
				KeyPrefix:         "rate_limit",
			}, logger))
		}

		trendHandler.RegisterRoutes(r, cfg.API.V1Prefix)
		productHandler.RegisterRoutes(r, cfg.API.V1Prefix)
		designHandler.RegisterRoutes(r, cfg.API.V1Prefix)
	})

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		db:     db,
		redis:  redisClient,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	// Close database connection
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close Redis connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
