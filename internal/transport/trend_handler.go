package transport

import (
	"net/http"
	"strconv"
	"time"

	"pod-trends/internal/domain"
	"pod-trends/internal/middleware"
	"pod-trends/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ListTrendsParams holds the parsed query parameters for a trend listing.
type ListTrendsParams struct {
	Limit       int    `validate:"gte=1,lte=100"`
	Marketplace string `validate:"max=100"`
	DemandLevel string `validate:"max=50"`
}

// TrendView is the serialized projection of a trend record. Every record
// field is part of the public contract; none are added or dropped.
type TrendView struct {
	ID               int64   `json:"id"`
	Marketplace      string  `json:"marketplace"`
	ProductTitle     string  `json:"product_title"`
	Niche            string  `json:"niche"`
	Score            float64 `json:"score"`
	DemandLevel      string  `json:"demand_level"`
	CompetitionLevel string  `json:"competition_level"`
	Price            float64 `json:"price"`
	Currency         string  `json:"currency"`
	SampleImageURL   *string `json:"sample_image_url,omitempty"`
	LastSeen         string  `json:"last_seen"`
}

// NewTrendView projects a trend record onto its view. A record persisted
// without a currency serializes as USD; a missing sample image stays absent.
func NewTrendView(t *domain.Trend) TrendView {
	currency := t.Currency
	if currency == "" {
		currency = "USD"
	}

	return TrendView{
		ID:               t.ID,
		Marketplace:      t.Marketplace,
		ProductTitle:     t.ProductTitle,
		Niche:            t.Niche,
		Score:            t.Score,
		DemandLevel:      t.DemandLevel,
		CompetitionLevel: t.CompetitionLevel,
		Price:            t.Price,
		Currency:         currency,
		SampleImageURL:   t.SampleImageURL,
		LastSeen:         t.LastSeen.UTC().Format(time.RFC3339),
	}
}

// TrendHandler handles HTTP requests for trend listings
type TrendHandler struct {
	trendService service.TrendService
	logger       *zap.Logger
}

// NewTrendHandler creates a new TrendHandler
func NewTrendHandler(trendService service.TrendService, logger *zap.Logger) *TrendHandler {
	return &TrendHandler{
		trendService: trendService,
		logger:       logger,
	}
}

// RegisterRoutes registers all trend routes under the API prefix
func (h *TrendHandler) RegisterRoutes(r chi.Router, prefix string) {
	r.Route(prefix+"/trends", func(r chi.Router) {
		r.Get("/", h.ListTrends)
	})
}

// ListTrends handles GET /trends/
func (h *TrendHandler) ListTrends(w http.ResponseWriter, r *http.Request) {
	params := ListTrendsParams{
		Limit:       service.DefaultTrendLimit,
		Marketplace: r.URL.Query().Get("marketplace"),
		DemandLevel: r.URL.Query().Get("demand_level"),
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Debug("Invalid limit parameter", zap.String("limit", raw))
			middleware.RespondWithError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		params.Limit = limit
	}

	if err := middleware.ValidateParams(&params); err != nil {
		h.logger.Debug("Trend listing validation failed", zap.Error(err))
		middleware.RespondWithValidationErrors(w, middleware.FormatValidationErrors(err))
		return
	}

	trends, err := h.trendService.ListTrends(r.Context(), params.Limit, params.Marketplace, params.DemandLevel)
	if err != nil {
		h.logger.Error("Failed to list trends", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list trends")
		return
	}

	views := make([]TrendView, 0, len(trends))
	for _, trend := range trends {
		views = append(views, NewTrendView(trend))
	}

	middleware.RespondWithJSON(w, http.StatusOK, views)
}
