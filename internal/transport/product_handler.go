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

// ListProductsParams holds the parsed query parameters for a product listing.
type ListProductsParams struct {
	Limit  int    `validate:"gte=1,lte=100"`
	Status string `validate:"max=50"`
}

// ProductView is the serialized projection of a product record.
type ProductView struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Niche       string  `json:"niche"`
	Marketplace string  `json:"marketplace"`
	Status      string  `json:"status"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	CreatedAt   string  `json:"created_at"`
}

// NewProductView projects a product record onto its view.
func NewProductView(p *domain.Product) ProductView {
	currency := p.Currency
	if currency == "" {
		currency = "USD"
	}

	return ProductView{
		ID:          p.ID,
		Title:       p.Title,
		Niche:       p.Niche,
		Marketplace: p.Marketplace,
		Status:      p.Status,
		Price:       p.Price,
		Currency:    currency,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ProductHandler handles HTTP requests for product listings
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// RegisterRoutes registers all product routes under the API prefix
func (h *ProductHandler) RegisterRoutes(r chi.Router, prefix string) {
	r.Route(prefix+"/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
	})
}

// ListProducts handles GET /products/
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := ListProductsParams{
		Limit:  service.DefaultTrendLimit,
		Status: r.URL.Query().Get("status"),
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
		h.logger.Debug("Product listing validation failed", zap.Error(err))
		middleware.RespondWithValidationErrors(w, middleware.FormatValidationErrors(err))
		return
	}

	products, err := h.productService.ListProducts(r.Context(), params.Limit, params.Status)
	if err != nil {
		h.logger.Error("Failed to list products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	views := make([]ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, NewProductView(product))
	}

	middleware.RespondWithJSON(w, http.StatusOK, views)
}
