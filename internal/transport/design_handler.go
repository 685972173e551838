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

// ListDesignsParams holds the parsed query parameters for a design listing.
type ListDesignsParams struct {
	Limit int    `validate:"gte=1,lte=100"`
	Style string `validate:"max=100"`
}

// DesignView is the serialized projection of a design record.
type DesignView struct {
	ID        int64   `json:"id"`
	Prompt    string  `json:"prompt"`
	Style     string  `json:"style"`
	ImageURL  *string `json:"image_url,omitempty"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

// NewDesignView projects a design record onto its view.
func NewDesignView(d *domain.Design) DesignView {
	return DesignView{
		ID:        d.ID,
		Prompt:    d.Prompt,
		Style:     d.Style,
		ImageURL:  d.ImageURL,
		Status:    d.Status,
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// DesignHandler handles HTTP requests for design listings
type DesignHandler struct {
	designService service.DesignService
	logger        *zap.Logger
}

// NewDesignHandler creates a new DesignHandler
func NewDesignHandler(designService service.DesignService, logger *zap.Logger) *DesignHandler {
	return &DesignHandler{
		designService: designService,
		logger:        logger,
	}
}

// RegisterRoutes registers all design routes under the API prefix
func (h *DesignHandler) RegisterRoutes(r chi.Router, prefix string) {
	r.Route(prefix+"/designs", func(r chi.Router) {
		r.Get("/", h.ListDesigns)
	})
}

// ListDesigns handles GET /designs/
func (h *DesignHandler) ListDesigns(w http.ResponseWriter, r *http.Request) {
	params := ListDesignsParams{
		Limit: service.DefaultTrendLimit,
		Style: r.URL.Query().Get("style"),
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
		h.logger.Debug("Design listing validation failed", zap.Error(err))
		middleware.RespondWithValidationErrors(w, middleware.FormatValidationErrors(err))
		return
	}

	designs, err := h.designService.ListDesigns(r.Context(), params.Limit, params.Style)
	if err != nil {
		h.logger.Error("Failed to list designs", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list designs")
		return
	}

	views := make([]DesignView, 0, len(designs))
	for _, design := range designs {
		views = append(views, NewDesignView(design))
	}

	middleware.RespondWithJSON(w, http.StatusOK, views)
}
