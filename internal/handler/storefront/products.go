package storefront

import (
	"log/slog"
	"net/http"

	"github.com/vitrine-store/vitrine/internal/domain"
)

// ProductHandler serves the filtered catalog to the storefront UI.
type ProductHandler struct {
	products domain.ProductService
	logger   *slog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(products domain.ProductService, logger *slog.Logger) *ProductHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductHandler{
		products: products,
		logger:   logger,
	}
}

// List handles GET /products?q=&code=&manufacturer=
// All three filters are optional; non-empty ones combine with AND.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.Products(r.Context())
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	criteria := domain.FilterCriteria{
		Search:       r.URL.Query().Get("q"),
		Code:         r.URL.Query().Get("code"),
		Manufacturer: r.URL.Query().Get("manufacturer"),
	}
	filtered := domain.FilterProducts(products, criteria)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"products": filtered,
		"count":    len(filtered),
	})
}
