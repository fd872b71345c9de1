package storefront

import (
	"log/slog"
	"net/http"

	"github.com/vitrine-store/vitrine/internal/domain"
	"github.com/vitrine-store/vitrine/internal/service"
)

// CartHandler handles all cart routes. Every mutation responds with the full
// cart summary so the UI can re-render without a second round trip.
type CartHandler struct {
	cart     domain.CartService
	products domain.ProductService
	logger   *slog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cart domain.CartService, products domain.ProductService, logger *slog.Logger) *CartHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CartHandler{
		cart:     cart,
		products: products,
		logger:   logger,
	}
}

type cartMutationRequest struct {
	Code     int64 `json:"code"`
	Quantity int64 `json:"quantity"`
}

// View handles GET /cart
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cart.Summary())
}

// Add handles POST /cart/add
// The body carries a product code and a quantity delta; a missing quantity
// means 1, a negative one decrements. The product is resolved against the
// catalog so the cart never stores fields the client invented.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	req := cartMutationRequest{Quantity: 1}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	product, err := service.FindProduct(r.Context(), h.products, req.Code)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	summary := h.cart.AddItem(r.Context(), product, req.Quantity)
	respondJSON(w, http.StatusOK, summary)
}

// Update handles POST /cart/update
// Sets the line quantity exactly; zero or negative removes the line.
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req cartMutationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	summary := h.cart.UpdateQuantity(r.Context(), req.Code, req.Quantity)
	respondJSON(w, http.StatusOK, summary)
}

// Remove handles POST /cart/remove
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req cartMutationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	summary := h.cart.RemoveItem(r.Context(), req.Code)
	respondJSON(w, http.StatusOK, summary)
}

// Clear handles POST /cart/clear
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear(r.Context())
	respondJSON(w, http.StatusOK, h.cart.Summary())
}
