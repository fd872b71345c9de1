package storefront

import (
	"log/slog"
	"net/http"

	"github.com/vitrine-store/vitrine/internal/domain"
)

// CheckoutHandler submits orders to the notification webhook.
type CheckoutHandler struct {
	orders domain.OrderService
	logger *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(orders domain.OrderService, logger *slog.Logger) *CheckoutHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CheckoutHandler{
		orders: orders,
		logger: logger,
	}
}

// Submit handles POST /checkout
//
// Responses:
//   - 200 with the order confirmation: the webhook accepted the order and the
//     cart was cleared.
//   - 422 with field errors: validation failed, nothing was sent.
//   - 502: the webhook failed or was unreachable; the cart is untouched and
//     the customer may resubmit.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req domain.OrderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	confirmation, err := h.orders.Submit(r.Context(), req)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"order": confirmation,
	})
}
