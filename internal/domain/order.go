package domain

import (
	"context"
	"time"
)

// =============================================================================
// ORDER DOMAIN ERRORS
// =============================================================================

var (
	ErrEmptyCart = &Error{Code: EINVALID, Message: "Cart is empty, nothing to order"}
)

// OrderRequest carries the customer-supplied checkout fields. Orders are
// ephemeral: nothing is stored after submission.
type OrderRequest struct {
	// CustomerCode is the customer identifier or tax code (CNPJ).
	CustomerCode string `json:"customer_code" validate:"required"`

	// Notes is free-text, optional.
	Notes string `json:"notes"`
}

// OrderConfirmation is the result of a successful order submission.
type OrderConfirmation struct {
	ItemCount   int64     `json:"item_count"`
	TotalCents  int64     `json:"total_cents"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// OrderService composes an order message from the cart and submits it to the
// notification endpoint.
//
// On success the cart is cleared and the catalog cache invalidated. On any
// failure the cart keeps its pre-submission contents; the customer resubmits
// manually, no retry is automatic.
type OrderService interface {
	Submit(ctx context.Context, req OrderRequest) (*OrderConfirmation, error)
}
