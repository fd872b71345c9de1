package domain

import "context"

// =============================================================================
// CART DOMAIN ERRORS
// =============================================================================

var (
	ErrProductNotFound = &Error{Code: ENOTFOUND, Message: "Product not found"}
)

// CartService provides business logic for shopping cart operations.
// Implementations hold the cart in memory and persist a full snapshot on
// every mutation; handlers may call them concurrently.
type CartService interface {
	// AddItem accumulates delta onto the line for product's code, creating the
	// line if absent. Delta may be negative (the UI sends deltas computed from
	// a quantity selector); a resulting quantity <= 0 removes the line.
	AddItem(ctx context.Context, product Product, delta int64) CartSummary

	// UpdateQuantity sets the line for code to exactly quantity.
	// quantity <= 0 removes the line (idempotent if absent). Updating a code
	// with no line is a no-op: without the product record there is nothing
	// meaningful to create.
	UpdateQuantity(ctx context.Context, code int64, quantity int64) CartSummary

	// RemoveItem removes the line for code. No-op if absent.
	RemoveItem(ctx context.Context, code int64) CartSummary

	// Clear empties the cart unconditionally.
	Clear(ctx context.Context)

	// Items returns a copy of the current line items.
	Items() []CartItem

	// TotalCents returns the sum of effective unit price times quantity over
	// all lines, in integer cents.
	TotalCents() int64

	// Summary returns the cart with item count and total.
	Summary() CartSummary
}

// CartItem is a product plus an ordered quantity. Identity is the product
// code; a given code appears at most once in a cart.
type CartItem struct {
	Product
	Quantity int64 `json:"quantity"`
}

// LineTotalCents returns the effective unit price times quantity.
func (i CartItem) LineTotalCents() int64 {
	return i.UnitPriceCents() * i.Quantity
}

// CartSummary aggregates cart contents with calculated totals.
type CartSummary struct {
	Items      []CartItem `json:"items"`
	ItemCount  int64      `json:"item_count"`
	TotalCents int64      `json:"total_cents"`
}
