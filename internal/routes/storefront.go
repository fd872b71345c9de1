package routes

import (
	"github.com/vitrine-store/vitrine/internal/router"
)

// RegisterStorefrontRoutes registers the JSON API the storefront UI consumes.
func RegisterStorefrontRoutes(r *router.Router, deps StorefrontDeps) {
	// Product browsing
	r.Get("/products", deps.ProductHandler.List)

	// Shopping cart
	r.Get("/cart", deps.CartHandler.View)
	r.Post("/cart/add", deps.CartHandler.Add)
	r.Post("/cart/update", deps.CartHandler.Update)
	r.Post("/cart/remove", deps.CartHandler.Remove)
	r.Post("/cart/clear", deps.CartHandler.Clear)

	// Checkout
	r.Post("/checkout", deps.CheckoutHandler.Submit)
}
