package domain

import (
	"context"
	"strconv"
	"strings"
)

// Product is the canonical catalog record. Upstream field names and loose
// typing are normalized away at the catalog fetch boundary; nothing outside
// internal/catalog ever sees the raw wire shape.
//
// All monetary amounts are integer minor units (cents).
type Product struct {
	Code                 int64    `json:"code"`
	Description          string   `json:"description"`
	Manufacturer         string   `json:"manufacturer"`
	PriceCents           int64    `json:"price_cents"`
	DiscountPercent      *float64 `json:"discount_percent,omitempty"`
	DiscountedPriceCents *int64   `json:"discounted_price_cents,omitempty"`
	InStock              bool     `json:"in_stock"`
}

// UnitPriceCents returns the effective unit price: the discounted price when
// present and positive, the base price otherwise. A zero discounted price is
// treated as absent, matching the upstream catalog's convention.
func (p Product) UnitPriceCents() int64 {
	if p.DiscountedPriceCents != nil && *p.DiscountedPriceCents > 0 {
		return *p.DiscountedPriceCents
	}
	return p.PriceCents
}

// ProductService provides the catalog view consumed by the storefront.
type ProductService interface {
	// Products returns the normalized catalog, served from cache when warm.
	Products(ctx context.Context) ([]Product, error)

	// Invalidate drops the cached catalog so the next Products call refetches.
	// Called after a successful order submission.
	Invalidate()
}

// FilterCriteria narrows a product list. Empty fields are ignored; non-empty
// fields combine with logical AND. All matching is case-insensitive substring
// containment.
type FilterCriteria struct {
	Search       string // matched against Description
	Code         string // matched against the decimal form of Code
	Manufacturer string // matched against Manufacturer
}

// IsZero reports whether no criterion is set.
func (c FilterCriteria) IsZero() bool {
	return c.Search == "" && c.Code == "" && c.Manufacturer == ""
}

// FilterProducts returns the products matching the criteria, preserving input
// order. With no criteria set the input is returned unchanged. The source
// slice is never mutated.
func FilterProducts(products []Product, criteria FilterCriteria) []Product {
	if criteria.IsZero() {
		return products
	}

	search := strings.ToLower(criteria.Search)
	code := strings.ToLower(criteria.Code)
	manufacturer := strings.ToLower(criteria.Manufacturer)

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if code != "" && !strings.Contains(strconv.FormatInt(p.Code, 10), code) {
			continue
		}
		if manufacturer != "" && !strings.Contains(strings.ToLower(p.Manufacturer), manufacturer) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}
