// Package catalog retrieves product records from the upstream catalog API and
// normalizes them into the canonical domain shape. The upstream's field names
// and loose typing stop at this boundary.
package catalog

import (
	"context"

	"github.com/vitrine-store/vitrine/internal/domain"
)

// Fetcher retrieves the full product catalog.
// Implementations can use the upstream HTTP API or a mock for testing.
type Fetcher interface {
	// FetchProducts performs one catalog read and returns normalized products.
	// Transport failures and malformed responses propagate as errors.
	FetchProducts(ctx context.Context) ([]domain.Product, error)
}
