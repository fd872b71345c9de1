package catalog

import (
	"context"

	"github.com/vitrine-store/vitrine/internal/domain"
)

// MockFetcher is a test implementation of Fetcher.
type MockFetcher struct {
	FetchProductsFunc func(ctx context.Context) ([]domain.Product, error)

	// Calls counts FetchProducts invocations.
	Calls int
}

// FetchProducts delegates to the configured function or returns an empty catalog.
func (m *MockFetcher) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	m.Calls++
	if m.FetchProductsFunc != nil {
		return m.FetchProductsFunc(ctx)
	}
	return []domain.Product{}, nil
}
