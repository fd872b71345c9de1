package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/vitrine-store/vitrine/internal/catalog"
	"github.com/vitrine-store/vitrine/internal/domain"
)

// productService serves the normalized catalog from an in-memory cache.
// The cache is filled on first read, expires after ttl, and is dropped
// explicitly after a successful order submission.
type productService struct {
	fetcher catalog.Fetcher
	ttl     time.Duration
	logger  *slog.Logger

	mu        sync.Mutex
	cached    []domain.Product
	fetchedAt time.Time
}

// NewProductService creates a ProductService on top of a catalog fetcher.
// ttl <= 0 disables expiry; the cache then only drops on Invalidate.
func NewProductService(fetcher catalog.Fetcher, ttl time.Duration, logger *slog.Logger) domain.ProductService {
	if logger == nil {
		logger = slog.Default()
	}

	return &productService{
		fetcher: fetcher,
		ttl:     ttl,
		logger:  logger,
	}
}

// Products returns the catalog, fetching from upstream when the cache is
// cold or expired.
func (s *productService) Products(ctx context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && (s.ttl <= 0 || time.Since(s.fetchedAt) < s.ttl) {
		out := make([]domain.Product, len(s.cached))
		copy(out, s.cached)
		return out, nil
	}

	products, err := s.fetcher.FetchProducts(ctx)
	if err != nil {
		return nil, domain.Unavailable(err, "catalog.fetch", "Could not load the product catalog")
	}

	s.cached = products
	s.fetchedAt = time.Now()
	s.logger.Info("catalog refreshed", "products", len(products))

	out := make([]domain.Product, len(products))
	copy(out, products)
	return out, nil
}

// Invalidate drops the cached catalog.
func (s *productService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cached = nil
	s.fetchedAt = time.Time{}
}

// FindProduct returns the catalog entry for code.
func FindProduct(ctx context.Context, products domain.ProductService, code int64) (domain.Product, error) {
	list, err := products.Products(ctx)
	if err != nil {
		return domain.Product{}, err
	}

	for _, p := range list {
		if p.Code == code {
			return p, nil
		}
	}

	return domain.Product{}, domain.Errorf(domain.ENOTFOUND, "catalog.find", "no product with code %d", code)
}
