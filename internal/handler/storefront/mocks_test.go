package storefront

import (
	"context"

	"github.com/vitrine-store/vitrine/internal/domain"
)

// mockProductService implements domain.ProductService for testing
type mockProductService struct {
	productsFunc func(ctx context.Context) ([]domain.Product, error)
	invalidated  int
}

func (m *mockProductService) Products(ctx context.Context) ([]domain.Product, error) {
	if m.productsFunc != nil {
		return m.productsFunc(ctx)
	}
	return nil, nil
}

func (m *mockProductService) Invalidate() {
	m.invalidated++
}

// mockCartService implements domain.CartService for testing
type mockCartService struct {
	addItemFunc        func(ctx context.Context, product domain.Product, delta int64) domain.CartSummary
	updateQuantityFunc func(ctx context.Context, code, quantity int64) domain.CartSummary
	removeItemFunc     func(ctx context.Context, code int64) domain.CartSummary
	clearFunc          func(ctx context.Context)
	summaryFunc        func() domain.CartSummary
}

func (m *mockCartService) AddItem(ctx context.Context, product domain.Product, delta int64) domain.CartSummary {
	if m.addItemFunc != nil {
		return m.addItemFunc(ctx, product, delta)
	}
	return domain.CartSummary{}
}

func (m *mockCartService) UpdateQuantity(ctx context.Context, code, quantity int64) domain.CartSummary {
	if m.updateQuantityFunc != nil {
		return m.updateQuantityFunc(ctx, code, quantity)
	}
	return domain.CartSummary{}
}

func (m *mockCartService) RemoveItem(ctx context.Context, code int64) domain.CartSummary {
	if m.removeItemFunc != nil {
		return m.removeItemFunc(ctx, code)
	}
	return domain.CartSummary{}
}

func (m *mockCartService) Clear(ctx context.Context) {
	if m.clearFunc != nil {
		m.clearFunc(ctx)
	}
}

func (m *mockCartService) Items() []domain.CartItem {
	return m.Summary().Items
}

func (m *mockCartService) TotalCents() int64 {
	return m.Summary().TotalCents
}

func (m *mockCartService) Summary() domain.CartSummary {
	if m.summaryFunc != nil {
		return m.summaryFunc()
	}
	return domain.CartSummary{Items: []domain.CartItem{}}
}

// mockOrderService implements domain.OrderService for testing
type mockOrderService struct {
	submitFunc func(ctx context.Context, req domain.OrderRequest) (*domain.OrderConfirmation, error)
}

func (m *mockOrderService) Submit(ctx context.Context, req domain.OrderRequest) (*domain.OrderConfirmation, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, req)
	}
	return &domain.OrderConfirmation{}, nil
}

func testProduct(code int64, description, manufacturer string, priceCents int64) domain.Product {
	return domain.Product{
		Code:         code,
		Description:  description,
		Manufacturer: manufacturer,
		PriceCents:   priceCents,
		InStock:      true,
	}
}
