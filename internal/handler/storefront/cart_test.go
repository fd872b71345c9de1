package storefront

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vitrine-store/vitrine/internal/domain"
)

func summaryWith(items ...domain.CartItem) domain.CartSummary {
	var count, total int64
	for _, item := range items {
		count += item.Quantity
		total += item.LineTotalCents()
	}
	return domain.CartSummary{Items: items, ItemCount: count, TotalCents: total}
}

func TestCartHandler_Add(t *testing.T) {
	catalog := []domain.Product{testProduct(101, "Parafuso M6", "ACME", 1050)}

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedDelta  int64
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:           "adds resolved product",
			body:           `{"code": 101, "quantity": 2}`,
			expectedStatus: http.StatusOK,
			expectedDelta:  2,
			checkBody: func(t *testing.T, body string) {
				if !strings.Contains(body, "Parafuso M6") {
					t.Errorf("expected product in summary, got %s", body)
				}
			},
		},
		{
			name:           "missing quantity defaults to one",
			body:           `{"code": 101}`,
			expectedStatus: http.StatusOK,
			expectedDelta:  1,
		},
		{
			name:           "unknown product code",
			body:           `{"code": 999}`,
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				if !strings.Contains(body, domain.ENOTFOUND) {
					t.Errorf("expected not found error, got %s", body)
				}
			},
		},
		{
			name:           "malformed body",
			body:           `{"code": `,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotProduct domain.Product
			var gotDelta int64
			cart := &mockCartService{
				addItemFunc: func(ctx context.Context, product domain.Product, delta int64) domain.CartSummary {
					gotProduct = product
					gotDelta = delta
					return summaryWith(domain.CartItem{Product: product, Quantity: delta})
				},
			}
			products := &mockProductService{
				productsFunc: func(ctx context.Context) ([]domain.Product, error) {
					return catalog, nil
				},
			}
			handler := NewCartHandler(cart, products, nil)

			req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.Add(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, rec.Code, rec.Body.String())
			}
			if tt.expectedStatus == http.StatusOK {
				if gotProduct.Code != 101 {
					t.Errorf("expected catalog product 101, got %d", gotProduct.Code)
				}
				if gotDelta != tt.expectedDelta {
					t.Errorf("expected delta %d, got %d", tt.expectedDelta, gotDelta)
				}
			}
			if tt.checkBody != nil {
				tt.checkBody(t, rec.Body.String())
			}
		})
	}
}

func TestCartHandler_Update(t *testing.T) {
	var gotCode, gotQuantity int64
	cart := &mockCartService{
		updateQuantityFunc: func(ctx context.Context, code, quantity int64) domain.CartSummary {
			gotCode = code
			gotQuantity = quantity
			return domain.CartSummary{Items: []domain.CartItem{}}
		},
	}
	handler := NewCartHandler(cart, &mockProductService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/cart/update", strings.NewReader(`{"code": 101, "quantity": 0}`))
	rec := httptest.NewRecorder()

	handler.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if gotCode != 101 || gotQuantity != 0 {
		t.Errorf("expected update(101, 0), got update(%d, %d)", gotCode, gotQuantity)
	}
}

func TestCartHandler_Remove(t *testing.T) {
	var gotCode int64
	cart := &mockCartService{
		removeItemFunc: func(ctx context.Context, code int64) domain.CartSummary {
			gotCode = code
			return domain.CartSummary{Items: []domain.CartItem{}}
		},
	}
	handler := NewCartHandler(cart, &mockProductService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/cart/remove", strings.NewReader(`{"code": 202}`))
	rec := httptest.NewRecorder()

	handler.Remove(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if gotCode != 202 {
		t.Errorf("expected remove(202), got remove(%d)", gotCode)
	}
}

func TestCartHandler_Clear(t *testing.T) {
	cleared := false
	cart := &mockCartService{
		clearFunc: func(ctx context.Context) { cleared = true },
	}
	handler := NewCartHandler(cart, &mockProductService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/cart/clear", nil)
	rec := httptest.NewRecorder()

	handler.Clear(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if !cleared {
		t.Error("expected cart to be cleared")
	}
}

func TestCartHandler_View(t *testing.T) {
	cart := &mockCartService{
		summaryFunc: func() domain.CartSummary {
			return summaryWith(domain.CartItem{Product: testProduct(101, "Parafuso M6", "ACME", 1050), Quantity: 2})
		},
	}
	handler := NewCartHandler(cart, &mockProductService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()

	handler.View(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"total_cents":2100`) {
		t.Errorf("expected total of 2100 cents, got %s", body)
	}
	if !strings.Contains(body, `"item_count":2`) {
		t.Errorf("expected item count 2, got %s", body)
	}
}
