package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vitrine-store/vitrine/internal/domain"
)

func centsPtr(v int64) *int64 { return &v }

func sampleProducts() []domain.Product {
	return []domain.Product{
		{Code: 1001, Description: "Filtro de óleo", Manufacturer: "ACME Corp", PriceCents: 2500, InStock: true},
		{Code: 1002, Description: "Pastilha de freio", Manufacturer: "Globex", PriceCents: 8900, InStock: true},
		{Code: 2003, Description: "Filtro de ar", Manufacturer: "ACME Corp", PriceCents: 3200, InStock: false},
	}
}

func TestFilterProducts_NoCriteriaReturnsInputUnchanged(t *testing.T) {
	products := sampleProducts()

	result := domain.FilterProducts(products, domain.FilterCriteria{})

	assert.Len(t, result, len(products))
	assert.Equal(t, products, result)
}

func TestFilterProducts_ManufacturerIsCaseInsensitive(t *testing.T) {
	result := domain.FilterProducts(sampleProducts(), domain.FilterCriteria{Manufacturer: "acme"})

	assert.Len(t, result, 2)
	for _, p := range result {
		assert.Equal(t, "ACME Corp", p.Manufacturer)
	}
}

func TestFilterProducts_CriteriaCombineWithAND(t *testing.T) {
	result := domain.FilterProducts(sampleProducts(), domain.FilterCriteria{
		Search:       "filtro",
		Manufacturer: "acme",
		Code:         "100",
	})

	assert.Len(t, result, 1)
	assert.Equal(t, int64(1001), result[0].Code)
}

func TestFilterProducts_CodeSubstring(t *testing.T) {
	result := domain.FilterProducts(sampleProducts(), domain.FilterCriteria{Code: "200"})

	assert.Len(t, result, 1)
	assert.Equal(t, int64(2003), result[0].Code)
}

func TestFilterProducts_EmptyCatalog(t *testing.T) {
	result := domain.FilterProducts(nil, domain.FilterCriteria{Search: "anything"})

	assert.Empty(t, result)
}

func TestFilterProducts_DoesNotMutateSource(t *testing.T) {
	products := sampleProducts()

	domain.FilterProducts(products, domain.FilterCriteria{Manufacturer: "globex"})

	assert.Equal(t, sampleProducts(), products)
}

func TestProduct_UnitPriceCents(t *testing.T) {
	tests := []struct {
		name    string
		product domain.Product
		want    int64
	}{
		{
			name:    "base price when no discount",
			product: domain.Product{PriceCents: 1000},
			want:    1000,
		},
		{
			name:    "discounted price wins when present",
			product: domain.Product{PriceCents: 1000, DiscountedPriceCents: centsPtr(800)},
			want:    800,
		},
		{
			name:    "zero discounted price falls back to base",
			product: domain.Product{PriceCents: 1000, DiscountedPriceCents: centsPtr(0)},
			want:    1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.product.UnitPriceCents())
		})
	}
}
