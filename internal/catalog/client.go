package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/vitrine-store/vitrine/internal/domain"
)

// Client implements Fetcher against the upstream products endpoint.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a catalog client for the given products endpoint URL.
func NewClient(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchProducts performs one HTTP GET against the products endpoint and
// normalizes the response.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog API error (status %d): %s", resp.StatusCode, string(body))
	}

	var raw []rawProduct
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog response: %w", err)
	}

	products := make([]domain.Product, 0, len(raw))
	for _, r := range raw {
		products = append(products, r.normalize())
	}

	return products, nil
}

// rawProduct mirrors the upstream wire shape. The upstream is loosely typed:
// numeric fields arrive as numbers or strings, discount fields may be null or
// missing, and the in-stock flag is anything truthy.
type rawProduct struct {
	Code            flexNumber  `json:"codigo"`
	Description     string      `json:"descricao"`
	Manufacturer    string      `json:"descricaoFab"`
	Price           flexNumber  `json:"preco"`
	DiscountPercent *flexNumber `json:"desconto"`
	DiscountedPrice *flexNumber `json:"predesc"`
	InStock         flexBool    `json:"emEstoque"`
}

// normalize coerces a raw record into the canonical Product. Unparsable
// numeric fields become zero for required values and absent for optional
// ones; prices convert to integer cents with half-up rounding.
func (r rawProduct) normalize() domain.Product {
	p := domain.Product{
		Code:         int64(r.Code.value),
		Description:  r.Description,
		Manufacturer: r.Manufacturer,
		PriceCents:   toCents(r.Price.value),
		InStock:      bool(r.InStock),
	}

	if r.DiscountPercent != nil && r.DiscountPercent.valid {
		pct := r.DiscountPercent.value
		p.DiscountPercent = &pct
	}
	if r.DiscountedPrice != nil && r.DiscountedPrice.valid {
		cents := toCents(r.DiscountedPrice.value)
		p.DiscountedPriceCents = &cents
	}

	return p
}

// toCents converts a currency amount to integer minor units.
func toCents(amount float64) int64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return int64(math.Round(amount * 100))
}

// flexNumber decodes a JSON number, numeric string, or null. Anything
// unparsable leaves the value at zero with valid=false.
type flexNumber struct {
	value float64
	valid bool
}

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	n.value = 0
	n.valid = false

	if string(data) == "null" {
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		n.value = f
		n.valid = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			n.value = f
			n.valid = true
		}
		return nil
	}

	// Unexpected shape (object, array). Coerced to zero rather than failing
	// the whole catalog read.
	return nil
}

// flexBool decodes truthiness: JSON true, non-zero numbers, and non-empty
// strings other than "false" and "0" all count as true.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	*b = false

	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = flexBool(v)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*b = flexBool(f != 0)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = flexBool(s != "" && s != "false" && s != "0")
		return nil
	}

	return nil
}
