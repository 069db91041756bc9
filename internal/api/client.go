package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tair/inventory-console/internal/catalog"
	"github.com/tair/inventory-console/pkg/logger"
)

const defaultTimeout = 10 * time.Second

// Client is a typed HTTP client for the inventory API. All endpoints live
// under the /api prefix of the configured base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New creates a new inventory API client
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/api",
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ProductPayload is the request body for create and update calls. Pointer
// fields distinguish "absent" from zero so the optional columns can be
// cleared server-side.
type ProductPayload struct {
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	CategoryID      uint         `json:"category_id"`
	Brand           string       `json:"brand"`
	Quantity        int          `json:"quantity"`
	Unit            catalog.Unit `json:"unit"`
	Price           float64      `json:"price"`
	Discount        *float64     `json:"discount"`
	ExpiryDate      *string      `json:"expiry_date"`
	MinStockLevel   *int         `json:"min_stock_level"`
	ReorderQuantity *int         `json:"reorder_quantity"`
}

// ListProducts fetches all products
func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct fetches a single product by ID
func (c *Client) GetProduct(ctx context.Context, id uint) (*catalog.Product, error) {
	var product catalog.Product
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &product)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &product, nil
}

// CreateProduct creates a product. The store assigns the ID.
func (c *Client) CreateProduct(ctx context.Context, payload ProductPayload) (*catalog.Product, error) {
	var created catalog.Product
	if err := c.do(ctx, http.MethodPost, "/products", payload, &created); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &created, nil
}

// UpdateProduct updates an existing product
func (c *Client) UpdateProduct(ctx context.Context, id uint, payload ProductPayload) (*catalog.Product, error) {
	var updated catalog.Product
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), payload, &updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", id, err)
	}
	return &updated, nil
}

// DeleteProduct removes a product
func (c *Client) DeleteProduct(ctx context.Context, id uint) error {
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
	if err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return nil
}

// ListCategories fetches the category reference data
func (c *Client) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	var categories []catalog.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// do issues one request and decodes the JSON response into out. Non-2xx
// responses become *Error with the optional server message attached.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error().
			Str("method", method).
			Str("path", path).
			Err(err).
			Msg("Request failed")
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("API request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError reads the optional {"message": "..."} error body
func decodeError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = body.Message
	}
	return apiErr
}
