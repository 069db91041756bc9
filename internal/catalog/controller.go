package catalog

import (
	"context"
	"fmt"

	"github.com/tair/inventory-console/pkg/logger"
)

// ProductSource is the slice of the API the catalog view consumes
type ProductSource interface {
	ListProducts(ctx context.Context) ([]Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

// Controller owns the product list shown by the catalog view. The list is
// an explicit cache with a single writer: it is replaced wholesale on Load
// and re-fetched after every delete, never patched in place.
type Controller struct {
	source   ProductSource
	products []Product
	deleting map[uint]bool
	loaded   bool
}

// NewController creates a catalog controller
func NewController(source ProductSource) *Controller {
	return &Controller{
		source:   source,
		deleting: make(map[uint]bool),
	}
}

// Load refreshes the owned product list from the API
func (c *Controller) Load(ctx context.Context) error {
	products, err := c.source.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}
	c.products = products
	c.loaded = true
	return nil
}

// Products returns the current cached list
func (c *Controller) Products() []Product {
	return c.products
}

// Loaded reports whether a load has completed
func (c *Controller) Loaded() bool {
	return c.loaded
}

// View derives the grouped display structure for the current query
func (c *Controller) View(q Query) []Group {
	return DeriveView(c.products, q)
}

// LowStock returns the badge count for the current list
func (c *Controller) LowStock() int {
	return LowStockCount(c.products)
}

// Delete removes one product and refreshes the list. A second delete for
// an id already in flight is ignored, serializing repeated clicks on the
// same row.
func (c *Controller) Delete(ctx context.Context, id uint) error {
	if c.deleting[id] {
		return nil
	}
	c.deleting[id] = true
	defer delete(c.deleting, id)

	if err := c.source.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	logger.Info().Uint("product_id", id).Msg("Product deleted")

	if err := c.Load(ctx); err != nil {
		return err
	}
	return nil
}
