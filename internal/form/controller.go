package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cast"
	"golang.org/x/sync/errgroup"

	"github.com/tair/inventory-console/internal/api"
	"github.com/tair/inventory-console/internal/catalog"
	"github.com/tair/inventory-console/pkg/logger"
)

// ErrValidation is returned by Submit when the draft fails validation.
// Field messages are available from Errors; no request is issued.
var ErrValidation = errors.New("validation failed")

// State is the form lifecycle phase
type State int

const (
	StateLoading State = iota
	StateReady
	StateSubmitting
)

// Navigator receives the route change after a successful submission
type Navigator interface {
	Navigate(route string)
}

// Service is the slice of the API the form consumes
type Service interface {
	ListCategories(ctx context.Context) ([]catalog.Category, error)
	GetProduct(ctx context.Context, id uint) (*catalog.Product, error)
	CreateProduct(ctx context.Context, payload api.ProductPayload) (*catalog.Product, error)
	UpdateProduct(ctx context.Context, id uint, payload api.ProductPayload) (*catalog.Product, error)
}

// Controller orchestrates one add or edit form: it loads reference data,
// holds the draft, gates submission through Validate and issues the create
// or update call. Exactly one mutating request is in flight at a time.
type Controller struct {
	mode      Mode
	svc       Service
	nav       Navigator
	productID uint

	state      State
	draft      Draft
	errors     map[string]string
	categories []catalog.Category
	banner     string
	loadErr    string
}

// NewCreate builds the add-product form controller
func NewCreate(svc Service, nav Navigator) *Controller {
	return &Controller{
		mode:   ModeCreate,
		svc:    svc,
		nav:    nav,
		state:  StateLoading,
		draft:  NewCreateDraft(),
		errors: make(map[string]string),
	}
}

// NewEdit builds the edit form controller for an existing product
func NewEdit(svc Service, nav Navigator, productID uint) *Controller {
	return &Controller{
		mode:      ModeEdit,
		svc:       svc,
		nav:       nav,
		productID: productID,
		state:     StateLoading,
		errors:    make(map[string]string),
	}
}

// State returns the current lifecycle phase
func (c *Controller) State() State { return c.state }

// Draft returns the current draft
func (c *Controller) Draft() Draft { return c.draft }

// Errors returns the field-level validation messages
func (c *Controller) Errors() map[string]string { return c.errors }

// Banner returns the submission error banner, empty when none
func (c *Controller) Banner() string { return c.banner }

// LoadError returns the retryable reference-data error, empty when none
func (c *Controller) LoadError() string { return c.loadErr }

// Categories returns the loaded reference data
func (c *Controller) Categories() []catalog.Category { return c.categories }

// CategoryByID resolves the selected category from the reference data
func (c *Controller) CategoryByID(id string) (catalog.Category, bool) {
	n, err := cast.ToUintE(id)
	if err != nil {
		return catalog.Category{}, false
	}
	for _, cat := range c.categories {
		if cat.ID == n {
			return cat, true
		}
	}
	return catalog.Category{}, false
}

// Load fetches the reference data the form needs before edits are allowed.
// The edit flow fetches the target product and the category list
// concurrently and joins both: if either fails the whole load fails and
// nothing renders. A failed load can be retried by calling Load again.
func (c *Controller) Load(ctx context.Context) error {
	c.state = StateLoading
	c.loadErr = ""

	if c.mode == ModeCreate {
		categories, err := c.svc.ListCategories(ctx)
		if err != nil {
			c.loadErr = api.FailureMessage(err, "Failed to load categories. Please try again.")
			return err
		}
		c.categories = categories
		c.state = StateReady
		return nil
	}

	var (
		product    *catalog.Product
		categories []catalog.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		product, err = c.svc.GetProduct(gctx, c.productID)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = c.svc.ListCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		c.loadErr = api.FailureMessage(err, "Error fetching product data")
		return err
	}

	c.draft = DraftFromProduct(product)
	c.categories = categories
	c.state = StateReady

	logger.Debug().
		Uint("product_id", c.productID).
		Int("categories", len(categories)).
		Msg("Edit form loaded")
	return nil
}

// UpdateField runs one keystroke through the reducer. An accepted update
// also clears any existing validation error for that field; a rejected
// one leaves both the draft and the errors untouched.
func (c *Controller) UpdateField(field, raw string) bool {
	if c.state != StateReady {
		return false
	}
	next, ok := Apply(c.draft, field, raw)
	if !ok {
		return false
	}
	c.draft = next
	delete(c.errors, field)
	return true
}

// Submit validates the draft and issues the create or update request. A
// validation failure stores the field messages and returns ErrValidation
// without touching the network. On success the controller navigates away;
// on API failure the server message (or a generic fallback) lands in the
// banner and the form returns to ready.
func (c *Controller) Submit(ctx context.Context) error {
	if c.state != StateReady {
		return fmt.Errorf("form is not ready to submit")
	}

	if errs := Validate(c.draft, c.mode); len(errs) > 0 {
		c.errors = errs
		return ErrValidation
	}

	c.state = StateSubmitting
	c.banner = ""

	payload := c.draft.Payload(c.mode)

	var err error
	if c.mode == ModeCreate {
		_, err = c.svc.CreateProduct(ctx, payload)
	} else {
		_, err = c.svc.UpdateProduct(ctx, c.productID, payload)
	}

	c.state = StateReady
	if err != nil {
		fallback := "Failed to add product. Please try again."
		if c.mode == ModeEdit {
			fallback = "Error updating product"
		}
		c.banner = api.FailureMessage(err, fallback)
		return err
	}

	if c.mode == ModeCreate {
		logger.Info().Str("name", payload.Name).Msg("Product added")
		c.nav.Navigate("/")
	} else {
		logger.Info().Uint("product_id", c.productID).Msg("Product updated")
		c.nav.Navigate("/products")
	}
	return nil
}
