package form

import (
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Mode selects which rule set gates a draft. The create and edit flows
// ship intentionally different rules (price < 0 vs <= 0, reorder quantity
// >= 0 vs > 0); they are kept as two explicit sets rather than merged.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Validate maps a draft to field-level error messages. Pure and
// deterministic; an empty map means the draft is submittable. Optimistic
// clearing happens in the controller: an entry is removed the moment its
// field changes, not re-validated.
func Validate(d Draft, mode Mode) map[string]string {
	return validateAt(d, mode, time.Now())
}

func validateAt(d Draft, mode Mode, now time.Time) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(d.Name) == "" {
		errs[FieldName] = "Product name is required"
	}
	if d.CategoryID == "" {
		errs[FieldCategoryID] = "Category is required"
	}

	if mode == ModeCreate {
		validateCreate(d, errs)
	} else {
		validateEdit(d, errs, now)
	}
	return errs
}

// validateCreate applies the add-flow rules: empty numeric fields pass,
// negative values do not.
func validateCreate(d Draft, errs map[string]string) {
	if n, err := cast.ToIntE(d.Quantity); err == nil && n < 0 {
		errs[FieldQuantity] = "Quantity cannot be negative"
	}
	if f, err := cast.ToFloat64E(d.Price); err == nil && f < 0 {
		errs[FieldPrice] = "Price cannot be negative"
	}
	if f, err := cast.ToFloat64E(d.Discount); err == nil && (f < 0 || f > 100) {
		errs[FieldDiscount] = "Discount must be between 0 and 100"
	}
	if n, err := cast.ToIntE(d.MinStockLevel); err == nil && n < 0 {
		errs[FieldMinStockLevel] = "Minimum stock level cannot be negative"
	}
	if n, err := cast.ToIntE(d.ReorderQuantity); err == nil && n < 0 {
		errs[FieldReorderQuantity] = "Reorder quantity cannot be negative"
	}
}

// validateEdit applies the edit-flow rules: price and quantity are
// mandatory, optional fields are checked only when present, and the expiry
// date must not be in the past.
func validateEdit(d Draft, errs map[string]string, now time.Time) {
	if f, err := cast.ToFloat64E(d.Price); d.Price == "" || err != nil || f <= 0 {
		errs[FieldPrice] = "Price must be greater than 0"
	}
	if n, err := cast.ToIntE(d.Quantity); d.Quantity == "" || err != nil || n < 0 {
		errs[FieldQuantity] = "Quantity cannot be negative"
	}
	if d.Discount != "" {
		if f, err := cast.ToFloat64E(d.Discount); err == nil && (f < 0 || f > 100) {
			errs[FieldDiscount] = "Discount must be between 0 and 100"
		}
	}
	if d.MinStockLevel != "" {
		if n, err := cast.ToIntE(d.MinStockLevel); err == nil && n < 0 {
			errs[FieldMinStockLevel] = "Minimum stock level cannot be negative"
		}
	}
	if d.ReorderQuantity != "" {
		if n, err := cast.ToIntE(d.ReorderQuantity); err == nil && n <= 0 {
			errs[FieldReorderQuantity] = "Reorder quantity must be greater than 0"
		}
	}
	if d.ExpiryDate != "" {
		if expiry, err := time.Parse("2006-01-02", d.ExpiryDate); err == nil {
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			if expiry.Before(today) {
				errs[FieldExpiryDate] = "Expiry date cannot be in the past"
			}
		}
	}
}
