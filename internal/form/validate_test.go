package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validCreateDraft() Draft {
	d := NewCreateDraft()
	d.Name = "Milk"
	d.CategoryID = "2"
	d.Quantity = "10"
	d.Price = "40.00"
	return d
}

func validEditDraft() Draft {
	return Draft{
		Name:            "Milk",
		CategoryID:      "2",
		Quantity:        "5",
		Unit:            "litre",
		Price:           "20",
		Discount:        "10",
		MinStockLevel:   "10",
		ReorderQuantity: "15",
	}
}

func TestValidateCreateValidDraftIsSubmittable(t *testing.T) {
	assert.Empty(t, Validate(validCreateDraft(), ModeCreate))
}

func TestValidateEditValidDraftIsSubmittable(t *testing.T) {
	assert.Empty(t, Validate(validEditDraft(), ModeEdit))
}

func TestValidateRequiredFields(t *testing.T) {
	for _, mode := range []Mode{ModeCreate, ModeEdit} {
		d := validCreateDraft()
		if mode == ModeEdit {
			d = validEditDraft()
		}
		d.Name = "   "
		d.CategoryID = ""

		errs := Validate(d, mode)
		assert.Len(t, errs, 2, "exactly the missing fields are flagged")
		assert.Equal(t, "Product name is required", errs[FieldName])
		assert.Equal(t, "Category is required", errs[FieldCategoryID])
	}
}

func TestValidateCreateRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Draft)
		field   string
		message string
	}{
		{"negative quantity", func(d *Draft) { d.Quantity = "-1" }, FieldQuantity, "Quantity cannot be negative"},
		{"negative price", func(d *Draft) { d.Price = "-0.01" }, FieldPrice, "Price cannot be negative"},
		{"discount above 100", func(d *Draft) { d.Discount = "101" }, FieldDiscount, "Discount must be between 0 and 100"},
		{"negative discount", func(d *Draft) { d.Discount = "-5" }, FieldDiscount, "Discount must be between 0 and 100"},
		{"negative min stock", func(d *Draft) { d.MinStockLevel = "-2" }, FieldMinStockLevel, "Minimum stock level cannot be negative"},
		{"negative reorder", func(d *Draft) { d.ReorderQuantity = "-1" }, FieldReorderQuantity, "Reorder quantity cannot be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validCreateDraft()
			tt.mutate(&d)

			errs := Validate(d, ModeCreate)
			assert.Len(t, errs, 1)
			assert.Equal(t, tt.message, errs[tt.field])
		})
	}
}

func TestValidateCreateAllowsWhatEditRejects(t *testing.T) {
	// The create and edit flows carry intentionally different rules.
	d := validCreateDraft()
	d.Price = "0"
	d.ReorderQuantity = "0"
	assert.Empty(t, Validate(d, ModeCreate))

	e := validEditDraft()
	e.Price = "0"
	e.ReorderQuantity = "0"
	errs := Validate(e, ModeEdit)
	assert.Equal(t, "Price must be greater than 0", errs[FieldPrice])
	assert.Equal(t, "Reorder quantity must be greater than 0", errs[FieldReorderQuantity])
}

func TestValidateEditRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Draft)
		field   string
		message string
	}{
		{"empty price", func(d *Draft) { d.Price = "" }, FieldPrice, "Price must be greater than 0"},
		{"zero price", func(d *Draft) { d.Price = "0" }, FieldPrice, "Price must be greater than 0"},
		{"empty quantity", func(d *Draft) { d.Quantity = "" }, FieldQuantity, "Quantity cannot be negative"},
		{"negative quantity", func(d *Draft) { d.Quantity = "-1" }, FieldQuantity, "Quantity cannot be negative"},
		{"discount out of range", func(d *Draft) { d.Discount = "150" }, FieldDiscount, "Discount must be between 0 and 100"},
		{"negative min stock", func(d *Draft) { d.MinStockLevel = "-1" }, FieldMinStockLevel, "Minimum stock level cannot be negative"},
		{"zero reorder", func(d *Draft) { d.ReorderQuantity = "0" }, FieldReorderQuantity, "Reorder quantity must be greater than 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validEditDraft()
			tt.mutate(&d)

			errs := Validate(d, ModeEdit)
			assert.Len(t, errs, 1)
			assert.Equal(t, tt.message, errs[tt.field])
		})
	}
}

func TestValidateEditOptionalFieldsMayBeEmpty(t *testing.T) {
	d := validEditDraft()
	d.Discount = ""
	d.MinStockLevel = ""
	d.ReorderQuantity = ""
	d.ExpiryDate = ""
	assert.Empty(t, Validate(d, ModeEdit))
}

func TestValidateEditExpiryDate(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	d := validEditDraft()
	d.ExpiryDate = "2026-08-29"
	errs := validateAt(d, ModeEdit, now)
	assert.Equal(t, "Expiry date cannot be in the past", errs[FieldExpiryDate])

	d.ExpiryDate = "2026-08-30"
	assert.Empty(t, validateAt(d, ModeEdit, now), "today is not in the past")

	d.ExpiryDate = "2027-01-01"
	assert.Empty(t, validateAt(d, ModeEdit, now))

	// create flow does not check the expiry date
	c := validCreateDraft()
	c.ExpiryDate = "2020-01-01"
	assert.Empty(t, validateAt(c, ModeCreate, now))
}
