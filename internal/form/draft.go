// Package form implements the product form: the draft state shared by the
// add and edit flows, the validation rules gating submission, and the
// controller that loads reference data and submits drafts to the API.
package form

import (
	"strconv"

	"github.com/tair/inventory-console/internal/catalog"
)

// Field names, matching the wire names of the product record
const (
	FieldName            = "name"
	FieldDescription     = "description"
	FieldCategoryID      = "category_id"
	FieldBrand           = "brand"
	FieldQuantity        = "quantity"
	FieldUnit            = "unit"
	FieldPrice           = "price"
	FieldDiscount        = "discount"
	FieldExpiryDate      = "expiry_date"
	FieldMinStockLevel   = "min_stock_level"
	FieldReorderQuantity = "reorder_quantity"
)

// Draft is the in-progress, unsaved form state. Numeric fields hold the
// text the user typed so partially filled forms render back verbatim; they
// are coerced to numbers only on submit.
type Draft struct {
	Name            string
	Description     string
	CategoryID      string
	Brand           string
	Quantity        string
	Unit            catalog.Unit
	Price           string
	Discount        string
	ExpiryDate      string
	MinStockLevel   string
	ReorderQuantity string
}

// NewCreateDraft seeds the add-product defaults
func NewCreateDraft() Draft {
	return Draft{
		Quantity:        "0",
		Unit:            catalog.UnitPieces,
		Price:           "0.00",
		Discount:        "0.00",
		MinStockLevel:   "10",
		ReorderQuantity: "20",
	}
}

// DraftFromProduct renders an existing product into an editable draft
func DraftFromProduct(p *catalog.Product) Draft {
	return Draft{
		Name:            p.Name,
		Description:     p.Description,
		CategoryID:      strconv.FormatUint(uint64(p.CategoryID), 10),
		Brand:           p.Brand,
		Quantity:        strconv.Itoa(p.Quantity),
		Unit:            p.Unit,
		Price:           strconv.FormatFloat(p.Price, 'f', -1, 64),
		Discount:        formatOptionalFloat(p.Discount),
		ExpiryDate:      p.ExpiryDate,
		MinStockLevel:   formatOptionalInt(p.MinStockLevel),
		ReorderQuantity: formatOptionalInt(p.ReorderQuantity),
	}
}

func formatOptionalFloat(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatOptionalInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// Apply is the pure field reducer. It returns the new draft and whether
// the update was accepted. Numeric fields coerce through an integer or
// decimal parse; input that fails to parse is rejected and the draft
// returned unchanged. An empty value clears the field. Text fields store
// the value verbatim.
func Apply(d Draft, field, raw string) (Draft, bool) {
	switch field {
	case FieldName:
		d.Name = raw
	case FieldDescription:
		d.Description = raw
	case FieldCategoryID:
		d.CategoryID = raw
	case FieldBrand:
		d.Brand = raw
	case FieldUnit:
		d.Unit = catalog.Unit(raw)
	case FieldExpiryDate:
		d.ExpiryDate = raw
	case FieldQuantity:
		ok := setInt(&d.Quantity, raw)
		return d, ok
	case FieldMinStockLevel:
		ok := setInt(&d.MinStockLevel, raw)
		return d, ok
	case FieldReorderQuantity:
		ok := setInt(&d.ReorderQuantity, raw)
		return d, ok
	case FieldPrice:
		ok := setFloat(&d.Price, raw)
		return d, ok
	case FieldDiscount:
		ok := setFloat(&d.Discount, raw)
		return d, ok
	default:
		return d, false
	}
	return d, true
}

// strconv rather than cast here: cast parses integer strings with base 0,
// which turns leading zeros into octal. Keystrokes need plain decimal.

func setInt(target *string, raw string) bool {
	if raw == "" {
		*target = ""
		return true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return false
	}
	*target = strconv.Itoa(n)
	return true
}

func setFloat(target *string, raw string) bool {
	if raw == "" {
		*target = ""
		return true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return false
	}
	*target = strconv.FormatFloat(f, 'f', -1, 64)
	return true
}
