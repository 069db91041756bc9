package form

import (
	"github.com/spf13/cast"

	"github.com/tair/inventory-console/internal/api"
	"github.com/tair/inventory-console/internal/catalog"
)

// Payload normalizes a validated draft into the request body for the API:
// numeric strings become numbers, an empty expiry date is omitted, and the
// unit is clamped to the allowed enumeration. The create flow falls back
// to its seed defaults for emptied numeric fields; the edit flow sends
// null for emptied optionals.
func (d Draft) Payload(mode Mode) api.ProductPayload {
	p := api.ProductPayload{
		Name:        d.Name,
		Description: d.Description,
		CategoryID:  cast.ToUint(d.CategoryID),
		Brand:       d.Brand,
		Unit:        catalog.NormalizeUnit(d.Unit),
	}
	if d.ExpiryDate != "" {
		expiry := d.ExpiryDate
		p.ExpiryDate = &expiry
	}

	if mode == ModeCreate {
		p.Quantity = intOr(d.Quantity, 0)
		p.Price = floatOr(d.Price, 0)
		discount := floatOr(d.Discount, 0)
		minStock := intOr(d.MinStockLevel, 10)
		reorder := intOr(d.ReorderQuantity, 20)
		p.Discount = &discount
		p.MinStockLevel = &minStock
		p.ReorderQuantity = &reorder
		return p
	}

	p.Quantity = cast.ToInt(d.Quantity)
	p.Price = cast.ToFloat64(d.Price)
	if d.Discount != "" {
		discount := cast.ToFloat64(d.Discount)
		p.Discount = &discount
	}
	if d.MinStockLevel != "" {
		minStock := cast.ToInt(d.MinStockLevel)
		p.MinStockLevel = &minStock
	}
	if d.ReorderQuantity != "" {
		reorder := cast.ToInt(d.ReorderQuantity)
		p.ReorderQuantity = &reorder
	}
	return p
}

func intOr(raw string, fallback int) int {
	n, err := cast.ToIntE(raw)
	if err != nil || raw == "" {
		return fallback
	}
	return n
}

func floatOr(raw string, fallback float64) float64 {
	f, err := cast.ToFloat64E(raw)
	if err != nil || raw == "" {
		return fallback
	}
	return f
}
