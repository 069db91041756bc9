package catalog

// Unit is the unit of measurement a product is counted in
type Unit string

const (
	UnitPieces    Unit = "pcs"
	UnitKilograms Unit = "kg"
	UnitLitres    Unit = "litre"
	UnitBox       Unit = "box"
	UnitPack      Unit = "pack"
)

// NormalizeUnit clamps an arbitrary value to the allowed enumeration.
// Anything outside it becomes pieces.
func NormalizeUnit(u Unit) Unit {
	switch u {
	case UnitPieces, UnitKilograms, UnitLitres, UnitBox, UnitPack:
		return u
	default:
		return UnitPieces
	}
}

// DisplayUnit returns the short label used when rendering quantities
func DisplayUnit(u Unit) string {
	switch u {
	case UnitKilograms:
		return "kg"
	case UnitLitres:
		return "L"
	case UnitBox:
		return "box"
	case UnitPack:
		return "pack"
	default:
		return "pcs"
	}
}

// Product represents the product entity as served by the inventory API.
// The client holds an ephemeral copy; the store owns the record.
type Product struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	CategoryID      uint    `json:"category_id"`
	Category        string  `json:"category"`
	Brand           string  `json:"brand"`
	Quantity        int     `json:"quantity"`
	Unit            Unit    `json:"unit"`
	Price           float64 `json:"price"`
	Discount        float64 `json:"discount"`
	ExpiryDate      string  `json:"expiry_date,omitempty"`
	MinStockLevel   int     `json:"min_stock_level"`
	ReorderQuantity int     `json:"reorder_quantity"`
}

// IsLowStock reports whether the product should carry a low-stock badge.
// Out-of-stock products are not counted as low stock.
func (p *Product) IsLowStock() bool {
	return p.Quantity > 0 && p.Quantity <= p.MinStockLevel
}

// Category represents a server-sourced category record used as form
// reference data
type Category struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LowStockCount returns the number of products carrying a low-stock badge
func LowStockCount(products []Product) int {
	count := 0
	for i := range products {
		if products[i].IsLowStock() {
			count++
		}
	}
	return count
}
