package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort fields accepted by Query.SortBy
const (
	SortByName     = "name"
	SortByPrice    = "price"
	SortByQuantity = "quantity"
)

// Sort directions accepted by Query.Order
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// UncategorizedSlug is the bucket for products without a category
const UncategorizedSlug = "uncategorized"

// Query holds the current search, filter and sort selection of the catalog
// view
type Query struct {
	Search   string
	Category string
	SortBy   string
	Order    string
}

// NewQuery returns the default catalog query: sorted by name ascending,
// no search, all categories.
func NewQuery() Query {
	return Query{SortBy: SortByName, Order: OrderAsc}
}

// Toggle selects a sort field. Selecting the active field flips the
// direction; selecting a new field resets to ascending.
func (q *Query) Toggle(field string) {
	if q.SortBy == field {
		if q.Order == OrderAsc {
			q.Order = OrderDesc
		} else {
			q.Order = OrderAsc
		}
		return
	}
	q.SortBy = field
	q.Order = OrderAsc
}

// Group is one category section of the derived view
type Group struct {
	Slug     string
	Label    string
	Products []Product
}

// PriceView is the display-ready price of a product. When a discount
// applies, Original carries the struck-through price and Effective the
// discounted one; otherwise Effective alone is set.
type PriceView struct {
	Original  string
	Effective string
	Discount  float64
}

// StockStatus classifies a product's stock level for display
type StockStatus struct {
	Text  string
	Class string
}

var nameCollator = collate.New(language.English)

// DeriveView runs the filter, sort and group pipeline over the product
// list. Filtering matches the search term against name, brand and
// description case-insensitively and applies the category filter; both are
// identity when empty. Sorting is stable. Groups preserve the first
// occurrence order of each category in the sorted list.
func DeriveView(products []Product, q Query) []Group {
	filtered := make([]Product, 0, len(products))
	search := strings.ToLower(q.Search)
	for _, p := range products {
		matchesSearch := search == "" ||
			strings.Contains(strings.ToLower(p.Name), search) ||
			strings.Contains(strings.ToLower(p.Brand), search) ||
			strings.Contains(strings.ToLower(p.Description), search)
		matchesCategory := q.Category == "" || p.Category == q.Category
		if matchesSearch && matchesCategory {
			filtered = append(filtered, p)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		cmp := compare(&filtered[i], &filtered[j], q.SortBy)
		if q.Order == OrderDesc {
			cmp = -cmp
		}
		return cmp < 0
	})

	var groups []Group
	index := make(map[string]int)
	for _, p := range filtered {
		slug := p.Category
		if slug == "" {
			slug = UncategorizedSlug
		}
		i, ok := index[slug]
		if !ok {
			i = len(groups)
			index[slug] = i
			groups = append(groups, Group{Slug: slug, Label: LabelFor(slug)})
		}
		groups[i].Products = append(groups[i].Products, p)
	}
	return groups
}

func compare(a, b *Product, sortBy string) int {
	switch sortBy {
	case SortByPrice:
		switch {
		case a.Price < b.Price:
			return -1
		case a.Price > b.Price:
			return 1
		}
		return 0
	case SortByQuantity:
		return a.Quantity - b.Quantity
	default:
		return nameCollator.CompareString(a.Name, b.Name)
	}
}

// Stock derives the stock status label for a product
func Stock(p *Product) StockStatus {
	unit := DisplayUnit(p.Unit)
	switch {
	case p.Quantity == 0:
		return StockStatus{Text: "Out of Stock", Class: "stock-out"}
	case p.Quantity <= p.MinStockLevel:
		return StockStatus{
			Text:  fmt.Sprintf("Low Stock (%d %s available)", p.Quantity, unit),
			Class: "low-stock",
		}
	default:
		return StockStatus{
			Text:  fmt.Sprintf("%d %s in stock", p.Quantity, unit),
			Class: "in-stock",
		}
	}
}

// EffectivePrice derives the display price. A positive discount yields the
// original price plus the discounted price rounded to 2 decimals.
func EffectivePrice(p *Product) PriceView {
	price := decimal.NewFromFloat(p.Price)
	if p.Discount > 0 {
		factor := decimal.NewFromInt(1).
			Sub(decimal.NewFromFloat(p.Discount).Div(decimal.NewFromInt(100)))
		return PriceView{
			Original:  price.StringFixed(2),
			Effective: price.Mul(factor).Round(2).StringFixed(2),
			Discount:  p.Discount,
		}
	}
	return PriceView{Effective: price.StringFixed(2)}
}
