package catalog

// TaxonomyEntry is a display-side category: a slug used for filtering and
// grouping plus the label and description shown to the user. This table is
// distinct from the server-sourced Category list used by the forms; the two
// are reconciled by slug.
type TaxonomyEntry struct {
	Slug        string
	Label       string
	Description string
}

// Taxonomy is the supermarket category table, in display order.
var Taxonomy = []TaxonomyEntry{
	{
		Slug:        "groceries-staples",
		Label:       "Groceries & Staples",
		Description: "Essentials like rice, wheat, pulses, sugar, oil",
	},
	{
		Slug:        "fruits-vegetables",
		Label:       "Fruits & Vegetables",
		Description: "Fresh produce — daily household need",
	},
	{
		Slug:        "dairy-bakery",
		Label:       "Dairy & Bakery",
		Description: "Milk, cheese, butter, bread, cakes",
	},
	{
		Slug:        "snacks-packaged",
		Label:       "Snacks & Packaged Food",
		Description: "Chips, biscuits, noodles, ready-to-eat items",
	},
	{
		Slug:        "beverages",
		Label:       "Beverages",
		Description: "Water, juices, tea, coffee, soft drinks",
	},
	{
		Slug:        "personal-care",
		Label:       "Personal Care",
		Description: "Soaps, shampoos, toothpaste, hygiene products",
	},
	{
		Slug:        "household",
		Label:       "Household Essentials",
		Description: "Detergents, cleaning supplies, tissues",
	},
	{
		Slug:        "meat-seafood",
		Label:       "Meat & Seafood",
		Description: "Fresh/frozen meat and fish",
	},
}

// LabelFor returns the display label for a category slug, falling back to
// "Uncategorized" for unknown or empty slugs.
func LabelFor(slug string) string {
	for _, entry := range Taxonomy {
		if entry.Slug == slug {
			return entry.Label
		}
	}
	return "Uncategorized"
}
