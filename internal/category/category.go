package category

// Category is one storefront filter tab. The "all" entry is the wildcard
// that leaves the catalog unfiltered.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// DefaultID is the fallback selection.
const DefaultID = "all"

// Categories is the fixed set, in display order.
var Categories = []Category{
	{ID: "all", Label: "All"},
	{ID: "coffee", Label: "Coffee"},
	{ID: "bakery", Label: "Bakery"},
	{ID: "food", Label: "Food"},
	{ID: "dessert", Label: "Desserts"},
	{ID: "drinks", Label: "Drinks"},
}

// IsValid reports whether id names a configured category.
func IsValid(id string) bool {
	for _, c := range Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
