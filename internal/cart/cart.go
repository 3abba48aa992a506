package cart

import "github.com/Lawford1337/mood/internal/catalog"

// Line is one cart entry: a snapshot of the product taken at add-time plus
// a quantity. Later catalog edits never reach into an existing line — the
// price a customer saw when they added the item is the price the line keeps.
type Line struct {
	ProductID   int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int     `json:"price"`
	Category    string  `json:"category"`
	Image       *string `json:"image,omitempty"`
	Quantity    int     `json:"quantity"`
}

// snapshot copies the product's current fields into a fresh line.
func snapshot(p catalog.Product, qty int) Line {
	return Line{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Image:       p.Image,
		Quantity:    qty,
	}
}

// Snapshot is the read-only view handed back after every cart operation:
// the lines plus the aggregates derived from them.
type Snapshot struct {
	Items []Line `json:"items"`
	Total int    `json:"total"`
	Count int    `json:"count"`
}
