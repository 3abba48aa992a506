package catalog

// Product is a catalog entry. JSON tags match the persisted slot format,
// which is also the wire format served to the storefront.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int     `json:"price"`
	Category    string  `json:"category"`
	Image       *string `json:"image,omitempty"`
}

// Draft is the operator-submitted payload for create/update. Price arrives
// as a string because it comes straight from a form field; validation
// parses it before any mutation happens.
type Draft struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	Category    string  `json:"category"`
	Image       *string `json:"image,omitempty"`
}

// Seed is the built-in menu used when the products slot is empty or
// unreadable. IDs are stable so carts persisted against the seed stay valid.
func Seed() []Product {
	return []Product{
		{ID: 1, Name: "Double Espresso", Description: "Rich and invigorating", Price: 450, Category: "coffee", Image: ptrString("/images/double-espresso.jpg")},
		{ID: 2, Name: "Cappuccino Grande", Description: "The classic with foam", Price: 750, Category: "coffee", Image: ptrString("/images/cappuccino-grande.jpg")},
		{ID: 3, Name: "Matcha Latte", Description: "Japanese green tea", Price: 950, Category: "coffee", Image: ptrString("/images/matcha-latte.jpg")},
		{ID: 4, Name: "Almond Croissant", Description: "Freshly baked", Price: 650, Category: "bakery", Image: ptrString("/images/almond-croissant.jpg")},
		{ID: 5, Name: "New York Cheesecake", Description: "Creamy dessert", Price: 1200, Category: "dessert", Image: ptrString("/images/ny-cheesecake.jpg")},
		{ID: 6, Name: "Avocado Toast", Description: "Healthy breakfast", Price: 1500, Category: "food", Image: ptrString("/images/avocado-toast.jpg")},
		{ID: 7, Name: "Berry Smoothie", Description: "Fresh berries", Price: 1100, Category: "drinks", Image: ptrString("/images/berry-smoothie.jpg")},
		{ID: 8, Name: "Tiramisu", Description: "Italian dessert", Price: 1300, Category: "dessert", Image: ptrString("/images/tiramisu.jpg")},
	}
}

func ptrString(s string) *string { return &s }
