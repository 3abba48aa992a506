package catalog

import (
	"errors"

	"github.com/Lawford1337/mood/internal/storage"
)

var ErrNotFound = errors.New("product not found")

// SlotKey is the durable slot owning the product catalog.
const SlotKey = "products"

// WildcardCategory matches every product when filtering.
const WildcardCategory = "all"

// Store owns the product catalog, write-through to its durable slot.
// It is the admin-variant sibling of the cart store: same shape, its own slot.
type Store struct {
	bind *storage.Binding[[]Product]
}

// NewStore binds the products slot, seeding the built-in menu when the
// slot is absent or unreadable.
func NewStore(st *storage.Store) *Store {
	return &Store{bind: storage.Bind(st, SlotKey, Seed())}
}

// List returns a copy of the catalog in stored order.
func (s *Store) List() []Product {
	cur := s.bind.Get()
	out := make([]Product, len(cur))
	copy(out, cur)
	return out
}

func (s *Store) GetByID(id int) (Product, error) {
	for _, p := range s.bind.Get() {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

// Create appends p with a freshly assigned id (max existing + 1, so a new
// id never collides with any live or seed product) and returns it.
func (s *Store) Create(p Product) Product {
	s.bind.Update(func(products []Product) []Product {
		maxID := 0
		for _, cur := range products {
			if cur.ID > maxID {
				maxID = cur.ID
			}
		}
		p.ID = maxID + 1
		return append(products, p)
	})
	return p
}

// Update replaces the product with matching id in place, keeping its
// position in the catalog.
func (s *Store) Update(id int, p Product) (Product, error) {
	found := false
	s.bind.Update(func(products []Product) []Product {
		for i := range products {
			if products[i].ID == id {
				p.ID = id
				products[i] = p
				found = true
				break
			}
		}
		return products
	})
	if !found {
		return Product{}, ErrNotFound
	}
	return p, nil
}

// Delete removes the product. Cart lines already holding a snapshot of it
// are deliberately left alone.
func (s *Store) Delete(id int) error {
	found := false
	s.bind.Update(func(products []Product) []Product {
		for i := range products {
			if products[i].ID == id {
				found = true
				return append(products[:i], products[i+1:]...)
			}
		}
		return products
	})
	if !found {
		return ErrNotFound
	}
	return nil
}

// FilterByCategory is a pure read-side projection; it never mutates the
// catalog. The wildcard (or an empty selection) returns everything.
func (s *Store) FilterByCategory(selected string) []Product {
	cur := s.bind.Get()
	if selected == "" || selected == WildcardCategory {
		out := make([]Product, len(cur))
		copy(out, cur)
		return out
	}
	out := make([]Product, 0, len(cur))
	for _, p := range cur {
		if p.Category == selected {
			out = append(out, p)
		}
	}
	return out
}
