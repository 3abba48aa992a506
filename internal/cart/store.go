package cart

import (
	"github.com/Lawford1337/mood/internal/catalog"
	"github.com/Lawford1337/mood/internal/storage"
)

// SlotKey is the durable slot owning the cart.
const SlotKey = "cart"

// Store owns the ordered cart lines, write-through to the cart slot.
// Insertion order is preserved: the first add stays first, quantity edits
// never reorder.
type Store struct {
	bind *storage.Binding[[]Line]
}

func NewStore(st *storage.Store) *Store {
	return &Store{bind: storage.Bind(st, SlotKey, []Line{})}
}

// Add merges the product into the cart: an existing line for the same id
// has its quantity bumped, otherwise a new line with quantity 1 is
// appended. Never fails.
func (s *Store) Add(p catalog.Product) {
	s.bind.Update(func(lines []Line) []Line {
		for i := range lines {
			if lines[i].ProductID == p.ID {
				lines[i].Quantity++
				return lines
			}
		}
		return append(lines, snapshot(p, 1))
	})
}

// UpdateQuantity applies delta to the line's quantity, flooring at zero.
// A line that reaches zero is removed, never stored at zero. An absent id
// is a no-op.
func (s *Store) UpdateQuantity(id, delta int) {
	s.bind.Update(func(lines []Line) []Line {
		for i := range lines {
			if lines[i].ProductID != id {
				continue
			}
			q := lines[i].Quantity + delta
			if q <= 0 {
				return append(lines[:i], lines[i+1:]...)
			}
			lines[i].Quantity = q
			return lines
		}
		return lines
	})
}

// Remove drops the line with that id; no-op when absent, so calling it
// twice is the same as calling it once.
func (s *Store) Remove(id int) {
	s.bind.Update(func(lines []Line) []Line {
		for i := range lines {
			if lines[i].ProductID == id {
				return append(lines[:i], lines[i+1:]...)
			}
		}
		return lines
	})
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.bind.Set([]Line{})
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []Line {
	cur := s.bind.Get()
	out := make([]Line, len(cur))
	copy(out, cur)
	return out
}

// Total is the sum of price×quantity over all lines, recomputed per read.
func (s *Store) Total() int {
	total := 0
	for _, l := range s.bind.Get() {
		total += l.Price * l.Quantity
	}
	return total
}

// Count is the sum of quantities over all lines.
func (s *Store) Count() int {
	count := 0
	for _, l := range s.bind.Get() {
		count += l.Quantity
	}
	return count
}
