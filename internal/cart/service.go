package cart

import "github.com/Lawford1337/mood/internal/catalog"

// Service orchestrates cart operations. Adds go through the catalog so the
// line snapshots the product as it exists right now.
type Service struct {
	store   *Store
	catalog *catalog.Service
}

func NewService(store *Store, catalogService *catalog.Service) *Service {
	return &Service{store: store, catalog: catalogService}
}

// Add looks the product up and merges it into the cart. Returns
// catalog.ErrNotFound when the id is not in the catalog.
func (s *Service) Add(productID int) (Snapshot, error) {
	p, err := s.catalog.GetByID(productID)
	if err != nil {
		return Snapshot{}, err
	}
	s.store.Add(p)
	return s.Snapshot(), nil
}

// UpdateQuantity applies a delta to a line; absent ids are a no-op.
func (s *Service) UpdateQuantity(id, delta int) Snapshot {
	s.store.UpdateQuantity(id, delta)
	return s.Snapshot()
}

func (s *Service) Remove(id int) Snapshot {
	s.store.Remove(id)
	return s.Snapshot()
}

func (s *Service) Clear() Snapshot {
	s.store.Clear()
	return s.Snapshot()
}

// Snapshot returns the current lines with the derived aggregates.
func (s *Service) Snapshot() Snapshot {
	return Snapshot{
		Items: s.store.Items(),
		Total: s.store.Total(),
		Count: s.store.Count(),
	}
}
