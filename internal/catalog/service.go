package catalog

// Service orchestrates catalog operations on top of the store.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) List() []Product {
	return s.store.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.store.GetByID(id)
}

func (s *Service) Create(p Product) Product {
	return s.store.Create(p)
}

func (s *Service) Update(id int, p Product) (Product, error) {
	return s.store.Update(id, p)
}

func (s *Service) Delete(id int) error {
	return s.store.Delete(id)
}

// Filtered returns the catalog narrowed to the selected category.
func (s *Service) Filtered(selected string) []Product {
	return s.store.FilterByCategory(selected)
}
