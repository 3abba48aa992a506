package category

import (
	"errors"

	"github.com/Lawford1337/mood/internal/storage"
)

var ErrUnknownCategory = errors.New("unknown category")

// SlotKey is the durable slot owning the selected category.
const SlotKey = "selectedCategory"

// Service owns the persisted category selection. It also implements the
// catalog handler's CategorySelection interface.
type Service struct {
	bind *storage.Binding[string]
}

func NewService(st *storage.Store) *Service {
	return &Service{bind: storage.Bind(st, SlotKey, DefaultID)}
}

// Selected returns the current selection, falling back to the wildcard
// when the persisted value is not a configured category.
func (s *Service) Selected() string {
	if id := s.bind.Get(); IsValid(id) {
		return id
	}
	return DefaultID
}

// Select persists the choice; unrecognized ids are rejected untouched.
func (s *Service) Select(id string) error {
	if !IsValid(id) {
		return ErrUnknownCategory
	}
	s.bind.Set(id)
	return nil
}
