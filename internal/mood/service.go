package mood

import (
	"errors"

	"github.com/Lawford1337/mood/internal/storage"
)

var ErrUnknownMood = errors.New("unknown mood")

// SlotKey is the durable slot owning the active mood.
const SlotKey = "activeMood"

// Service owns the persisted mood selection.
type Service struct {
	bind *storage.Binding[string]
}

func NewService(st *storage.Store) *Service {
	return &Service{bind: storage.Bind(st, SlotKey, DefaultID)}
}

// Active returns the current mood, falling back to the default when the
// persisted value is not recognized (e.g. a stale id from an older build).
func (s *Service) Active() Mood {
	if m, ok := ByID(s.bind.Get()); ok {
		return m
	}
	m, _ := ByID(DefaultID)
	return m
}

// Select persists the choice. Unrecognized ids are rejected without
// touching the stored value.
func (s *Service) Select(id string) (Mood, error) {
	m, ok := ByID(id)
	if !ok {
		return Mood{}, ErrUnknownMood
	}
	s.bind.Set(id)
	return m, nil
}
