package storage

import (
	"encoding/json"
	"log"
	"os"
	"sync"
)

// Store is a file-backed slot store: a single JSON file on disk mapping
// slot names to raw JSON values. It plays the role browser localStorage
// plays for the frontend — one durable file per running instance, each
// feature owning its own named slot.
//
// Writes are atomic: the full map is written to path+".tmp" and then
// renamed over the real file, so a crash mid-write never corrupts
// previously saved slots.
type Store struct {
	mu    sync.Mutex
	path  string
	slots map[string]json.RawMessage
}

// Open loads the slot file at path. A missing file starts an empty store;
// an unreadable or malformed file is logged and also starts empty — slot
// owners fall back to their compile-time defaults, the session keeps
// working and the next successful write replaces the bad file.
func Open(path string) *Store {
	s := &Store{path: path, slots: make(map[string]json.RawMessage)}

	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("storage: read %s: %v", path, err)
		}
		return s
	}
	if err := json.Unmarshal(b, &s.slots); err != nil {
		log.Printf("storage: decode %s: %v (starting empty)", path, err)
		s.slots = make(map[string]json.RawMessage)
	}
	return s
}

// load decodes the named slot into out. Returns false when the slot is
// absent or its contents do not decode; decode failures are logged here
// so callers only have to pick a fallback.
func (s *Store) load(key string, out any) bool {
	s.mu.Lock()
	raw, ok := s.slots[key]
	s.mu.Unlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("storage: slot %q: %v (using fallback)", key, err)
		return false
	}
	return true
}

// save encodes v into the named slot and rewrites the file. The in-memory
// slot map is updated even when the disk write fails, so the session stays
// consistent; only cross-session durability is lost.
func (s *Store) save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = raw
	return s.flush()
}

// flush writes the whole slot map atomically. Caller holds s.mu.
func (s *Store) flush() error {
	b, err := json.MarshalIndent(s.slots, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Binding ties one slot to an in-memory value of type T. The in-memory
// value is authoritative for the session; the slot is only authoritative
// across restarts, and only when writes succeed.
type Binding[T any] struct {
	store *Store
	key   string

	mu    sync.RWMutex
	value T
}

// Bind loads the slot once and returns the binding. A missing slot or a
// decode failure yields the fallback — this is the only initialization
// path, there is no separate first-run flag.
func Bind[T any](store *Store, key string, fallback T) *Binding[T] {
	b := &Binding[T]{store: store, key: key, value: fallback}
	var loaded T
	if store.load(key, &loaded) {
		b.value = loaded
	}
	return b
}

// Get returns the current in-memory value.
func (b *Binding[T]) Get() T {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.value
}

// Set replaces the value and writes the slot through synchronously.
// A failed write is logged; the in-memory value still updates.
func (b *Binding[T]) Set(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.value = v
	if err := b.store.save(b.key, v); err != nil {
		log.Printf("storage: write slot %q: %v (keeping in-memory value)", b.key, err)
	}
}

// Update applies fn to the current authoritative value and stores the
// result, so callers never compute a next state from a stale copy.
// Returns the new value.
func (b *Binding[T]) Update(fn func(T) T) T {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.value = fn(b.value)
	if err := b.store.save(b.key, b.value); err != nil {
		log.Printf("storage: write slot %q: %v (keeping in-memory value)", b.key, err)
	}
	return b.value
}
