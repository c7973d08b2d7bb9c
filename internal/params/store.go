package params

import (
	"sort"
	"strconv"
	"sync"
)

// Handler receives a single-key mutation. It is called with the new value,
// the previous value (empty string when the key was unset), and the key.
type Handler func(newValue, oldValue, key string)

// SnapshotHandler receives the full parameter snapshot after a mutation plus
// the key that changed. Registered with SubscribeAll.
type SnapshotHandler func(snapshot map[string]string, key string)

// Persister saves the full parameter mapping after every mutation.
type Persister interface {
	Save(values map[string]string) error
}

// Store holds the current value of every dashboard parameter and broadcasts
// mutations to subscribers. All writes flow through Set; readers only ever
// see defensive copies.
//
// Notification ordering is part of the contract: for each mutation, key
// handlers fire first in registration order, then snapshot handlers in
// registration order. There is no unsubscribe; subscriptions live as long as
// the store.
type Store struct {
	mu        sync.RWMutex
	values    map[string]string
	handlers  map[string][]Handler
	wildcards []SnapshotHandler
	persister Persister
}

// New creates an empty store. Seed it with Load before wiring subscribers.
func New() *Store {
	return &Store{
		values:   make(map[string]string),
		handlers: make(map[string][]Handler),
	}
}

// SetPersister attaches the durable snapshot writer. A nil persister
// disables persistence.
func (s *Store) SetPersister(p Persister) {
	s.mu.Lock()
	s.persister = p
	s.mu.Unlock()
}

// Load replaces values in bulk without notifying subscribers or persisting.
// Used only during startup restore, before any subscriber exists.
func (s *Store) Load(values map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range values {
		s.values[k] = v
	}
}

// Set stores value under key, notifies subscribers, and persists the full
// mapping. Unknown keys are stored like any other. Persistence failures are
// swallowed: the worst case is a stale snapshot file, never a crash.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	old := s.values[key]
	s.values[key] = value
	keyHandlers := s.handlers[key]
	wildcards := s.wildcards
	snapshot := s.snapshotLocked()
	persister := s.persister
	s.mu.Unlock()

	for _, h := range keyHandlers {
		h(value, old, key)
	}
	for _, h := range wildcards {
		h(snapshot, key)
	}

	if persister != nil {
		_ = persister.Save(snapshot)
	}
}

// Merge applies every differing entry of values through Set. Entries equal
// to the current value are skipped, so merging the store's own persisted
// snapshot is a no-op. Keys are applied in sorted order for deterministic
// notification sequences.
func (s *Store) Merge(values map[string]string) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if s.Get(k) != values[k] {
			s.Set(k, values[k])
		}
	}
}

// Get returns the current value for key, or the empty string when unset.
func (s *Store) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// Snapshot returns a copy of the full parameter mapping. Mutating the
// returned map does not affect the store.
func (s *Store) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() map[string]string {
	m := make(map[string]string, len(s.values))
	for k, v := range s.values {
		m[k] = v
	}
	return m
}

// Float parses the value under key as a float64, falling back to fallback
// when the value is missing or unparseable.
func (s *Store) Float(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(s.Get(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

// Int parses the value under key as an int, falling back to fallback when
// the value is missing or unparseable.
func (s *Store) Int(key string, fallback int) int {
	v, err := strconv.Atoi(s.Get(key))
	if err != nil {
		return fallback
	}
	return v
}

// Subscribe registers a handler for mutations of one key. Handlers for a key
// fire in registration order, before any SubscribeAll handler.
func (s *Store) Subscribe(key string, h Handler) {
	s.mu.Lock()
	s.handlers[key] = append(s.handlers[key], h)
	s.mu.Unlock()
}

// SubscribeAll registers a handler invoked on every mutation with the full
// snapshot and the changed key, after all key-specific handlers.
func (s *Store) SubscribeAll(h SnapshotHandler) {
	s.mu.Lock()
	s.wildcards = append(s.wildcards, h)
	s.mu.Unlock()
}

// SaveNow persists the current mapping immediately. Used on shutdown so the
// final state survives even if the last mutation predates it.
func (s *Store) SaveNow() error {
	s.mu.RLock()
	persister := s.persister
	snapshot := s.snapshotLocked()
	s.mu.RUnlock()

	if persister == nil {
		return nil
	}
	return persister.Save(snapshot)
}
