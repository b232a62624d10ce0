package lazystore

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Store is a session-scoped map of resolved values. A key is populated
// at most once per store lifetime: once present, its value is returned
// synchronously and any supplied resolver is ignored. Entries never
// expire and are removed only through Delete.
//
// Presence is tested by key containment, not value truthiness, so a
// stored zero, empty string, or nil payload counts as resolved and is
// never fetched again.
type Store struct {
	items    *gocache.Cache
	observer Observer
	mu       sync.Mutex
}

// NewStore creates an empty store. Construct one per logical session
// scope and tear it down by dropping the reference when the scope ends.
func NewStore() *Store {
	return &Store{
		items: gocache.New(gocache.NoExpiration, 0),
	}
}

// WithObserver attaches an observer to receive operation events.
func (s *Store) WithObserver(o Observer) *Store {
	s.observer = o
	return s
}

// GetOrPopulate returns the value for key when present. On a miss it
// invokes fetch when supplied, stores the result under key, and returns
// it; otherwise it invokes fallback (side effect only) when supplied.
// At most one of fetch/fallback runs per call, and neither runs on a
// hit. The second return reports presence; a miss with no fetch is
// (nil, false), never an error.
//
// fetch must produce an already-resolved value. Async acquisition
// belongs to the readers, which only hand a fetch to the store once the
// remote result exists.
func (s *Store) GetOrPopulate(key string, fetch func() any, fallback func()) (any, bool) {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	if value, ok := s.items.Get(key); ok {
		s.observe("get_or_populate", key, true, start)
		return value, true
	}
	if fetch != nil {
		value := fetch()
		s.items.Set(key, value, gocache.NoExpiration)
		s.observe("populate", key, false, start)
		return value, true
	}
	if fallback != nil {
		fallback()
	}
	s.observe("get_or_populate", key, false, start)
	return nil, false
}

// Set unconditionally creates or overwrites the entry for key. It is
// the handoff point for externally resolved values.
func (s *Store) Set(key string, value any) {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items.Set(key, value, gocache.NoExpiration)
	s.observe("set", key, false, start)
}

// Delete removes the entry for key; no-op when absent.
func (s *Store) Delete(key string) {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items.Delete(key)
	s.observe("delete", key, false, start)
}

func (s *Store) observe(op, key string, hit bool, start time.Time) {
	if s.observer == nil {
		return
	}
	s.observer.OnStoreOp(op, key, hit, time.Since(start))
}

// GetOrPopulateAs is the typed boundary over the opaque store. The map
// stays type-erased; each call site names the type it expects for its
// key. A present value of a different dynamic type reports a miss
// without invoking fetch or fallback.
func GetOrPopulateAs[T any](a Accessor, key string, fetch func() T, fallback func()) (T, bool) {
	var wrapped func() any
	if fetch != nil {
		wrapped = func() any { return fetch() }
	}
	value, ok := a.GetOrPopulate(key, wrapped, fallback)
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := value.(T)
	return typed, ok
}

// ValueAs returns the typed value for key when present, with no
// populate path and no side effects.
func ValueAs[T any](a Accessor, key string) (T, bool) {
	return GetOrPopulateAs[T](a, key, nil, nil)
}
